package gallery

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackAlternatesWithoutHeights(t *testing.T) {
	got := Pack(nil, 5)
	want := Columns{{0, 2, 4}, {1, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestPackShortestColumnFirst(t *testing.T) {
	got := Pack([]int{100, 500, 100, 100, 100}, 5)
	// 0 -> L(100); 1 -> R(500); 2 -> L(200); 3 -> L(300); 4 -> L(400)
	want := Columns{{0, 2, 3, 4}, {1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestPackTiesGoLeft(t *testing.T) {
	got := Pack([]int{200, 200, 200, 200}, 4)
	want := Columns{{0, 2}, {1, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestPackUnknownHeightsCountAs300(t *testing.T) {
	// Only the first image is measured, like a partial preload.
	got := Pack([]int{700}, 4)
	// 0 -> L(700); 1 -> R(300); 2 -> R(600); 3 -> R(900)
	want := Columns{{0}, {1, 2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestPackPlacesEveryIndexOnce(t *testing.T) {
	heights := []int{120, 0, 900, 33, 410, 0, 77, 1200, 5}
	for n := 0; n <= 21; n++ {
		for _, hs := range [][]int{nil, heights} {
			cols := Pack(hs, n)
			all := append(append([]int{}, cols[0]...), cols[1]...)
			sort.Ints(all)
			want := make([]int, n)
			for i := range want {
				want[i] = i
			}
			if n == 0 {
				want = nil
				all = nil
			}
			require.Equal(t, want, all, "n=%d", n)
		}
	}
}

func TestMaxHeight(t *testing.T) {
	assert.Equal(t, "60vh", MaxHeight(360))
	assert.Equal(t, "80vh", MaxHeight(768))
	assert.Equal(t, "80vh", MaxHeight(1023))
	assert.Equal(t, "100vh", MaxHeight(1024))
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMeasureDecodesHeaders(t *testing.T) {
	fsys := fstest.MapFS{
		"1.png":   {Data: encodePNG(t, 40, 80)},
		"2.png":   {Data: encodePNG(t, 60, 30)},
		"bad.jpg": {Data: []byte("not an image")},
	}

	images, err := Measure(t.Context(), fsys, []string{"1.png", "bad.jpg", "missing.png", "2.png"})
	require.NoError(t, err)

	want := []Image{
		{Path: "1.png", Width: 40, Height: 80},
		{Path: "bad.jpg"},
		{Path: "missing.png"},
		{Path: "2.png", Width: 60, Height: 30},
	}
	if diff := cmp.Diff(want, images); diff != "" {
		t.Fatalf("images mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{80, 0, 0, 30}, Heights(images))
}

func TestMeasureCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := Measure(ctx, fstest.MapFS{"a.png": {Data: encodePNG(t, 1, 1)}}, []string{"a.png"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestHeightsNilWhenNothingMeasured(t *testing.T) {
	assert.Nil(t, Heights([]Image{{Path: "a"}, {Path: "b"}}))
}

func TestBuildLayout(t *testing.T) {
	images := make([]Image, 8)
	for i := range images {
		images[i] = Image{Path: "sc.jpg"}
	}
	images[0] = Image{Path: "first.jpg", Width: 300, Height: 600}

	layout := Build(images, "/assets/screenshots/", false)
	assert.False(t, layout.Expanded)

	first := layout.Columns[0][0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "/assets/screenshots/first.jpg", first.Src)
	assert.Equal(t, "Screenshot 1", first.Alt)
	assert.InDelta(t, 0.5, first.AspectRatio, 0.0001)
	assert.True(t, first.Eager)

	for _, col := range layout.Columns {
		for pos, tile := range col {
			assert.Equal(t, pos < EagerPerColumn, tile.Eager)
		}
	}
	assert.InDelta(t, DefaultAspectRatio, layout.Columns[1][0].AspectRatio, 0.0001)
}
