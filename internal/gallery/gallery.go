// Package gallery lays out the results screenshots in two balanced columns.
package gallery

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// UnknownHeight stands in for an image whose height could not be measured.
const UnknownHeight = 300

// DefaultAspectRatio is used for images without known dimensions.
const DefaultAspectRatio = 1.5

// EagerPerColumn is how many images at the top of each column load eagerly.
const EagerPerColumn = 3

// Image is one screenshot and its measured pixel size. Zero dimensions mean
// the size is unknown.
type Image struct {
	Path   string
	Width  int
	Height int
}

// AspectRatio returns width/height, falling back to DefaultAspectRatio.
func (i Image) AspectRatio() float64 {
	if i.Width <= 0 || i.Height <= 0 {
		return DefaultAspectRatio
	}
	return float64(i.Width) / float64(i.Height)
}

// Columns holds image indices per column, top to bottom.
type Columns [2][]int

// Pack distributes n images across two columns. Without measurements images
// alternate, even indices left. With measurements each image goes to the
// currently shorter column, ties going left, and heights missing or zero count
// as UnknownHeight.
func Pack(heights []int, n int) Columns {
	var cols Columns
	if n <= 0 {
		return cols
	}
	if len(heights) == 0 {
		for i := 0; i < n; i++ {
			cols[i%2] = append(cols[i%2], i)
		}
		return cols
	}

	var left, right int
	for i := 0; i < n; i++ {
		h := UnknownHeight
		if i < len(heights) && heights[i] > 0 {
			h = heights[i]
		}
		if left <= right {
			cols[0] = append(cols[0], i)
			left += h
		} else {
			cols[1] = append(cols[1], i)
			right += h
		}
	}
	return cols
}

// Heights extracts the measured heights of images.
func Heights(images []Image) []int {
	out := make([]int, len(images))
	measured := false
	for i, img := range images {
		out[i] = img.Height
		if img.Height > 0 {
			measured = true
		}
	}
	if !measured {
		return nil
	}
	return out
}

// Measure decodes the header of every path in fsys concurrently and returns
// the images in input order. Unreadable images keep zero dimensions; only
// context cancellation is reported as an error.
func Measure(ctx context.Context, fsys fs.FS, paths []string) ([]Image, error) {
	images := make([]Image, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range paths {
		images[i].Path = p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, h, err := decodeSize(fsys, p)
			if err != nil {
				return nil
			}
			images[i].Width, images[i].Height = w, h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("measure screenshots: %w", err)
	}
	return images, nil
}

func decodeSize(fsys fs.FS, path string) (int, int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// MaxHeight returns the collapsed gallery height for a viewport width.
func MaxHeight(viewportWidth int) string {
	switch {
	case viewportWidth >= 1024:
		return "100vh"
	case viewportWidth >= 768:
		return "80vh"
	default:
		return "60vh"
	}
}

// Tile is one rendered screenshot.
type Tile struct {
	Index       int
	Src         string
	Alt         string
	AspectRatio float64
	Eager       bool
}

// Layout is the render model of the gallery.
type Layout struct {
	Columns  [2][]Tile
	Expanded bool
}

// Build packs images into a render layout. srcPrefix is prepended to each
// image path to form its URL.
func Build(images []Image, srcPrefix string, expanded bool) Layout {
	cols := Pack(Heights(images), len(images))
	layout := Layout{Expanded: expanded}
	for c, indices := range cols {
		tiles := make([]Tile, 0, len(indices))
		for pos, idx := range indices {
			img := images[idx]
			tiles = append(tiles, Tile{
				Index:       idx,
				Src:         srcPrefix + img.Path,
				Alt:         fmt.Sprintf("Screenshot %d", idx+1),
				AspectRatio: img.AspectRatio(),
				Eager:       pos < EagerPerColumn,
			})
		}
		layout.Columns[c] = tiles
	}
	return layout
}
