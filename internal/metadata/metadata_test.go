package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-donkey/convertx/internal/routes"
)

const page = `<!doctype html><html><head>
<title>%s</title>
<meta name="description" content="We scale e-commerce brands.">
<link rel="canonical" href="https://convertx.example%s">
<meta property="og:title" content="%s">
<meta property="og:image" content="https://convertx.example/assets/og-image.png">
</head><body><h1>  Ready
  to grow </h1></body></html>`

func TestExtract(t *testing.T) {
	md, err := Extract(strings.NewReader(fmt.Sprintf(page, "Home · ConvertX", "/", "Home · ConvertX")))
	require.NoError(t, err)

	assert.Equal(t, "Home · ConvertX", md.Title)
	assert.Equal(t, "We scale e-commerce brands.", md.Description)
	assert.Equal(t, "https://convertx.example/", md.Canonical)
	assert.Equal(t, []string{"Ready to grow"}, md.Headings)
	assert.Empty(t, md.Robots)
}

func TestAudit(t *testing.T) {
	rt, ok := routes.Lookup(routes.GettingStarted)
	require.True(t, ok)

	good := Metadata{
		Status:      http.StatusOK,
		Title:       "Start Process · ConvertX",
		Description: "desc",
		Canonical:   "https://convertx.example/getting-started",
		OGTitle:     "Start Process · ConvertX",
		OGImage:     "https://convertx.example/assets/og-image.png",
		Headings:    []string{"Ready To 10X Your Brand Growth?"},
	}
	assert.Empty(t, Audit(good, rt, "ConvertX"))

	bad := good
	bad.Title = "ConvertX"
	bad.Description = strings.Repeat("x", DescriptionLimit+1)
	bad.Robots = "noindex"
	bad.Headings = nil
	problems := Audit(bad, rt, "ConvertX")
	assert.Len(t, problems, 4)

	assert.Equal(t, []string{"status 404"}, Audit(Metadata{Status: http.StatusNotFound}, rt, "ConvertX"))
}

func TestCheckVisitsEveryRoute(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt, ok := routes.Lookup(r.URL.Path)
		if !ok || rt.Page == routes.PageBook {
			http.NotFound(w, r)
			return
		}
		title := routes.DocumentTitle(rt.Title, "ConvertX")
		fmt.Fprintf(w, page, title, rt.Path, title)
	}))
	defer ts.Close()

	reports, err := NewService(ts.Client(), nil).Check(context.Background(), ts.URL+"/", "ConvertX")
	require.NoError(t, err)
	require.Len(t, reports, len(routes.Table()))

	for _, rep := range reports {
		require.NoError(t, rep.Err)
		if rep.Route.Page == routes.PageBook {
			assert.False(t, rep.OK())
			assert.Equal(t, []string{"status 404"}, rep.Problems)
			continue
		}
		assert.True(t, rep.OK(), "%s: %v", rep.Route.Path, rep.Problems)
	}
}

func TestCheckReportsCallerCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewService(ts.Client(), nil).Check(ctx, ts.URL, "ConvertX")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckRejectsRelativeBase(t *testing.T) {
	_, err := NewService(nil, nil).Check(context.Background(), "/relative", "ConvertX")
	assert.Error(t, err)
}
