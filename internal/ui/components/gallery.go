package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/gallery"
)

// GalleryProps configures the screenshot gallery.
type GalleryProps struct {
	Heading string
	Layout  gallery.Layout
	// ExpandHref reveals the full gallery without the client.
	ExpandHref string
}

// galleryBreakpoints are the viewport widths where the collapsed height changes.
var galleryBreakpoints = []int{768, 1024}

// galleryStyle emits the collapsed max-height for every breakpoint.
func galleryStyle() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".gallery.is-collapsed{max-height:%s}", gallery.MaxHeight(0))
	for _, w := range galleryBreakpoints {
		fmt.Fprintf(&b, "@media (min-width:%dpx){.gallery.is-collapsed{max-height:%s}}", w, gallery.MaxHeight(w))
	}
	return b.String()
}

// Gallery renders the two-column screenshot gallery. Collapsed, it is capped at
// a viewport-relative height with a fade and a Load More control.
func Gallery(p GalleryProps) g.Node {
	expanded := p.Layout.Expanded
	return Section(ID("results"), Class("main-section screenshots"),
		g.El("style", g.Raw(galleryStyle())),
		Div(Class("container"),
			H2(Class("h2 gallery-heading"), g.Text(p.Heading)),
			Div(ID("gallery"), c.Classes{"gallery": true, "is-collapsed": !expanded, "is-expanded": expanded},
				Div(Class("gallery-columns"),
					galleryColumn(p.Layout.Columns[0]),
					galleryColumn(p.Layout.Columns[1]),
				),
				g.If(!expanded, Div(Class("gallery-fade"))),
			),
			g.If(!expanded, Div(Class("gallery-more"),
				A(Href(p.ExpandHref), Class("accent-link load-more"), Data("gallery-expand", ""), g.Text("Load More")),
			)),
		),
	)
}

func galleryColumn(tiles []gallery.Tile) g.Node {
	nodes := make([]g.Node, 0, len(tiles))
	for _, t := range tiles {
		loading := "lazy"
		if t.Eager {
			loading = "eager"
		}
		nodes = append(nodes, Div(Class("gallery-tile"),
			g.Attr("style", fmt.Sprintf("aspect-ratio: %.4f", t.AspectRatio)),
			Img(Src(t.Src), Alt(t.Alt), g.Attr("loading", loading), g.Attr("decoding", "async"), g.Attr("draggable", "false")),
		))
	}
	return Div(Class("gallery-column"), g.Group(nodes))
}

// LogoMarquee renders the endlessly scrolling partner logo strip. The logo set
// is rendered twice so the animation can loop seamlessly.
func LogoMarquee(heading string, logos []string) g.Node {
	set := func(hidden bool) g.Node {
		imgs := make([]g.Node, 0, len(logos))
		for _, src := range logos {
			imgs = append(imgs, Img(Src(src), Alt("partner logo"), g.Attr("loading", "lazy")))
		}
		return Div(Class("marquee-set"), g.If(hidden, Aria("hidden", "true")), g.Group(imgs))
	}
	return Div(Class("marquee-wrap"),
		Span(Class("marquee-heading"), g.Text(heading)),
		Div(Class("marquee-mask"),
			Div(Class("marquee"), set(false), set(true)),
		),
	)
}
