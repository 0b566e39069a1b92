// Package pages composes components into the full pages of the site.
package pages

import (
	g "maragu.dev/gomponents"

	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/components"
)

// Site is the configuration every page reads.
type Site struct {
	Name         string
	Description  string
	ContactEmail string
	OGImage      string
	BookingURL   string
	BookingEmbed bool
	// Client loads the WASM client.
	Client bool
}

// Doc is the per-request document data.
type Doc struct {
	Canonical string
	Robots    string
}

func document(site Site, doc Doc, title, bodyClass string, children ...g.Node) g.Node {
	return components.Layout(components.PageConfig{
		Title:       routes.DocumentTitle(title, site.Name),
		Description: site.Description,
		Canonical:   doc.Canonical,
		Robots:      doc.Robots,
		SiteName:    site.Name,
		OGImage:     site.OGImage,
		BodyClass:   bodyClass,
		Client:      site.Client,
	}, children...)
}

func routeFor(p routes.Page) routes.Route {
	r, _ := routes.ForPage(p)
	return r
}

func step(site Site, doc Doc, page routes.Page, heading string, children ...g.Node) g.Node {
	r := routeFor(page)
	return document(site, doc, r.Title, "page-"+page.String(),
		components.StepShell(components.StepProps{
			Breadcrumb: r.Breadcrumb,
			Title:      heading,
			Progress:   r.Progress,
		}, children...),
	)
}
