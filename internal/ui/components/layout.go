// Package components holds the gomponents building blocks the pages are made of.
package components

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Asset paths shared by every page.
const (
	StylesheetPath = "/assets/styles.css"
	LogoPath       = "/assets/logo.png"
	WasmExecPath   = "/assets/wasm_exec.js"
	BootPath       = "/assets/boot.js"
)

// PageConfig is the document-level metadata of a page.
type PageConfig struct {
	// Title is the full document title, site name included.
	Title       string
	Description string
	Canonical   string
	SiteName    string
	OGImage     string
	Robots      string
	BodyClass   string
	// Client loads the WASM client and its loader.
	Client bool
}

// Layout wraps children in the HTML5 document shared by every page.
func Layout(cfg PageConfig, children ...g.Node) g.Node {
	head := []g.Node{
		Link(Rel("icon"), Href(LogoPath)),
		Link(Rel("stylesheet"), Href(StylesheetPath)),
		g.If(cfg.Canonical != "", Link(Rel("canonical"), Href(cfg.Canonical))),
		g.If(cfg.Robots != "", Meta(Name("robots"), Content(cfg.Robots))),
		Meta(g.Attr("property", "og:type"), Content("website")),
		Meta(g.Attr("property", "og:title"), Content(cfg.Title)),
		g.If(cfg.Description != "", Meta(g.Attr("property", "og:description"), Content(cfg.Description))),
		g.If(cfg.SiteName != "", Meta(g.Attr("property", "og:site_name"), Content(cfg.SiteName))),
		g.If(cfg.Canonical != "", Meta(g.Attr("property", "og:url"), Content(cfg.Canonical))),
		g.If(cfg.OGImage != "", Meta(g.Attr("property", "og:image"), Content(cfg.OGImage))),
		Meta(Name("twitter:card"), Content("summary_large_image")),
	}
	if cfg.Client {
		head = append(head,
			Script(Src(WasmExecPath), g.Attr("defer")),
			Script(Src(BootPath), g.Attr("defer")),
		)
	}

	body := []g.Node{g.If(cfg.BodyClass != "", Class(cfg.BodyClass))}
	body = append(body, children...)

	return c.HTML5(c.HTML5Props{
		Title:       cfg.Title,
		Description: cfg.Description,
		Language:    "en",
		Head:        head,
		Body:        body,
	})
}
