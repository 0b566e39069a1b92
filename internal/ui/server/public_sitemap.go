package server

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/Its-donkey/convertx/internal/routes"
)

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *server) handleRobots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nSitemap: %s\n", s.absoluteURL(r, "/sitemap.xml"))
}

func (s *server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	var entries []sitemapURL
	for _, rt := range routes.Table() {
		priority := "0.8"
		if rt.Path == routes.Home {
			priority = "1.0"
		}
		entries = append(entries, sitemapURL{Loc: s.absoluteURL(r, rt.Path), Priority: priority})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemapSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: entries}); err != nil {
		s.logger.FromContext(r.Context()).WithCategory("general").Error("render sitemap", err)
	}
}
