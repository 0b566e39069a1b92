package server

import (
	"net/http"

	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/pages"
)

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routes.Home {
		s.handleNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	data := pages.HomeData{
		Content:     s.content,
		Screenshots: s.screenshots,
		State:       pages.ParseHomeState(r.URL.Query()),
	}
	s.render(w, r, http.StatusOK, pages.Home(s.pageSite(r), s.pageDoc(r, routes.Home), data))
}

func (s *server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	doc := pages.Doc{Robots: "noindex"}
	s.render(w, r, http.StatusNotFound, pages.NotFound(s.pageSite(r), doc))
}
