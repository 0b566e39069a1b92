package server

import (
	"net/http"

	"github.com/Its-donkey/convertx/internal/funnel"
	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/pages"
)

func (s *server) handleGettingStarted(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	sel := funnel.Parse(r.URL.Query())
	s.render(w, r, http.StatusOK, pages.Hire(s.pageSite(r), s.pageDoc(r, routes.GettingStarted), sel))
}

// handleGettingStartedNext is the NEXT STEP guard for visitors without the
// client: it only advances once both answers are present.
func (s *server) handleGettingStartedNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	sel := funnel.Parse(r.URL.Query())
	decision := funnel.Advance(sel)
	if decision.Advanced {
		s.logger.FromContext(r.Context()).
			WithCategory("funnel").
			WithFields(map[string]any{
				"revenue":   string(sel.Revenue),
				"ad_spend":  string(sel.AdSpend),
				"qualified": sel.Qualified(),
			}).
			Info("funnel step completed")
	}
	http.Redirect(w, r, decision.Location, http.StatusSeeOther)
}

func (s *server) handleDisqualified(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	s.render(w, r, http.StatusOK, pages.Warn(s.pageSite(r), s.pageDoc(r, routes.Disqualified)))
}
