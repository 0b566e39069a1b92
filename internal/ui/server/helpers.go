package server

import (
	"bytes"
	"net/http"
	"strings"

	g "maragu.dev/gomponents"
)

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// render writes node with status. The page is rendered into a buffer first so
// a render error can still become a 500.
func (s *server) render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		s.logger.FromContext(r.Context()).WithCategory("general").Error("render page", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
