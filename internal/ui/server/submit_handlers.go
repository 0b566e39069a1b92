package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/Its-donkey/convertx/internal/relay"
	"github.com/Its-donkey/convertx/internal/ui/forms"
	"github.com/Its-donkey/convertx/internal/ui/pages"
)

const (
	maxFormBytes   = 1 << 20
	maxUploadBytes = 10 << 20

	statusParam   = "status"
	statusSuccess = "success"
)

// leadFormHandler serves one lead form page. Posts follow
// post/redirect/get: success redirects back with ?status=success, an invalid
// form re-renders with 422 and a relay failure with 502, keeping the values.
func (s *server) leadFormHandler(schema forms.Schema, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			state := schema.NewState()
			if r.URL.Query().Get(statusParam) == statusSuccess {
				state.Status = forms.Succeeded()
			}
			s.renderLeadForm(w, r, http.StatusOK, path, pages.FormView{Schema: schema, State: state})
		case http.MethodPost:
			s.submitLeadForm(w, r, schema, path)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodHead, http.MethodPost)
		}
	}
}

func (s *server) submitLeadForm(w http.ResponseWriter, r *http.Request, schema forms.Schema, path string) {
	state, err := parseLeadForm(r, schema)
	if err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	if errs := schema.Validate(state); len(errs) > 0 {
		view := pages.FormView{Schema: schema, State: state, Errors: errs}
		s.renderLeadForm(w, r, http.StatusUnprocessableEntity, path, view)
		return
	}

	err = s.submitter.Submit(r.Context(), schema, &state)
	switch {
	case err == nil:
		http.Redirect(w, r, path+"?"+statusParam+"="+statusSuccess, http.StatusSeeOther)
	case errors.Is(err, forms.ErrInvalid):
		view := pages.FormView{Schema: schema, State: state, Errors: schema.Validate(state)}
		s.renderLeadForm(w, r, http.StatusUnprocessableEntity, path, view)
	default:
		s.renderLeadForm(w, r, http.StatusBadGateway, path, pages.FormView{Schema: schema, State: state})
	}
}

func (s *server) renderLeadForm(w http.ResponseWriter, r *http.Request, status int, path string, view pages.FormView) {
	site := s.pageSite(r)
	doc := s.pageDoc(r, path)
	var node g.Node
	if view.Schema.Key == forms.KeyQualified {
		node = pages.GetHired(site, doc, view)
	} else {
		node = pages.Book(site, doc, view)
	}
	s.render(w, r, status, node)
}

// parseLeadForm binds the posted values, and the upload when the form
// collects one.
func parseLeadForm(r *http.Request, schema forms.Schema) (forms.State, error) {
	att := schema.ActiveAttachment()
	if att == nil {
		r.Body = http.MaxBytesReader(nil, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			return forms.State{}, err
		}
		return schema.Bind(r.PostForm), nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes+maxFormBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return forms.State{}, err
	}
	state := schema.Bind(r.PostForm)

	file, header, err := r.FormFile(att.Name)
	if errors.Is(err, http.ErrMissingFile) {
		return state, nil
	}
	if err != nil {
		return forms.State{}, fmt.Errorf("read %s: %w", att.Name, err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return forms.State{}, fmt.Errorf("read %s: %w", att.Name, err)
	}
	if len(data) > 0 {
		state.Attachment = &relay.Attachment{
			Field:       att.Name,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	return state, nil
}
