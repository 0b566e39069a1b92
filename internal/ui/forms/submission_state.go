package forms

import (
	"net/url"
	"strings"

	"github.com/Its-donkey/convertx/internal/relay"
)

// StatusKind is the phase of a form submission.
type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

// Status is the submission status shown under a form. Message is only set
// for StatusError.
type Status struct {
	Kind    StatusKind
	Message string
}

// Idle is the status of a form nobody has submitted yet.
func Idle() Status { return Status{Kind: StatusIdle} }

// Submitting is the status while the relay call is in flight.
func Submitting() Status { return Status{Kind: StatusSubmitting} }

// Succeeded is the status after the relay accepted the submission.
func Succeeded() Status { return Status{Kind: StatusSuccess} }

// Failed is the status after a failed submission.
func Failed(message string) Status {
	return Status{Kind: StatusError, Message: strings.TrimSpace(message)}
}

func (s Status) String() string {
	switch s.Kind {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error: " + s.Message
	default:
		return "idle"
	}
}

// ParseStatus reverses Status.String. Unknown input parses as idle.
func ParseStatus(raw string) Status {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "submitting":
		return Submitting()
	case raw == "success":
		return Succeeded()
	case strings.HasPrefix(raw, "error"):
		msg := strings.TrimPrefix(raw, "error")
		return Failed(strings.TrimPrefix(msg, ":"))
	default:
		return Idle()
	}
}

// State is the current content of one lead form.
type State struct {
	Values     map[string]string
	Attachment *relay.Attachment
	Status     Status
}

// NewState returns an empty, idle state with a value slot per field.
func (s Schema) NewState() State {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Name] = ""
	}
	return State{Values: values, Status: Idle()}
}

// Bind builds a state from posted form values. Unknown keys are ignored.
func (s Schema) Bind(form url.Values) State {
	state := s.NewState()
	for _, f := range s.Fields {
		state.Values[f.Name] = form.Get(f.Name)
	}
	return state
}

// Set stores value for field name.
func (st *State) Set(name, value string) {
	if st.Values == nil {
		st.Values = make(map[string]string)
	}
	st.Values[name] = value
}

// Reset clears every value and the attachment. Status is left alone.
func (st *State) Reset() {
	for k := range st.Values {
		st.Values[k] = ""
	}
	st.Attachment = nil
}

// Submission converts state into the relay payload, fields in schema order.
func (s Schema) Submission(state State) relay.Submission {
	fields := make([]relay.Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, relay.Field{Name: f.Name, Value: state.Values[f.Name]})
	}
	sub := relay.Submission{
		AccessKey: s.Relay.AccessKey,
		Subject:   s.Relay.Subject,
		Fields:    fields,
	}
	if a := s.ActiveAttachment(); a != nil && state.Attachment != nil {
		att := *state.Attachment
		att.Field = a.Name
		sub.Attachment = &att
	}
	return sub
}
