package forms

import (
	"regexp"
	"strings"
)

// Kind is the input type a field renders as.
type Kind string

const (
	KindText     Kind = "text"
	KindTel      Kind = "tel"
	KindEmail    Kind = "email"
	KindNumber   Kind = "number"
	KindTextarea Kind = "textarea"
)

// Reasons reported by Validate.
const (
	ReasonRequired     = "This field is required."
	ReasonInvalidEmail = "Enter a valid email address."
	ReasonAttachment   = "Please attach a screenshot."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether value looks like an email address.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// Field describes one input of a lead form.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Kind        Kind
	Required    bool
	// Rows applies to textareas.
	Rows int
	// Validator runs on the raw value once the trimmed value is non-empty.
	Validator func(string) bool
	// Reason is reported when Validator rejects a value.
	Reason string
}

// Check returns the reason value fails this field, or "" when it passes.
// Optional fields always pass.
func (f Field) Check(value string) string {
	if !f.Required {
		return ""
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ReasonRequired
	}
	if f.Validator != nil && !f.Validator(value) {
		if f.Reason != "" {
			return f.Reason
		}
		return ReasonRequired
	}
	return ""
}

// Validate checks every required field of state and returns a reason per
// failing field name. An empty map means the form may be submitted.
func (s Schema) Validate(state State) map[string]string {
	errs := make(map[string]string)
	for _, f := range s.Fields {
		if reason := f.Check(state.Values[f.Name]); reason != "" {
			errs[f.Name] = reason
		}
	}
	if a := s.ActiveAttachment(); a != nil && a.Required {
		if state.Attachment == nil || len(state.Attachment.Data) == 0 {
			errs[a.Name] = ReasonAttachment
		}
	}
	return errs
}

// Valid reports whether state passes Validate.
func (s Schema) Valid(state State) bool {
	return len(s.Validate(state)) == 0
}
