package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/ui/forms"
)

// Banner copy for failed submissions.
const (
	FailureTitle    = "Submission Failed"
	FailureFallback = "Something went wrong. Please try again later."
)

// StatusBanner renders the outcome of the last submission. Idle and
// in-flight states render nothing.
func StatusBanner(status forms.Status, success forms.Copy) g.Node {
	switch status.Kind {
	case forms.StatusSuccess:
		return Div(ID("form-status"), Class("banner banner-success"), g.Attr("role", "status"),
			P(Class("banner-title"), g.Text(success.Title)),
			g.If(success.Body != "", P(g.Text(success.Body))),
		)
	case forms.StatusError:
		message := status.Message
		if message == "" {
			message = FailureFallback
		}
		return Div(ID("form-status"), Class("banner banner-error"), g.Attr("role", "alert"),
			P(Class("banner-title"), g.Text(FailureTitle)),
			P(g.Text(message)),
		)
	default:
		return g.Group(nil)
	}
}

// LeadFormProps configures a LeadForm.
type LeadFormProps struct {
	Schema forms.Schema
	State  forms.State
	// Errors holds per-field reasons; nil until a submission was attempted.
	Errors       map[string]string
	Action       string
	ContactEmail string
}

// FieldID is the element id of a form field.
func FieldID(formKey, name string) string {
	return formKey + "-" + name
}

// LeadForm renders a lead form with its notice, status banner and the
// follow-up copy. The submit control is marked aria-disabled while the form is
// incomplete; the client turns that into a real disabled state as the visitor
// types.
func LeadForm(p LeadFormProps) g.Node {
	s := p.Schema
	valid := s.Valid(p.State)
	submitting := p.State.Status.Kind == forms.StatusSubmitting

	fields := make([]g.Node, 0, len(s.Fields)+1)
	for _, f := range s.Fields {
		fields = append(fields, formField(s.Key, f, p.State.Values[f.Name], p.Errors[f.Name]))
	}
	if a := s.ActiveAttachment(); a != nil {
		fields = append(fields, attachmentField(s.Key, *a, p.Errors[a.Name]))
	}

	label := "Submit"
	if submitting {
		label = "Submitting..."
	}

	var notice g.Node = g.Group(nil)
	if s.Notice != nil {
		notice = noticeBox(*s.Notice)
	}

	return Div(Class("lead-form"),
		notice,
		Form(ID("lead-form-"+s.Key), Class("lead"), Method("post"), Action(p.Action),
			Data("form", s.Key), Data("valid", strconv.FormatBool(valid)),
			g.If(s.ActiveAttachment() != nil, g.Attr("enctype", "multipart/form-data")),
			g.Group(fields),
			Div(Class("form-actions"),
				Button(Type("submit"), Class("octagon-button button-gradient"), Data("submit", ""),
					g.If(!valid || submitting, Aria("disabled", "true")),
					g.If(submitting, Disabled()),
					g.Text(label),
				),
			),
		),
		StatusBanner(p.State.Status, s.Success),
		g.If(s.NextSteps != "", Div(Class("info-box"),
			H2(Class("info-title"), g.Text("What happens next?")),
			P(g.Text(s.NextSteps)),
		)),
		g.If(p.ContactEmail != "", Div(Class("contact-box"),
			P(g.Text("Reach out directly at")),
			A(Href("mailto:"+p.ContactEmail), Class("accent-link"), g.Text(p.ContactEmail)),
		)),
	)
}

func noticeBox(n forms.Copy) g.Node {
	return Div(Class("notice-box"),
		P(Class("notice-title"), g.Text(n.Title)),
		P(g.Text(n.Body)),
	)
}

func formField(formKey string, f forms.Field, value, reason string) g.Node {
	id := FieldID(formKey, f.Name)
	common := []g.Node{
		ID(id), Name(f.Name), Placeholder(f.Placeholder),
		Class("input"),
		g.If(f.Required, Required()),
		g.If(reason != "", Aria("invalid", "true")),
		g.If(reason != "", Aria("describedby", id+"-error")),
	}

	var control g.Node
	if f.Kind == forms.KindTextarea {
		rows := f.Rows
		if rows <= 0 {
			rows = 4
		}
		control = Textarea(g.Group(common), g.Attr("rows", strconv.Itoa(rows)), g.Text(value))
	} else {
		control = Input(g.Group(common), Type(string(f.Kind)), Value(value),
			g.If(f.Kind == forms.KindEmail, g.Attr("autocomplete", "email")))
	}

	return Div(c.Classes{"form-field": true, "has-error": reason != ""}, Data("field", f.Name),
		Label(For(id), Class("field-label"), g.Text(f.Label)),
		control,
		P(ID(id+"-error"), Class("field-error"), g.If(reason == "", g.Attr("hidden")), g.Text(reason)),
	)
}

func attachmentField(formKey string, a forms.AttachmentField, reason string) g.Node {
	id := FieldID(formKey, a.Name)
	return Div(c.Classes{"form-field": true, "has-error": reason != ""}, Data("field", a.Name),
		Label(For(id), Class("field-label"), g.Text(a.Label)),
		g.If(a.Hint != "", P(Class("field-hint"), g.Text(a.Hint))),
		Input(ID(id), Name(a.Name), Type("file"), g.Attr("accept", a.Accept), g.If(a.Required, Required())),
		P(ID(id+"-error"), Class("field-error"), g.If(reason == "", g.Attr("hidden")), g.Text(reason)),
	)
}

// BookingFrame embeds the cal.com booking calendar.
func BookingFrame(src string) g.Node {
	return Div(Class("booking-frame"),
		IFrame(Src(src), g.Attr("title", "Consultation booking calendar"), g.Attr("allowfullscreen"), g.Attr("loading", "lazy")),
	)
}
