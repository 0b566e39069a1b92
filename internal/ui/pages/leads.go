package pages

import (
	g "maragu.dev/gomponents"

	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/components"
	"github.com/Its-donkey/convertx/internal/ui/forms"
)

// FormView is the render state of a lead form page.
type FormView struct {
	Schema forms.Schema
	State  forms.State
	// Errors is nil until the visitor tried to submit.
	Errors map[string]string
}

func leadForm(site Site, action string, v FormView) g.Node {
	return components.LeadForm(components.LeadFormProps{
		Schema:       v.Schema,
		State:        v.State,
		Errors:       v.Errors,
		Action:       action,
		ContactEmail: site.ContactEmail,
	})
}

func booking(site Site) g.Node {
	if !site.BookingEmbed || site.BookingURL == "" {
		return g.Group(nil)
	}
	return components.BookingFrame(site.BookingURL)
}

// GetHired renders the discovery-call form for qualified visitors.
func GetHired(site Site, doc Doc, v FormView) g.Node {
	return step(site, doc, routes.PageGetHired, GetHiredHeading,
		booking(site),
		leadForm(site, routes.DiscoveryCall, v),
	)
}

// Book renders the paid consultation intake form.
func Book(site Site, doc Doc, v FormView) g.Node {
	return step(site, doc, routes.PageBook, BookHeading,
		booking(site),
		leadForm(site, routes.BookConsultation, v),
	)
}
