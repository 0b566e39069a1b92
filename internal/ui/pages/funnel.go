package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/funnel"
	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/components"
)

// Headings of the funnel steps.
const (
	HireHeading     = "Ready To 10X Your Brand Growth?"
	WarnHeading     = "Unfortunately you won’t be a good fit for us at your current stage, however we can still help you out through a consultation."
	GetHiredHeading = "You're Just One Step Away From Becoming The Next Big Brand In Your Market."
	BookHeading     = "Book a 30-min consultation with Ahmed Helal to help you identify your business issues and how can you resolve them, and to clear out the path for your brand scaling"
)

// Hire renders the two-question selector. Until the client runs, a plain
// submit button takes visitors through the server-side guard instead of the
// NEXT STEP link.
func Hire(site Site, doc Doc, sel funnel.Selection) g.Node {
	return step(site, doc, routes.PageHire, HireHeading,
		Form(ID("funnel-form"), Class("funnel-form"), Method("get"), Action(routes.GettingStartedGo),
			Div(Class("text-body sentence"),
				Span(Class("sentence-part"), g.Text("Hey! My brand generated")),
				components.SelectField(components.SelectProps{
					ID: "main-select", Name: funnel.ParamRevenue, Label: "Select Range",
					Value: string(sel.Revenue), Options: funnel.RevenueOptions(),
				}),
				Span(Class("sentence-part"), g.Text("in sales in the past month, and we spent")),
				components.SelectField(components.SelectProps{
					ID: "extra-select", Name: funnel.ParamAdSpend, Label: "Select Range",
					Value: string(sel.AdSpend), Options: funnel.AdSpendOptions(),
				}),
				Span(Class("sentence-part"), g.Text("on ad spend.")),
			),
			Div(Class("step-actions"),
				components.LinkButton(components.ButtonProps{Text: "PREV STEP", Href: routes.Home, Variant: components.Outline}),
				components.NextStep(sel),
				Button(Type("submit"), Class("button-gradient bulk-btn btn no-client"), g.Text("NEXT STEP")),
			),
		),
	)
}

// Warn renders the not-qualified notice offering a consultation instead.
func Warn(site Site, doc Doc) g.Node {
	return step(site, doc, routes.PageWarn, WarnHeading,
		Div(Class("step-actions"),
			components.LinkButton(components.ButtonProps{Text: "PREV STEP", Href: routes.GettingStarted, Variant: components.Outline}),
			components.LinkButton(components.ButtonProps{Text: "BOOK CONSULTATION", Href: routes.BookConsultation, Variant: components.Bulk}),
		),
	)
}

// NotFound renders the page for unknown paths.
func NotFound(site Site, doc Doc) g.Node {
	return document(site, doc, "Page Not Found", "page-not-found",
		Section(Class("main-section step"),
			Div(Class("container"),
				Div(Class("step-logo"), components.Logo("")),
				Div(Class("step-body"),
					components.Breadcrumbs("Page Not Found"),
					H1(Class("h1 step-title"), g.Text("This page does not exist.")),
					Div(Class("step-actions"),
						components.LinkButton(components.ButtonProps{Text: "BACK HOME", Href: routes.Home, Variant: components.Outline}),
						components.LinkButton(components.ButtonProps{Text: "START NOW", Href: routes.GettingStarted, Variant: components.Bulk}),
					),
				),
			),
		),
	)
}
