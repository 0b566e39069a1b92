package components

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/content"
	"github.com/Its-donkey/convertx/internal/funnel"
	"github.com/Its-donkey/convertx/internal/routes"
)

// Announcement renders the bar pinned to the top of the landing page.
func Announcement(a content.Announcement) g.Node {
	return Div(Class("announcement"), ID("announcement"),
		g.Text(a.Prefix+" "),
		Span(Class("accent"), g.Text(a.Highlight)),
		g.Text(" "+a.Suffix),
	)
}

// Logo renders the site logo linking home.
func Logo(class string) g.Node {
	return A(Href(routes.Home), Class("logo "+class),
		Img(Src(LogoPath), Alt("logo"), g.Attr("draggable", "false")),
	)
}

const starPath = "M12 .587l3.668 7.431 8.2 1.193-5.934 5.787 1.402 8.169L12 18.897l-7.336 3.87 1.402-8.169L.132 9.211l8.2-1.193z"

// Stars renders the five-star rating glyphs.
func Stars() g.Node {
	stars := make([]g.Node, 0, 5)
	for range 5 {
		stars = append(stars, g.El("svg",
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.Attr("viewBox", "0 0 24 24"),
			g.Attr("fill", "currentColor"),
			Class("star"),
			g.El("path", g.Attr("d", starPath)),
		))
	}
	return Div(Class("stars"), g.Attr("aria-hidden", "true"), g.Group(stars))
}

// ButtonVariant selects the look of a LinkButton.
type ButtonVariant string

const (
	Bulk    ButtonVariant = "bulk"
	Outline ButtonVariant = "outline"
)

func (v ButtonVariant) class() string {
	if v == Bulk {
		return "button-gradient bulk-btn"
	}
	return "outline-btn"
}

// ButtonProps configures a LinkButton.
type ButtonProps struct {
	Text     string
	Href     string
	Variant  ButtonVariant
	Disabled bool
	// Class is appended to the variant classes.
	Class string
	Attrs []g.Node
}

// LinkButton renders a call to action. A disabled button is a non-interactive
// span so it cannot be followed.
func LinkButton(p ButtonProps) g.Node {
	class := p.Variant.class() + " btn"
	if p.Class != "" {
		class += " " + p.Class
	}
	if p.Disabled {
		return Span(Class(class+" is-disabled"), Aria("disabled", "true"), g.Group(p.Attrs), g.Text(p.Text))
	}
	return A(Href(p.Href), Class(class), g.Group(p.Attrs), g.Text(p.Text))
}

// HeaderActions are the two calls to action shared by both headers.
func HeaderActions(linkAttrs ...g.Node) g.Node {
	return Div(Class("header-actions"),
		LinkButton(ButtonProps{Text: "BOOK A CONSULTATION", Href: routes.BookConsultation, Variant: Outline, Class: "hide-mobile", Attrs: linkAttrs}),
		LinkButton(ButtonProps{Text: "START NOW", Href: routes.GettingStarted, Variant: Bulk, Attrs: linkAttrs}),
	)
}

// SiteHeader is the in-page header of the landing page. It is the element the
// sticky header watches on wide viewports.
func SiteHeader() g.Node {
	return Header(ID("hero-header"), Class("site-header header--border"),
		Logo("header-logo"),
		HeaderActions(),
	)
}

// StickyHeader is the fixed header revealed once SiteHeader scrolls out of
// view. Its links carry data-sticky-link so the client can delay navigation
// until the exit animation ends.
func StickyHeader() g.Node {
	return Header(ID("sticky-header"), Class("sticky-header header--border"), Data("phase", "hidden"), Aria("hidden", "true"),
		Div(Class("container sticky-inner"),
			A(Href(routes.Home), Class("logo sticky-logo"), Data("sticky-link", routes.Home),
				Img(Src(LogoPath), Alt("logo"), g.Attr("draggable", "false")),
			),
			HeaderActions(Data("sticky-link", "")),
		),
	)
}

// Breadcrumbs renders "Home / text".
func Breadcrumbs(text string) g.Node {
	return Nav(Class("breadcrumbs"), Aria("label", "Breadcrumb"),
		A(Href(routes.Home), Class("accent-link"), g.Text("Home")),
		g.Text(" / "+text),
	)
}

// SelectProps configures a SelectField.
type SelectProps struct {
	ID      string
	Name    string
	Label   string
	Value   string
	Options []funnel.Option
}

// SelectField renders an inline select whose label doubles as placeholder.
func SelectField(p SelectProps) g.Node {
	options := []g.Node{
		Option(Value(""), Disabled(), g.If(p.Value == "", Selected()), g.Attr("hidden"), g.Text(p.Label)),
	}
	for _, opt := range p.Options {
		options = append(options, Option(Value(opt.Value), g.If(opt.Value == p.Value, Selected()), g.Text(opt.Label)))
	}
	return Label(For(p.ID), Class("select-field has-triangle"),
		Span(Class("sr-only"), g.Text(p.Label)),
		Select(ID(p.ID), Name(p.Name), Required(),
			c.Classes{"select": true, "is-empty": p.Value == ""},
			g.Group(options),
		),
	)
}
