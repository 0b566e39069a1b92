package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/funnel"
)

// StepProps configures the funnel step shell.
type StepProps struct {
	Breadcrumb string
	Title      string
	// Progress is the bar fill in percent. It is rendered as given.
	Progress int
}

// StepShell renders a funnel step: the progress bar pinned to the top of the
// viewport, the logo, the breadcrumb trail and the heading above children.
// The bar grows to --progress on load; the client shrinks it before leaving.
func StepShell(p StepProps, children ...g.Node) g.Node {
	return Section(Class("main-section step"),
		Div(Class("glow glow-left")),
		Div(Class("glow glow-right")),
		Div(ID("progress-bar"), Class("progress-bar"),
			g.Attr("style", fmt.Sprintf("--progress: %d%%", p.Progress)),
			Data("progress", strconv.Itoa(p.Progress)),
			g.Attr("role", "progressbar"),
			Aria("valuenow", strconv.Itoa(p.Progress)),
			Aria("valuemin", "0"),
			Aria("valuemax", "100"),
		),
		Div(Class("container"),
			Div(Class("step-logo enter-down"), Logo("step-logo-link")),
			Div(Class("step-body enter-up"),
				Breadcrumbs(p.Breadcrumb),
				H1(Class("h1 step-title"), g.Text(p.Title)),
				g.Group(children),
			),
		),
	)
}

// NextStep renders the funnel's NEXT STEP control for sel. With both answers
// known it links to the destination; otherwise it is disabled. It only shows
// once the client runs, which re-renders it as answers change.
func NextStep(sel funnel.Selection) g.Node {
	return LinkButton(ButtonProps{
		Text:     "NEXT STEP",
		Href:     sel.Next(),
		Variant:  Bulk,
		Disabled: !sel.Ready(),
		Class:    "client-only",
		Attrs:    []g.Node{ID("next-step")},
	})
}
