// Package routes holds the static route table of the site.
package routes

import "strings"

// Page identifies which page a route renders.
type Page int

const (
	PageHome Page = iota
	PageHire
	PageGetHired
	PageWarn
	PageBook
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageHire:
		return "hire"
	case PageGetHired:
		return "get-hired"
	case PageWarn:
		return "warn"
	case PageBook:
		return "book"
	default:
		return "unknown"
	}
}

// Paths of every page on the site.
const (
	Home             = "/"
	GettingStarted   = "/getting-started"
	GettingStartedGo = "/getting-started/next"
	DiscoveryCall    = "/discovery-call"
	Disqualified     = "/disqualified"
	BookConsultation = "/book-consultation"
)

// Route binds a URL path to a page and the title shown for it.
type Route struct {
	Path       string
	Title      string
	Page       Page
	Breadcrumb string
	// Progress is the step-shell progress bar fill; zero for pages without one.
	Progress int
}

var table = []Route{
	{Path: Home, Title: "Home", Page: PageHome},
	{Path: GettingStarted, Title: "Start Process", Page: PageHire, Breadcrumb: "Getting Started", Progress: 15},
	{Path: DiscoveryCall, Title: "Discovery Call", Page: PageGetHired, Breadcrumb: "Discovery Call", Progress: 90},
	{Path: Disqualified, Title: "Not Qualified Yet", Page: PageWarn, Breadcrumb: "Not Qualified Yet", Progress: 40},
	{Path: BookConsultation, Title: "Consultation Booking", Page: PageBook, Breadcrumb: "Consultation Booking", Progress: 90},
}

// Table returns a copy of the route table in declaration order.
func Table() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Lookup finds the route for path. A single trailing slash is ignored.
func Lookup(path string) (Route, bool) {
	clean := Normalize(path)
	for _, r := range table {
		if r.Path == clean {
			return r, true
		}
	}
	return Route{}, false
}

// Normalize trims surrounding whitespace and a trailing slash from path.
func Normalize(path string) string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return Home
	}
	if len(clean) > 1 {
		clean = strings.TrimSuffix(clean, "/")
	}
	return clean
}

// ForPage returns the route rendering page.
func ForPage(p Page) (Route, bool) {
	for _, r := range table {
		if r.Page == p {
			return r, true
		}
	}
	return Route{}, false
}

// DocumentTitle formats the browser title for a route.
func DocumentTitle(title, siteName string) string {
	title = strings.TrimSpace(title)
	siteName = strings.TrimSpace(siteName)
	switch {
	case title == "":
		return siteName
	case siteName == "":
		return title
	default:
		return title + " · " + siteName
	}
}
