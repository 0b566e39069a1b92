package pages

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Its-donkey/convertx/internal/content"
	"github.com/Its-donkey/convertx/internal/funnel"
	"github.com/Its-donkey/convertx/internal/gallery"
	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/forms"
)

var testSite = Site{
	Name:         "ConvertX",
	Description:  "We scale e-commerce brands",
	ContactEmail: "agencyconverx@gmail.com",
	BookingURL:   "https://cal.example/discovery",
}

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func loadContent(t *testing.T) content.Content {
	t.Helper()
	c, err := content.Load()
	require.NoError(t, err)
	return c
}

func TestHomeStateRoundTrip(t *testing.T) {
	st := ParseHomeState(url.Values{"review": {"2"}, "videos": {"4"}, "gallery": {"expanded"}})
	assert.Equal(t, HomeState{Review: 2, Videos: 4, Expanded: true}, st)
	assert.Equal(t, "/?gallery=expanded&review=2&videos=4#videos", st.Href("videos"))

	assert.Equal(t, HomeState{}, ParseHomeState(url.Values{"review": {"x"}, "gallery": {"yes"}}))
	assert.Equal(t, "/", HomeState{}.Href(""))
}

func TestHomeRendersAllSections(t *testing.T) {
	c := loadContent(t)
	shots := make([]gallery.Image, len(c.Screenshots.Images))
	for i, p := range c.Screenshots.Images {
		shots[i] = gallery.Image{Path: p}
	}

	doc := render(t, Home(testSite, Doc{Canonical: "https://convertx.example/"}, HomeData{Content: c, Screenshots: shots}))

	assert.Equal(t, "Home · ConvertX", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("#sticky-header").Length())
	assert.Equal(t, 1, doc.Find("#hero-header").Length())
	assert.Equal(t, 1, doc.Find("#hero-mobile-buttons").Length())
	assert.Equal(t, c.Hero.Headline, doc.Find("h1.hero-headline").Text())
	assert.Equal(t, len(c.Testimonials.Items), doc.Find("article.review-slide").Length())
	assert.Equal(t, len(c.VideoReviews.Items), doc.Find("article.video-review-card").Length())
	assert.Equal(t, len(c.Screenshots.Images), doc.Find(".gallery-tile").Length())
	assert.Equal(t, 1, doc.Find("#wistia-player-script").Length())

	more, _ := doc.Find(".load-more").Attr("href")
	assert.Equal(t, "/?gallery=expanded#results", more)
}

func TestHomeSliderLinksKeepOtherState(t *testing.T) {
	c := loadContent(t)
	doc := render(t, Home(testSite, Doc{}, HomeData{Content: c, State: HomeState{Review: 1, Expanded: true}}))

	next, _ := doc.Find(`#videos a.slider-arrow-next`).Attr("href")
	u, err := url.Parse(next)
	require.NoError(t, err)
	assert.Equal(t, "1", u.Query().Get(ParamReview))
	assert.Equal(t, "expanded", u.Query().Get(ParamGallery))
	assert.Equal(t, "2", u.Query().Get(ParamVideos))
	assert.Equal(t, "videos", u.Fragment)
}

func TestHirePartialSelectionDisablesNext(t *testing.T) {
	doc := render(t, Hire(testSite, Doc{}, funnel.Selection{Revenue: funnel.Revenue200To500K}))

	assert.Equal(t, "Start Process · ConvertX", doc.Find("title").Text())
	assert.Equal(t, HireHeading, doc.Find("h1").Text())
	next := doc.Find("#next-step")
	assert.Equal(t, "span", goquery.NodeName(next))
	action, _ := doc.Find("form#funnel-form").Attr("action")
	assert.Equal(t, routes.GettingStartedGo, action)

	style, _ := doc.Find("#progress-bar").Attr("style")
	assert.Equal(t, "--progress: 15%", style)
}

func TestHireReadySelectionLinksToDestination(t *testing.T) {
	tests := []struct {
		sel  funnel.Selection
		want string
	}{
		{funnel.Selection{Revenue: funnel.RevenueBelow200K, AdSpend: funnel.AdSpendAbove50K}, routes.Disqualified},
		{funnel.Selection{Revenue: funnel.RevenueAbove500K, AdSpend: funnel.AdSpendOrganic}, routes.DiscoveryCall},
	}
	for _, tt := range tests {
		doc := render(t, Hire(testSite, Doc{}, tt.sel))
		href, ok := doc.Find("a#next-step").Attr("href")
		require.True(t, ok)
		assert.Equal(t, tt.want, href)
	}
}

func TestWarnOffersConsultation(t *testing.T) {
	doc := render(t, Warn(testSite, Doc{}))
	links := doc.Find(".step-actions a")
	require.Equal(t, 2, links.Length())
	prev, _ := links.Eq(0).Attr("href")
	book, _ := links.Eq(1).Attr("href")
	assert.Equal(t, routes.GettingStarted, prev)
	assert.Equal(t, routes.BookConsultation, book)
	assert.Equal(t, "BOOK CONSULTATION", links.Eq(1).Text())
	assert.Contains(t, doc.Find(".breadcrumbs").Text(), "Not Qualified Yet")
}

func TestGetHiredRendersQualifiedForm(t *testing.T) {
	schema := forms.Qualified(forms.RelayConfig{AccessKey: "k"}, false)
	doc := render(t, GetHired(testSite, Doc{}, FormView{Schema: schema, State: schema.NewState()}))

	assert.Equal(t, "Discovery Call · ConvertX", doc.Find("title").Text())
	action, _ := doc.Find("form#lead-form-qualified").Attr("action")
	assert.Equal(t, routes.DiscoveryCall, action)
	assert.Zero(t, doc.Find("iframe").Length())
}

func TestBookRendersBookingFrameWhenEnabled(t *testing.T) {
	site := testSite
	site.BookingEmbed = true
	schema := forms.Disqualified(forms.RelayConfig{AccessKey: "k"}, false)
	state := schema.NewState()
	state.Status = forms.Succeeded()

	doc := render(t, Book(site, Doc{}, FormView{Schema: schema, State: state}))

	src, _ := doc.Find(".booking-frame iframe").Attr("src")
	assert.Equal(t, site.BookingURL, src)
	assert.Equal(t, schema.Success.Title, doc.Find(".banner-success .banner-title").Text())
	action, _ := doc.Find("form#lead-form-disqualified").Attr("action")
	assert.Equal(t, routes.BookConsultation, action)
}

func TestNotFoundIsNotIndexed(t *testing.T) {
	doc := render(t, NotFound(testSite, Doc{Robots: "noindex"}))
	robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
	assert.Equal(t, "noindex", robots)
	assert.Equal(t, "Page Not Found · ConvertX", doc.Find("title").Text())
}
