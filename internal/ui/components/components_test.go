package components

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/carousel"
	"github.com/Its-donkey/convertx/internal/content"
	"github.com/Its-donkey/convertx/internal/funnel"
	"github.com/Its-donkey/convertx/internal/gallery"
	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/forms"
)

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func TestLayoutWritesDocumentMetadata(t *testing.T) {
	doc := render(t, Layout(PageConfig{
		Title:       "Start Process · ConvertX",
		Description: "Scale your brand",
		Canonical:   "https://convertx.example/getting-started",
		Client:      true,
	}, Div()))

	assert.Equal(t, "Start Process · ConvertX", doc.Find("title").Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "Scale your brand", desc)
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://convertx.example/getting-started", canonical)
	assert.Equal(t, 1, doc.Find(`script[src="`+BootPath+`"]`).Length())
}

func TestLayoutWithoutClientHasNoScripts(t *testing.T) {
	doc := render(t, Layout(PageConfig{Title: "Home"}))
	assert.Zero(t, doc.Find("script").Length())
	assert.Zero(t, doc.Find(`link[rel="canonical"]`).Length())
}

func TestLinkButtonDisabledIsSpan(t *testing.T) {
	doc := render(t, LinkButton(ButtonProps{Text: "NEXT STEP", Href: "/discovery-call", Variant: Bulk, Disabled: true}))
	assert.Zero(t, doc.Find("a").Length())
	span := doc.Find("span.bulk-btn")
	require.Equal(t, 1, span.Length())
	v, _ := span.Attr("aria-disabled")
	assert.Equal(t, "true", v)
	assert.Equal(t, "NEXT STEP", span.Text())
}

func TestLinkButtonEnabledIsLink(t *testing.T) {
	doc := render(t, LinkButton(ButtonProps{Text: "PREV STEP", Href: "/", Variant: Outline}))
	a := doc.Find("a.outline-btn")
	require.Equal(t, 1, a.Length())
	href, _ := a.Attr("href")
	assert.Equal(t, "/", href)
}

func TestBreadcrumbs(t *testing.T) {
	doc := render(t, Breadcrumbs("Discovery Call"))
	assert.Equal(t, "Home / Discovery Call", strings.TrimSpace(doc.Find("nav").Text()))
}

func TestStepShellSetsProgress(t *testing.T) {
	doc := render(t, StepShell(StepProps{Breadcrumb: "Getting Started", Title: "Ready?", Progress: 15}, P(g.Text("child"))))
	bar := doc.Find("#progress-bar")
	style, _ := bar.Attr("style")
	assert.Equal(t, "--progress: 15%", style)
	assert.Equal(t, "Ready?", doc.Find("h1").Text())
	assert.Equal(t, "child", doc.Find(".step-body p").Text())
}

func TestSelectFieldMarksSelection(t *testing.T) {
	doc := render(t, SelectField(SelectProps{ID: "main-select", Name: funnel.ParamRevenue, Label: "Select Range", Value: "valid-1", Options: funnel.RevenueOptions()}))
	sel := doc.Find("option[selected]")
	require.Equal(t, 1, sel.Length())
	assert.Equal(t, "200K to 500K", sel.Text())
	assert.False(t, doc.Find("select").HasClass("is-empty"))
}

func TestSelectFieldEmptySelectsPlaceholder(t *testing.T) {
	doc := render(t, SelectField(SelectProps{ID: "extra-select", Name: funnel.ParamAdSpend, Label: "Select Range", Options: funnel.AdSpendOptions()}))
	v, _ := doc.Find("option[selected]").Attr("value")
	assert.Equal(t, "", v)
	assert.True(t, doc.Find("select").HasClass("is-empty"))
}

func testimonials() []content.Testimonial {
	return []content.Testimonial{
		{Title: "one", VideoID: "a"},
		{Title: "two", VideoID: "b"},
		{Title: "three", VideoID: "c"},
	}
}

func TestReviewsSectionShowsActiveSlideOnly(t *testing.T) {
	href := func(i int) string { return "/?review=" + string(rune('0'+i)) }
	doc := render(t, ReviewsSection(ReviewsProps{Items: testimonials(), Slider: carousel.Wrap{Len: 3, Index: 0}, Href: href}))

	slides := doc.Find("article.review-slide")
	require.Equal(t, 3, slides.Length())
	visible := slides.Not("[hidden]")
	require.Equal(t, 1, visible.Length())
	assert.Equal(t, "one", visible.Find(".review-title").Text())

	prev, _ := doc.Find(`[data-slider-action="prev"]`).Attr("href")
	next, _ := doc.Find(`[data-slider-action="next"]`).Attr("href")
	assert.Equal(t, "/?review=2", prev)
	assert.Equal(t, "/?review=1", next)
}

func TestReviewsSectionEmpty(t *testing.T) {
	doc := render(t, ReviewsSection(ReviewsProps{}))
	assert.Zero(t, doc.Find("section").Length())
}

func videoReviews(n int) []content.VideoReview {
	out := make([]content.VideoReview, n)
	for i := range out {
		out[i] = content.VideoReview{VideoID: "v", IGN: "creator"}
	}
	return out
}

func TestVideoSliderAtStart(t *testing.T) {
	href := func(i int) string { return "#" + string(rune('0'+i)) }
	doc := render(t, VideoSlider(VideoSliderProps{
		Items:  videoReviews(6),
		Slider: carousel.NewClamp(6, carousel.DesktopVisible, 0),
		Href:   href,
	}))

	assert.Equal(t, 6, doc.Find("wistia-player").Length())
	aspect, _ := doc.Find("wistia-player").First().Attr("aspect")
	assert.Equal(t, VideoAspect, aspect)

	assert.True(t, doc.Find(".slider-arrow-prev").HasClass("disabled"))
	next, _ := doc.Find("a.slider-arrow-next").Attr("href")
	assert.Equal(t, "#2", next)

	bullets := doc.Find(".slider-bullet")
	require.Equal(t, 2, bullets.Length())
	assert.True(t, bullets.First().HasClass("slider-bullet-active"))
	last, _ := bullets.Last().Attr("data-slider-jump")
	assert.Equal(t, "2", last)
}

func TestVideoSliderHidesNavigationWhenEverythingFits(t *testing.T) {
	doc := render(t, VideoSlider(VideoSliderProps{
		Items:  videoReviews(3),
		Slider: carousel.NewClamp(3, carousel.DesktopVisible, 0),
		Href:   func(int) string { return "#" },
	}))
	assert.Zero(t, doc.Find(".slider-arrows").Length())
	assert.Zero(t, doc.Find(".slider-navigation").Length())
}

func TestGalleryRendersEveryImageOnce(t *testing.T) {
	images := []gallery.Image{
		{Path: "1.png", Width: 600, Height: 900},
		{Path: "2.png", Width: 600, Height: 300},
		{Path: "3.png"},
		{Path: "4.png", Width: 600, Height: 1200},
		{Path: "5.png", Width: 600, Height: 600},
	}
	doc := render(t, Gallery(GalleryProps{Heading: "Results", Layout: gallery.Build(images, "/assets/screenshots/", false), ExpandHref: "/?gallery=expanded#results"}))

	seen := map[string]int{}
	doc.Find(".gallery-tile img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		seen[src]++
	})
	require.Len(t, seen, len(images))
	for src, n := range seen {
		assert.Equal(t, 1, n, src)
	}
	assert.True(t, doc.Find("#gallery").HasClass("is-collapsed"))
	assert.Equal(t, "Load More", doc.Find(".load-more").Text())
	assert.Contains(t, doc.Find("style").Text(), "max-height:100vh")
}

func TestGalleryExpanded(t *testing.T) {
	images := []gallery.Image{{Path: "1.png"}, {Path: "2.png"}}
	doc := render(t, Gallery(GalleryProps{Layout: gallery.Build(images, "/s/", true)}))
	assert.True(t, doc.Find("#gallery").HasClass("is-expanded"))
	assert.Zero(t, doc.Find(".load-more").Length())
	assert.Zero(t, doc.Find(".gallery-fade").Length())
}

func TestStatusBanner(t *testing.T) {
	success := forms.Copy{Title: "Thanks"}

	doc := render(t, StatusBanner(forms.Succeeded(), success))
	assert.Equal(t, "Thanks", doc.Find(".banner-success .banner-title").Text())

	doc = render(t, StatusBanner(forms.Failed("HTTP error! status: 500"), success))
	assert.Equal(t, FailureTitle, doc.Find(".banner-error .banner-title").Text())
	assert.Contains(t, doc.Find(".banner-error").Text(), "HTTP error! status: 500")

	doc = render(t, StatusBanner(forms.Failed(""), success))
	assert.Contains(t, doc.Find(".banner-error").Text(), FailureFallback)

	doc = render(t, StatusBanner(forms.Idle(), success))
	assert.Zero(t, doc.Find(".banner").Length())
}

func TestLeadFormIncompleteIsAriaDisabled(t *testing.T) {
	schema := forms.Qualified(forms.RelayConfig{AccessKey: "k"}, false)
	state := schema.NewState()
	state.Set("name", "Jane")

	doc := render(t, LeadForm(LeadFormProps{Schema: schema, State: state, Action: "/discovery-call", ContactEmail: "team@example.com"}))

	form := doc.Find("form#lead-form-qualified")
	require.Equal(t, 1, form.Length())
	valid, _ := form.Attr("data-valid")
	assert.Equal(t, "false", valid)
	disabled, _ := doc.Find("button[type=submit]").Attr("aria-disabled")
	assert.Equal(t, "true", disabled)

	name, _ := doc.Find("#qualified-name").Attr("value")
	assert.Equal(t, "Jane", name)
	assert.Equal(t, 2, doc.Find("textarea").Length())
	assert.Zero(t, doc.Find("input[type=file]").Length())
	assert.Equal(t, "What happens next?", doc.Find(".info-title").Text())
	mail, _ := doc.Find(".contact-box a").Attr("href")
	assert.Equal(t, "mailto:team@example.com", mail)
}

func TestLeadFormShowsFieldErrors(t *testing.T) {
	schema := forms.Disqualified(forms.RelayConfig{AccessKey: "k"}, false)
	state := schema.NewState()
	state.Set("email", "nope")
	errs := schema.Validate(state)

	doc := render(t, LeadForm(LeadFormProps{Schema: schema, State: state, Errors: errs, Action: "/book-consultation"}))

	email := doc.Find(`[data-field="email"]`)
	assert.True(t, email.HasClass("has-error"))
	assert.Equal(t, forms.ReasonInvalidEmail, email.Find(".field-error").Text())
	assert.Equal(t, "Consultation Fee: 100$", doc.Find(".notice-title").Text())
	_, hidden := doc.Find(`[data-field="additionalNotes"] .field-error`).Attr("hidden")
	assert.True(t, hidden)
}

func TestLeadFormWithAttachmentUsesMultipart(t *testing.T) {
	schema := forms.Qualified(forms.RelayConfig{}, true)
	doc := render(t, LeadForm(LeadFormProps{Schema: schema, State: schema.NewState(), Action: "/discovery-call"}))
	enctype, _ := doc.Find("form").Attr("enctype")
	assert.Equal(t, "multipart/form-data", enctype)
	assert.Equal(t, 1, doc.Find("input[type=file][name=screenshot]").Length())
}

func TestLogoMarqueeDuplicatesSet(t *testing.T) {
	doc := render(t, LogoMarquee("WE WORK ONLY WITH THE BEST", []string{"/a.png", "/b.png"}))
	assert.Equal(t, 4, doc.Find(".marquee img").Length())
	assert.Equal(t, 1, doc.Find(`.marquee-set[aria-hidden="true"]`).Length())
}

func TestSliderBulletsOnePerCardOnMobile(t *testing.T) {
	doc := render(t, SliderBullets(carousel.NewClamp(5, carousel.MobileVisible, 3), func(int) string { return "#videos" }))

	bullets := doc.Find(".slider-bullet")
	require.Equal(t, 5, bullets.Length())
	assert.True(t, bullets.Eq(3).HasClass("slider-bullet-active"))
	assert.Equal(t, 1, doc.Find(".slider-bullet-active").Length())
	href, _ := bullets.First().Attr("href")
	assert.Equal(t, "#videos", href)
}

func TestNextStepFollowsSelection(t *testing.T) {
	doc := render(t, NextStep(funnel.Selection{Revenue: funnel.RevenueBelow200K}))
	next := doc.Find("#next-step")
	assert.Equal(t, "span", goquery.NodeName(next))
	assert.True(t, next.HasClass("is-disabled"))
	assert.True(t, next.HasClass("client-only"))

	doc = render(t, NextStep(funnel.Selection{Revenue: funnel.RevenueBelow200K, AdSpend: funnel.AdSpendOrganic}))
	href, ok := doc.Find("a#next-step").Attr("href")
	require.True(t, ok)
	assert.Equal(t, routes.Disqualified, href)
}

func TestBookingFrameEmbedsCalendar(t *testing.T) {
	doc := render(t, BookingFrame("https://cal.example/discovery"))

	frame := doc.Find(".booking-frame iframe")
	require.Equal(t, 1, frame.Length())
	src, _ := frame.Attr("src")
	assert.Equal(t, "https://cal.example/discovery", src)
	loading, _ := frame.Attr("loading")
	assert.Equal(t, "lazy", loading)
}
