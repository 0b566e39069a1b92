package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/carousel"
	"github.com/Its-donkey/convertx/internal/content"
)

// WistiaScriptURL is the player library the wistia-player element needs.
const WistiaScriptURL = "https://fast.wistia.com/assets/external/E-v1.js"

// VideoAspect is the aspect ratio both sliders give their players.
const VideoAspect = "0.6"

// WistiaScript loads the player library. Pages render it once, however many
// sliders they hold.
func WistiaScript() g.Node {
	return Script(ID("wistia-player-script"), Src(WistiaScriptURL), g.Attr("async"))
}

// WistiaPlayer renders the player custom element for a media id.
func WistiaPlayer(mediaID, aspect string) g.Node {
	return g.El("wistia-player", g.Attr("media-id", mediaID), g.Attr("aspect", aspect))
}

func arrowIcon(d string) g.Node {
	return g.El("svg",
		g.Attr("width", "40"), g.Attr("height", "40"),
		g.Attr("viewBox", "0 0 24 24"), g.Attr("fill", "none"),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.El("path", g.Attr("d", d), g.Attr("stroke", "currentColor"), g.Attr("stroke-width", "1"),
			g.Attr("stroke-linecap", "round"), g.Attr("stroke-linejoin", "round")),
	)
}

// ReviewsProps configures the testimonial section.
type ReviewsProps struct {
	Heading string
	Items   []content.Testimonial
	Slider  carousel.Wrap
	// Href builds the link that shows item i without the client.
	Href func(i int) string
}

// ReviewsSection renders the wrapping testimonial slider. Every testimonial is
// rendered; all but the active one are hidden so the client can switch
// without a round trip.
func ReviewsSection(p ReviewsProps) g.Node {
	if len(p.Items) == 0 {
		return g.Group(nil)
	}
	active := p.Slider.At(p.Slider.Index)

	slides := make([]g.Node, 0, len(p.Items))
	for i, item := range p.Items {
		slides = append(slides, testimonialSlide(i, item, i == active.Index))
	}

	return Section(ID("testimonials"), Class("main-section reviews"),
		Data("slider", "wrap"),
		Data("index", strconv.Itoa(active.Index)),
		Data("length", strconv.Itoa(active.Len)),
		Div(Class("container reviews-grid"),
			H2(Class("h2 reviews-heading"), g.Text(p.Heading)),
			g.Group(slides),
			Div(Class("reviews-nav"),
				A(Href(p.Href(active.Prev().Index)), Class("round-arrow"), Data("slider-action", "prev"), Aria("label", "Previous review"),
					arrowIcon("M20 12H4M4 12L10 18M4 12L10 6")),
				A(Href(p.Href(active.Next().Index)), Class("round-arrow"), Data("slider-action", "next"), Aria("label", "Next review"),
					arrowIcon("M4 12H20M20 12L14 6M20 12L14 18")),
			),
		),
	)
}

func testimonialSlide(i int, t content.Testimonial, active bool) g.Node {
	tags := make([]g.Node, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tags = append(tags, Span(Class("tag"), g.Text(tag)))
	}
	return Article(Class("review-slide"), Data("slide", strconv.Itoa(i)), g.If(!active, g.Attr("hidden")),
		Div(Class("review-copy"),
			P(Class("review-title"), g.Text(t.Title)),
			Div(Class("brand"),
				Img(Src(t.BrandImage), Alt(t.BrandName), Class("brand-image"), g.Attr("loading", "lazy")),
				Div(Class("brand-info"),
					Span(Class("brand-name"), g.Text(t.BrandName)),
					Span(Class("brand-meta"), g.Text(t.BrandFollowers)),
					Span(Class("brand-meta"), g.Text(t.BrandHandle)),
				),
			),
			P(Class("review-description"), g.Text("“"+t.Description+"”")),
			Div(Class("tags"), g.Group(tags)),
		),
		Div(Class("video-border-container"),
			Div(Class("video-frame"), WistiaPlayer(t.VideoID, VideoAspect)),
		),
	)
}

// VideoSliderProps configures the video review slider.
type VideoSliderProps struct {
	Heading string
	Accent  string
	Items   []content.VideoReview
	Slider  carousel.Clamp
	// Href builds the link that scrolls the slider to index i without the client.
	Href func(i int) string
}

// VideoSlider renders the clamped video review slider with its arrows and
// bullet row. The server renders the desktop page size; the client recomputes
// it from the viewport.
func VideoSlider(p VideoSliderProps) g.Node {
	s := p.Slider
	cards := make([]g.Node, 0, len(p.Items))
	for i, item := range p.Items {
		cards = append(cards, videoCard(i, item))
	}

	return Section(ID("videos"), Class("video-reviews"),
		Data("slider", "clamp"),
		Data("index", strconv.Itoa(s.Index)),
		Data("length", strconv.Itoa(s.Len)),
		Div(Class("customers-container"),
			H2(Class("video-reviews-heading"),
				Span(Class("text-gradient"), g.Text(p.Heading)),
				Span(Class("mask-right"), g.Text(p.Accent)),
			),
			g.If(s.ShowNavigation(), Div(Class("slider-arrows"),
				sliderLink(p.Href(s.Prev().Index), "slider-arrow slider-arrow-prev", "prev", "Previous review", s.CanPrev(), Div(Class("arrow-icon"))),
				sliderLink(p.Href(s.Next().Index), "slider-arrow slider-arrow-next", "next", "Next review", s.CanNext(), Div(Class("arrow-icon"))),
			)),
		),
		Div(Class("customers-container slider-viewport"),
			Div(c.Classes{"slider-mask": true, "slider-mask-left": true, "slider-mask-visible": s.CanPrev()}),
			Div(c.Classes{"slider-mask": true, "slider-mask-right": true, "slider-mask-visible": s.CanNext()}),
			Div(ID("video-track"), Class("video-reviews-slider"),
				g.Attr("style", fmt.Sprintf("--slider-index: %d", s.Index)),
				g.Group(cards),
			),
			g.If(s.ShowBullets(), bulletRow(p, s)),
		),
	)
}

func videoCard(i int, r content.VideoReview) g.Node {
	return Article(Class("video-review-card"), Data("card", strconv.Itoa(i)),
		Div(Class("video-frame"), WistiaPlayer(r.VideoID, VideoAspect)),
		Div(Class("card-body"),
			Div(Class("info-head"),
				Img(Src(r.Image), Alt(r.IGN), Class("avatar"), g.Attr("loading", "lazy")),
				Div(
					Div(Class("ign"), g.Text(r.IGN)),
					Div(Class("followers"), g.Text(r.Followers)),
				),
			),
			g.If(r.Description != "", Div(Class("card-quote"), g.Text("“"+r.Description+"”"))),
		),
	)
}

func bulletRow(p VideoSliderProps, s carousel.Clamp) g.Node {
	return Div(Class("slider-navigation"),
		sliderLink(p.Href(s.Prev().Index), "bullets-arrow bullets-arrow-prev", "prev", "Previous", s.CanPrev(), Div(Class("arrow-icon-small"))),
		SliderBullets(s, p.Href),
		sliderLink(p.Href(s.Next().Index), "bullets-arrow bullets-arrow-next", "next", "Next", s.CanNext(), Div(Class("arrow-icon-small"))),
	)
}

// SliderBullets renders the pagination dots of s. The client re-renders them
// when the page size changes with the viewport.
func SliderBullets(s carousel.Clamp, href func(i int) string) g.Node {
	bullets := s.Bullets()
	dots := make([]g.Node, 0, len(bullets))
	for i, b := range bullets {
		dots = append(dots, A(Href(href(b.Target)),
			c.Classes{"slider-bullet": true, "slider-bullet-active": b.Active},
			Data("slider-jump", strconv.Itoa(b.Target)),
			Aria("label", fmt.Sprintf("Go to slide %d", i+1)),
		))
	}
	return Div(Class("bullets"), g.Group(dots))
}

func sliderLink(href, class, action, label string, enabled bool, icon g.Node) g.Node {
	if !enabled {
		return Span(Class(class+" disabled"), Data("slider-action", action), Aria("label", label), Aria("disabled", "true"), icon)
	}
	return A(Href(href), Class(class), Data("slider-action", action), Aria("label", label), icon)
}
