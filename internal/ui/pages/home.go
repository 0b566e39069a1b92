package pages

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Its-donkey/convertx/internal/carousel"
	"github.com/Its-donkey/convertx/internal/content"
	"github.com/Its-donkey/convertx/internal/gallery"
	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/components"
)

// Query parameters that carry the landing page widget state.
const (
	ParamReview  = "review"
	ParamVideos  = "videos"
	ParamGallery = "gallery"

	galleryExpanded = "expanded"
)

// ScreenshotsPrefix is the URL prefix of the gallery images.
const ScreenshotsPrefix = "/assets/screenshots/"

// HomeState is the slider and gallery state of the landing page, carried in
// the query string so every control works without the client.
type HomeState struct {
	Review   int
	Videos   int
	Expanded bool
}

// ParseHomeState reads the widget state from query values. Malformed numbers
// read as zero; the sliders normalise out-of-range indices.
func ParseHomeState(q url.Values) HomeState {
	review, _ := strconv.Atoi(q.Get(ParamReview))
	videos, _ := strconv.Atoi(q.Get(ParamVideos))
	return HomeState{
		Review:   review,
		Videos:   videos,
		Expanded: q.Get(ParamGallery) == galleryExpanded,
	}
}

// Href encodes the state as a landing page link ending in anchor.
func (s HomeState) Href(anchor string) string {
	q := url.Values{}
	if s.Review != 0 {
		q.Set(ParamReview, strconv.Itoa(s.Review))
	}
	if s.Videos != 0 {
		q.Set(ParamVideos, strconv.Itoa(s.Videos))
	}
	if s.Expanded {
		q.Set(ParamGallery, galleryExpanded)
	}
	href := routes.Home
	if enc := q.Encode(); enc != "" {
		href += "?" + enc
	}
	if anchor != "" {
		href += "#" + anchor
	}
	return href
}

// HomeData is everything the landing page renders.
type HomeData struct {
	Content content.Content
	// Screenshots are the measured gallery images, in content order.
	Screenshots []gallery.Image
	State       HomeState
}

// Home renders the landing page.
func Home(site Site, doc Doc, data HomeData) g.Node {
	c := data.Content
	st := data.State

	reviews := carousel.Wrap{Len: len(c.Testimonials.Items)}.At(st.Review)
	videos := carousel.NewClamp(len(c.VideoReviews.Items), carousel.DesktopVisible, st.Videos)

	return document(site, doc, routeFor(routes.PageHome).Title, "page-home",
		components.StickyHeader(),
		Section(Class("hero"),
			Div(Class("glow glow-left")),
			Div(Class("glow glow-right")),
			Div(Class("enter-down"), components.Announcement(c.Announcement)),
			Div(Class("home-container enter-up"),
				heroCopy(c),
				heroVideo(c.Hero),
			),
		),
		components.ReviewsSection(components.ReviewsProps{
			Heading: c.Testimonials.Heading,
			Items:   c.Testimonials.Items,
			Slider:  reviews,
			Href: func(i int) string {
				next := st
				next.Review = i
				return next.Href("testimonials")
			},
		}),
		components.VideoSlider(components.VideoSliderProps{
			Heading: c.VideoReviews.Heading,
			Accent:  c.VideoReviews.Accent,
			Items:   c.VideoReviews.Items,
			Slider:  videos,
			Href: func(i int) string {
				next := st
				next.Videos = i
				return next.Href("videos")
			},
		}),
		components.Gallery(components.GalleryProps{
			Heading: c.Screenshots.Heading,
			Layout:  gallery.Build(data.Screenshots, ScreenshotsPrefix, st.Expanded),
			ExpandHref: func() string {
				next := st
				next.Expanded = true
				return next.Href("results")
			}(),
		}),
		g.If(len(c.Testimonials.Items)+len(c.VideoReviews.Items) > 0, components.WistiaScript()),
	)
}

func heroCopy(c content.Content) g.Node {
	return Div(Class("hero-left"),
		Div(Class("mobile-logo"), components.Logo("")),
		components.SiteHeader(),
		Div(Class("rating-badge"),
			Div(Class("rating-inner"),
				components.Stars(),
				Span(g.Text(c.Hero.Rating)),
			),
		),
		H1(Class("h1 hero-headline"), g.Text(c.Hero.Headline)),
		P(Class("hero-body"), g.Text(c.Hero.Body)),
		Div(ID("hero-mobile-buttons"), Class("mobile-buttons"),
			components.LinkButton(components.ButtonProps{Text: "BOOK A CONSULTATION", Href: routes.BookConsultation, Variant: components.Outline}),
			components.LinkButton(components.ButtonProps{Text: "START NOW", Href: routes.GettingStarted, Variant: components.Bulk}),
		),
		components.LogoMarquee(c.Partners.Heading, c.Partners.Logos),
	)
}

// heroVideo renders the phone video with its loading overlay. The overlay
// fades once the video has data or after a fallback delay, whichever is first.
func heroVideo(h content.Hero) g.Node {
	return Div(Class("hero-video"), Data("state", "loading"),
		Div(ID("hero-video-overlay"), Class("video-overlay video-clip"),
			Div(Class("spinner"), g.Attr("aria-hidden", "true")),
		),
		Video(ID("hero-video"), Class("video-clip"),
			Src(h.Video),
			g.If(h.Poster != "", g.Attr("poster", h.Poster)),
			g.Attr("autoplay"), g.Attr("muted"), g.Attr("loop"), g.Attr("playsinline"),
			g.Attr("preload", "auto"),
		),
	)
}
