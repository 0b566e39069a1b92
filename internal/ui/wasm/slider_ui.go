//go:build js && wasm

package wasm

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/Its-donkey/convertx/internal/carousel"
	"github.com/Its-donkey/convertx/internal/ui/components"
)

func bindTestimonials() {
	section := Document.Call("getElementById", "testimonials")
	if !section.Truthy() {
		return
	}
	slides := section.Call("querySelectorAll", "article[data-slide]")
	length := slides.Get("length").Int()
	if length == 0 {
		return
	}
	t := &carousel.Testimonials{Slider: carousel.Wrap{Len: length}.At(dataInt(section, "index"))}

	show := func() {
		forEachNode(slides, func(slide js.Value) {
			classes := slide.Get("classList")
			if dataInt(slide, "slide") == t.Slider.Index {
				slide.Call("removeAttribute", "hidden")
				classes.Call("add", "slide-enter")
				return
			}
			slide.Call("setAttribute", "hidden", "")
			classes.Call("remove", "slide-enter")
		})
		section.Get("dataset").Set("index", strconv.Itoa(t.Slider.Index))
	}

	addHandler(section, "click", func(_ js.Value, args []js.Value) any {
		control := closest(args[0], "[data-slider-action]")
		if !control.Truthy() {
			return nil
		}
		args[0].Call("preventDefault")
		now := time.Now()
		moved := false
		switch control.Get("dataset").Get("sliderAction").String() {
		case "next":
			moved = t.Next(now)
		case "prev":
			moved = t.Prev(now)
		}
		if moved {
			show()
		}
		return nil
	})
}

// videoSlider drives the clamped video slider in scroll mode: the track
// scrolls natively and the index follows the scroll position.
type videoSlider struct {
	section js.Value
	track   js.Value
	length  int
	clamp   carousel.Clamp
	drag    carousel.Drag
	// swallowClick is set when a drag ends so the click that follows does not
	// start a video.
	swallowClick bool
}

func bindVideoSlider() {
	section := Document.Call("getElementById", "videos")
	track := Document.Call("getElementById", "video-track")
	if !section.Truthy() || !track.Truthy() {
		return
	}
	length := track.Call("querySelectorAll", "[data-card]").Get("length").Int()
	s := &videoSlider{section: section, track: track, length: length}
	s.clamp = carousel.NewClamp(length, carousel.VisibleCount(viewportWidth()), dataInt(section, "index"))

	track.Get("style").Call("removeProperty", "--slider-index")
	track.Get("classList").Call("add", "is-scroll")
	s.renderBullets()
	s.render()
	s.scroll("auto")

	addHandler(section, "click", s.onControl)
	addHandler(track, "click", func(_ js.Value, args []js.Value) any {
		if s.swallowClick {
			s.swallowClick = false
			args[0].Call("preventDefault")
			args[0].Call("stopPropagation")
		}
		return nil
	})
	addHandler(track, "mousedown", func(_ js.Value, args []js.Value) any {
		e := args[0]
		s.drag.Press(e.Get("clientX").Float(), e.Get("clientY").Float(), track.Get("scrollLeft").Float())
		return nil
	})
	addHandler(js.Global(), "mousemove", func(_ js.Value, args []js.Value) any {
		e := args[0]
		s.move(e.Get("clientX").Float(), e.Get("clientY").Float())
		return nil
	})
	addHandler(js.Global(), "mouseup", func(js.Value, []js.Value) any {
		s.release()
		return nil
	})
	addHandler(track, "touchstart", func(_ js.Value, args []js.Value) any {
		touch := args[0].Get("touches").Index(0)
		s.drag.Touch(touch.Get("clientX").Float(), track.Get("scrollLeft").Float())
		return nil
	})
	addHandler(track, "touchmove", func(_ js.Value, args []js.Value) any {
		touch := args[0].Get("touches").Index(0)
		s.move(touch.Get("clientX").Float(), touch.Get("clientY").Float())
		return nil
	})
	addHandler(track, "touchend", func(js.Value, []js.Value) any {
		s.release()
		s.swallowClick = false
		return nil
	})
	addHandler(track, "scroll", func(js.Value, []js.Value) any {
		if s.drag.Phase() == carousel.Dragging || !s.drag.TrackScroll(time.Now()) {
			return nil
		}
		s.followScroll()
		return nil
	})
	addHandler(js.Global(), "resize", func(js.Value, []js.Value) any {
		visible := carousel.VisibleCount(viewportWidth())
		if visible != s.clamp.Visible {
			s.clamp = carousel.NewClamp(s.length, visible, s.clamp.Index)
			s.renderBullets()
		}
		s.render()
		s.scroll("auto")
		return nil
	})
}

func (s *videoSlider) onControl(_ js.Value, args []js.Value) any {
	e := args[0]
	if jump := closest(e, "[data-slider-jump]"); jump.Truthy() {
		e.Call("preventDefault")
		s.clamp = s.clamp.Jump(dataInt(jump, "sliderJump"))
	} else if control := closest(e, "[data-slider-action]"); control.Truthy() {
		e.Call("preventDefault")
		switch control.Get("dataset").Get("sliderAction").String() {
		case "next":
			s.clamp = s.clamp.Next()
		case "prev":
			s.clamp = s.clamp.Prev()
		}
	} else {
		return nil
	}
	s.render()
	s.scroll("smooth")
	return nil
}

func (s *videoSlider) move(x, y float64) {
	offset, ok := s.drag.Move(x, y)
	if s.drag.Phase() == carousel.Dragging {
		s.track.Get("classList").Call("add", "is-dragging")
	}
	if ok {
		s.track.Set("scrollLeft", offset)
	}
}

func (s *videoSlider) release() {
	if s.drag.Phase() == carousel.Idle {
		return
	}
	click := s.drag.Release()
	s.track.Get("classList").Call("remove", "is-dragging")
	if click {
		return
	}
	s.swallowClick = true
	s.followScroll()
	s.scroll("smooth")
}

// followScroll moves the index to the card nearest the scroll position.
func (s *videoSlider) followScroll() {
	idx := carousel.IndexFromScroll(
		s.track.Get("scrollLeft").Float(),
		s.track.Get("clientWidth").Float(),
		s.cardWidth(),
		s.length,
		s.clamp.Visible,
	)
	next := s.clamp.Jump(idx)
	if next.Index != s.clamp.Index {
		s.clamp = next
		s.render()
	}
}

// scroll brings the current index into view. behavior is "smooth" or "auto".
func (s *videoSlider) scroll(behavior string) {
	maxScroll := s.track.Get("scrollWidth").Float() - s.track.Get("clientWidth").Float()
	s.drag.ProgrammaticScroll(time.Now())
	s.track.Call("scrollTo", map[string]any{
		"left":     s.clamp.ScrollTarget(s.cardWidth(), maxScroll),
		"behavior": behavior,
	})
}

// cardWidth is the width of one card plus the gap after it.
func (s *videoSlider) cardWidth() float64 {
	card := s.track.Call("querySelector", "[data-card]")
	if !card.Truthy() {
		return 0
	}
	gap := pixels(js.Global().Call("getComputedStyle", s.track).Get("columnGap").String())
	return card.Call("getBoundingClientRect").Get("width").Float() + gap
}

func (s *videoSlider) render() {
	c := s.clamp
	s.section.Get("dataset").Set("index", strconv.Itoa(c.Index))

	forEachNode(s.section.Call("querySelectorAll", "[data-slider-action]"), func(control js.Value) {
		enabled := c.CanNext()
		if control.Get("dataset").Get("sliderAction").String() == "prev" {
			enabled = c.CanPrev()
		}
		control.Get("classList").Call("toggle", "disabled", !enabled)
		control.Call("setAttribute", "aria-disabled", strconv.FormatBool(!enabled))
	})
	bullets := c.Bullets()
	forEachNode(s.section.Call("querySelectorAll", ".slider-bullet"), func(dot js.Value) {
		active := false
		for _, b := range bullets {
			if b.Target == dataInt(dot, "sliderJump") {
				active = b.Active
			}
		}
		dot.Get("classList").Call("toggle", "slider-bullet-active", active)
	})
	toggleClass(s.section.Call("querySelector", ".slider-mask-left"), "slider-mask-visible", c.CanPrev())
	toggleClass(s.section.Call("querySelector", ".slider-mask-right"), "slider-mask-visible", c.CanNext())
	setHidden(s.section.Call("querySelector", ".slider-arrows"), !c.ShowNavigation())
	setHidden(s.section.Call("querySelector", ".slider-navigation"), !c.ShowBullets())
}

// renderBullets rebuilds the pagination dots for the current page size.
func (s *videoSlider) renderBullets() {
	row := s.section.Call("querySelector", ".bullets")
	if !row.Truthy() {
		return
	}
	replaceNode(row, components.SliderBullets(s.clamp, func(int) string { return "#videos" }))
}

func toggleClass(node js.Value, class string, on bool) {
	if node.Truthy() {
		node.Get("classList").Call("toggle", class, on)
	}
}

func setHidden(node js.Value, hidden bool) {
	if !node.Truthy() {
		return
	}
	if hidden {
		node.Call("setAttribute", "hidden", "")
	} else {
		node.Call("removeAttribute", "hidden")
	}
}
