//go:build js && wasm

package wasm

import (
	"net/url"
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"github.com/Its-donkey/convertx/internal/funnel"
	"github.com/Its-donkey/convertx/internal/routes"
	"github.com/Its-donkey/convertx/internal/ui/components"
	"github.com/Its-donkey/convertx/internal/ui/state"
)

// bindStickyHeader reveals the sticky header once the watched header leaves
// the viewport and delays its links until the exit animation has run.
func bindStickyHeader() {
	header := Document.Call("getElementById", "sticky-header")
	ctor := js.Global().Get("IntersectionObserver")
	if !header.Truthy() || !ctor.Truthy() {
		return
	}
	sticky := &state.Sticky{}
	apply := func() {
		phase := sticky.Phase()
		header.Get("dataset").Set("phase", phase.String())
		header.Call("setAttribute", "aria-hidden", strconv.FormatBool(phase != state.StickyVisible))
	}

	callback := js.FuncOf(func(_ js.Value, args []js.Value) any {
		forEachNode(args[0], func(entry js.Value) {
			sticky.Observe(entry.Get("isIntersecting").Bool())
		})
		apply()
		return nil
	})
	handlers = append(handlers, callback)
	observer := ctor.New(callback)

	observed := ""
	watch := func() {
		target := state.ObserveTarget(viewportWidth())
		if target == observed {
			return
		}
		el := Document.Call("getElementById", target)
		if !el.Truthy() {
			return
		}
		observer.Call("disconnect")
		observer.Call("observe", el)
		observed = target
	}
	watch()
	addHandler(js.Global(), "resize", func(js.Value, []js.Value) any {
		watch()
		return nil
	})

	addHandler(header, "click", func(_ js.Value, args []js.Value) any {
		link := closest(args[0], "a[data-sticky-link]")
		if !link.Truthy() || !sticky.Navigate(link.Get("href").String()) {
			return nil
		}
		args[0].Call("preventDefault")
		apply()
		time.AfterFunc(state.StickyExitDuration, func() {
			path := sticky.Done()
			apply()
			if path != "" {
				navigate(path)
			}
		})
		return nil
	})
}

// bindHeroVideo clears the loading overlay once the hero video has data, or
// after the fallback delay.
func bindHeroVideo() {
	wrap := Document.Call("querySelector", ".hero-video")
	video := Document.Call("getElementById", "hero-video")
	if !wrap.Truthy() || !video.Truthy() {
		return
	}
	h := &state.HeroVideo{}
	h.Start(time.Now())
	reveal := func() {
		if h.Revealed(time.Now()) {
			wrap.Get("dataset").Set("state", "ready")
		}
	}
	// HAVE_CURRENT_DATA
	if video.Get("readyState").Int() >= 2 {
		h.Loaded()
		reveal()
		return
	}
	addHandler(video, "loadeddata", func(js.Value, []js.Value) any {
		h.Loaded()
		reveal()
		return nil
	})
	time.AfterFunc(state.HeroVideoFallback, reveal)
}

func bindGallery() {
	addHandler(Document, "click", func(_ js.Value, args []js.Value) any {
		link := closest(args[0], "[data-gallery-expand]")
		if !link.Truthy() {
			return nil
		}
		args[0].Call("preventDefault")
		gallery := Document.Call("getElementById", "gallery")
		if gallery.Truthy() {
			classes := gallery.Get("classList")
			classes.Call("remove", "is-collapsed")
			classes.Call("add", "is-expanded")
			if fade := gallery.Call("querySelector", ".gallery-fade"); fade.Truthy() {
				fade.Call("remove")
			}
		}
		if more := Document.Call("querySelector", ".gallery-more"); more.Truthy() {
			more.Call("remove")
		}
		replaceURL(link.Get("href").String())
		return nil
	})
}

// bindFunnel keeps the NEXT STEP control and the address bar in step with
// the two funnel selects.
func bindFunnel() {
	form := Document.Call("getElementById", "funnel-form")
	if !form.Truthy() {
		return
	}
	addHandler(form, "change", func(js.Value, []js.Value) any {
		values := url.Values{}
		forEachNode(form.Call("querySelectorAll", "select"), func(sel js.Value) {
			value := sel.Get("value").String()
			values.Set(sel.Get("name").String(), value)
			sel.Get("classList").Call("toggle", "is-empty", value == "")
		})
		sel := funnel.Parse(values)
		if next := Document.Call("getElementById", "next-step"); next.Truthy() {
			replaceNode(next, components.NextStep(sel))
		}
		href := routes.GettingStarted
		if q := sel.Values().Encode(); q != "" {
			href += "?" + q
		}
		replaceURL(href)
		return nil
	})
}

// bindProgressExit empties the funnel progress bar before a step link is
// followed, mirroring how it fills on arrival.
func bindProgressExit() {
	bar := Document.Call("getElementById", "progress-bar")
	if !bar.Truthy() {
		return
	}
	addHandler(Document, "click", func(_ js.Value, args []js.Value) any {
		e := args[0]
		if e.Get("defaultPrevented").Bool() || e.Get("metaKey").Bool() || e.Get("ctrlKey").Bool() || e.Get("shiftKey").Bool() {
			return nil
		}
		link := closest(e, ".step a[href]")
		if !link.Truthy() {
			return nil
		}
		href := link.Call("getAttribute", "href").String()
		if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, "//") {
			return nil
		}
		e.Call("preventDefault")
		bar.Get("style").Call("setProperty", "--progress", "0%")
		time.AfterFunc(state.ProgressExitDuration, func() {
			navigate(href)
		})
		return nil
	})
}
