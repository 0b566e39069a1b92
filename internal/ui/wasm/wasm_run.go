//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/convertx/internal/ui/forms"
)

// RunApp enhances the server-rendered page and blocks forever. Every widget
// already works without it; the client only takes over navigation that would
// otherwise cost a round trip.
func RunApp() {
	done := make(chan struct{})
	Document = js.Global().Get("document")
	Document.Get("documentElement").Get("classList").Call("add", "client")

	releaseHandlers()
	bindStickyHeader()
	bindHeroVideo()
	bindTestimonials()
	bindVideoSlider()
	bindGallery()
	bindFunnel()
	bindProgressExit()
	forms.BindLeadForms()
	<-done
}
