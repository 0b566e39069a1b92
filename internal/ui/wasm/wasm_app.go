//go:build js && wasm

package wasm

import (
	"strconv"
	"strings"
	"syscall/js"

	g "maragu.dev/gomponents"
)

var (
	// Document references the global browser document for DOM interactions.
	Document js.Value
	// handlers stores bound js.Func callbacks so they can be released later.
	handlers []js.Func
)

func addHandler(node js.Value, event string, handler func(this js.Value, args []js.Value) any) {
	if !node.Truthy() {
		return
	}
	fn := js.FuncOf(handler)
	node.Call("addEventListener", event, fn)
	handlers = append(handlers, fn)
}

func releaseHandlers() {
	for _, fn := range handlers {
		fn.Release()
	}
	handlers = handlers[:0]
}

func forEachNode(list js.Value, fn func(js.Value)) {
	if !list.Truthy() {
		return
	}
	length := list.Get("length").Int()
	for i := 0; i < length; i++ {
		fn(list.Index(i))
	}
}

func warn(args ...any) {
	console := js.Global().Get("console")
	if console.Truthy() {
		console.Call("warn", args...)
	}
}

func viewportWidth() int {
	return js.Global().Get("innerWidth").Int()
}

func dataInt(node js.Value, key string) int {
	n, _ := strconv.Atoi(node.Get("dataset").Get(key).String())
	return n
}

func pixels(value string) float64 {
	n, _ := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), "px"), 64)
	return n
}

// closest returns the nearest ancestor of the event target matching selector.
func closest(event js.Value, selector string) js.Value {
	target := event.Get("target")
	if !target.Truthy() || target.Get("closest").Type() != js.TypeFunction {
		return js.Null()
	}
	return target.Call("closest", selector)
}

// replaceNode swaps node for the rendered component.
func replaceNode(node js.Value, n g.Node) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		warn("render failed", err.Error())
		return
	}
	node.Set("outerHTML", b.String())
}

func replaceURL(href string) {
	history := js.Global().Get("history")
	if history.Truthy() {
		history.Call("replaceState", js.Null(), "", href)
	}
}

func navigate(href string) {
	js.Global().Get("location").Set("href", href)
}
