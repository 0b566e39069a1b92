//go:build js && wasm

package main

import "github.com/Its-donkey/convertx/internal/ui/wasm"

func main() {
	wasm.RunApp()
}
