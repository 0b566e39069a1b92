// Package ui holds the static assets served under /assets/.
package ui

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the embedded asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
