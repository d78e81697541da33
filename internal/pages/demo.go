package pages

import (
	"embed"
	"io/fs"
)

//go:embed demo
var demoFS embed.FS

// Demo returns the built-in pages used when no pages directory is given.
func Demo() fs.FS {
	sub, err := fs.Sub(demoFS, "demo")
	if err != nil {
		panic(err)
	}
	return sub
}
