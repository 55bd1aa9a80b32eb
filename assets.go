// Package lightlock carries the files embedded into the binary.
package lightlock

import "embed"

// WebAssets holds the HTML templates served by the gallery.
//
//go:embed web
var WebAssets embed.FS
