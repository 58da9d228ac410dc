// Package assets holds the embedded base texture images.
package assets

import "embed"

// Textures contains the base surface images, one per body family.
//
//go:embed textures/*.png
var Textures embed.FS
