// Package texture synthesizes body surface textures from embedded base
// images modulated by temperature, density, and axial tilt.
package texture

import (
	"bytes"
	"image"

	_ "image/png" // Register PNG decoder

	"github.com/litescript/ls-atlas/assets"
	"github.com/litescript/ls-atlas/internal/catalog"
)

// Family categorizes a body's appearance and selects its base image.
type Family string

const (
	FamilyDefault   Family = "default" // guaranteed-available fallback
	FamilyGasHot    Family = "gasGiantHot"
	FamilyGasCool   Family = "gasGiantCool"
	FamilyRockyHot  Family = "rockyHot"
	FamilyRockyCool Family = "rockyCool"
	FamilyIcy       Family = "icy"
	FamilyStellar   Family = "stellar"
)

// AssetFiles maps each family to its base image in the embedded FS.
// Immutable after init. FamilyDefault must always resolve.
var AssetFiles = map[Family]string{
	FamilyDefault:   "default.png",
	FamilyGasHot:    "gas_hot.png",
	FamilyGasCool:   "gas_cool.png",
	FamilyRockyHot:  "rocky_hot.png",
	FamilyRockyCool: "rocky_cool.png",
	FamilyIcy:       "icy.png",
	FamilyStellar:   "stellar.png",
}

// AssetPath returns the embedded-FS path for a family. Families missing from
// the table resolve to the fallback asset.
func AssetPath(f Family) string {
	file, ok := AssetFiles[f]
	if !ok {
		file = AssetFiles[FamilyDefault]
	}
	return "textures/" + file
}

// Temperature thresholds for family selection, Kelvin.
const (
	gasHotThreshold   = 500
	rockyHotThreshold = 300
)

// SelectFamily picks the base image family for a body type at an effective
// temperature. Unrecognized body types always map to the fallback.
func SelectFamily(bodyType string, tempK float64) Family {
	switch bodyType {
	case catalog.TypeGasGiant:
		if tempK > gasHotThreshold {
			return FamilyGasHot
		}
		return FamilyGasCool
	case catalog.TypeRocky:
		if tempK > rockyHotThreshold {
			return FamilyRockyHot
		}
		return FamilyRockyCool
	default:
		return FamilyDefault
	}
}

// Loader resolves an asset path to a decoded image. The embedded FS is the
// default; tests inject failing loaders to exercise the fallback path.
type Loader interface {
	Load(path string) (image.Image, error)
}

// embeddedLoader loads assets from the compiled-in FS.
type embeddedLoader struct{}

func (embeddedLoader) Load(path string) (image.Image, error) {
	b, err := assets.Textures.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}
