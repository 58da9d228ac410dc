package texture

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/logging"
)

// TextureSize is the edge length of the synthesized square buffer.
const TextureSize = 1024

// Polar ice band geometry in normalized coordinates centered on the buffer.
const (
	iceBandNY = 0.4
	iceBandNX = 0.5
)

// Synthesizer produces surface textures for catalog bodies. Safe for
// concurrent use: each call is independent and the asset table is read-only.
type Synthesizer struct {
	loader Loader
	logger *logging.Logger
	size   int
}

// SynthOption configures a Synthesizer.
type SynthOption func(*Synthesizer)

// WithLoader sets a custom asset loader.
func WithLoader(l Loader) SynthOption {
	return func(s *Synthesizer) {
		s.loader = l
	}
}

// WithLogger sets the logger used for asset-load failures.
func WithLogger(logger *logging.Logger) SynthOption {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// WithSize overrides the output edge length. Intended for tests; rendering
// uses TextureSize.
func WithSize(size int) SynthOption {
	return func(s *Synthesizer) {
		s.size = size
	}
}

// NewSynthesizer creates a synthesizer backed by the embedded assets.
func NewSynthesizer(opts ...SynthOption) *Synthesizer {
	s := &Synthesizer{
		loader: embeddedLoader{},
		logger: logging.Discard(),
		size:   TextureSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Synthesize builds the surface texture for a body. It fails only when both
// the family's base image and the fallback asset fail to load; every other
// missing input degrades to a defined default. The returned buffer holds
// linear color values and must not be gamma-reinterpreted by the consumer.
func (s *Synthesizer) Synthesize(body catalog.Body) (*image.RGBA, error) {
	tempK, known := catalog.EffectiveTemp(body)
	if !known {
		// No measurement anywhere: tint clamps to the cold end of the scale.
		tempK = 0
	}

	family := SelectFamily(body.BodyType, tempK)

	base, err := s.loadWithFallback(family)
	if err != nil {
		return nil, err
	}

	return s.composite(base, body, tempK), nil
}

// loadWithFallback loads the family's base image, retrying exactly once
// against the fallback asset.
func (s *Synthesizer) loadWithFallback(family Family) (image.Image, error) {
	path := AssetPath(family)
	base, err := s.loader.Load(path)
	if err == nil {
		return base, nil
	}

	primary := &AssetLoadError{Path: path, Err: err}
	s.logger.Warn("%v, retrying with fallback", primary)

	fallbackPath := AssetPath(FamilyDefault)
	base, err = s.loader.Load(fallbackPath)
	if err != nil {
		return nil, &FallbackLoadError{Path: fallbackPath, Primary: primary, Err: err}
	}
	return base, nil
}

// composite scales the base image to the output size, applies the polar ice
// override, and multiplies every pixel by the temperature/density tint.
func (s *Synthesizer) composite(base image.Image, body catalog.Body, tempK float64) *image.RGBA {
	w, h := s.size, s.size
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), base, base.Bounds(), xdraw.Src, nil)

	tint := Tint(tempK, body.IsDense())
	ice := body.HasIceCaps()

	for y := 0; y < h; y++ {
		ny := float64(y)/float64(h) - 0.5
		polar := ice && math.Abs(ny) > iceBandNY
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]

		for x := 0; x < w; x++ {
			i := x * 4
			r, g, b := row[i], row[i+1], row[i+2]

			if polar {
				nx := float64(x)/float64(w) - 0.5
				if math.Abs(nx) < iceBandNX {
					r, g, b = 255, 255, 255
				}
			}

			// Multiply as [0,1] floats, truncate back to 8 bits.
			row[i] = clamp8(float64(r) / 255 * tint.R * 255)
			row[i+1] = clamp8(float64(g) / 255 * tint.G * 255)
			row[i+2] = clamp8(float64(b) / 255 * tint.B * 255)
			// row[i+3] alpha passes through
		}
	}

	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
