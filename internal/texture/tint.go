package texture

import colorful "github.com/lucasb-eyer/go-colorful"

// Temperature-to-hue mapping domain, Kelvin. Values outside the domain clamp
// to the endpoints.
const (
	tintTempMin = 50
	tintTempMax = 400

	// maxHue is the cold end of the sweep (blue); the hot end is 0 (red).
	maxHue = 240
)

// darkenFactor is applied per channel when a body is dense (>5 g/cm3).
const darkenFactor = 0.8

// Tint maps an effective temperature to the uniform RGB multiplier applied
// to every pixel. The hue sweeps blue to red across [50K, 400K] at full
// saturation and half lightness; dense bodies get each channel scaled down.
// Channels are in [0,1].
func Tint(tempK float64, dense bool) colorful.Color {
	n := (tempK - tintTempMin) / (tintTempMax - tintTempMin)
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}

	c := colorful.Hsl((1-n)*maxHue, 1, 0.5)
	if dense {
		c.R *= darkenFactor
		c.G *= darkenFactor
		c.B *= darkenFactor
	}
	return c
}
