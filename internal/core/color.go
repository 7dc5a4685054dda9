package core

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA converts a CSS-style hsla colour. Hue is in degrees, saturation,
// lightness and alpha are fractions in [0, 1].
func HSLA(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(a)*255 + 0.5)}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
