package core

import "image/color"

// Stroke describes how a line segment is painted.
type Stroke struct {
	Color color.NRGBA
	Width float64
	// Glow is the blur radius of an optional halo drawn under the line.
	Glow      float64
	GlowColor color.NRGBA
}

// Canvas is the persistent pixel surface scenes paint on.
type Canvas interface {
	Size() Size
	// Fill replaces every pixel with c.
	Fill(c color.Color)
	// FillRect composites c over the rectangle.
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x0, y0, x1, y1 float64, s Stroke)
}
