//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"genart/internal/core"
)

// Screen is a persistent offscreen image that scenes paint into and that is
// blitted to the window every frame.
type Screen struct {
	w, h int
	img  *ebiten.Image
}

// NewScreen allocates a w*h offscreen canvas.
func NewScreen(w, h int) *Screen {
	return &Screen{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Size returns the canvas dimensions.
func (s *Screen) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Fill replaces every pixel with c.
func (s *Screen) Fill(c color.Color) { s.img.Fill(c) }

// FillRect composites c over the rectangle.
func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeLine strokes an anti-aliased segment. A glow is drawn as two wider
// translucent passes under the line.
func (s *Screen) StrokeLine(x0, y0, x1, y1 float64, st core.Stroke) {
	fx0, fy0, fx1, fy1 := float32(x0), float32(y0), float32(x1), float32(y1)
	if st.Glow > 0 && st.GlowColor.A > 0 {
		outer := st.GlowColor
		outer.A /= 4
		vector.StrokeLine(s.img, fx0, fy0, fx1, fy1, float32(st.Width+st.Glow), outer, true)
		inner := st.GlowColor
		inner.A /= 2
		vector.StrokeLine(s.img, fx0, fy0, fx1, fy1, float32(st.Width+st.Glow/2), inner, true)
	}
	vector.StrokeLine(s.img, fx0, fy0, fx1, fy1, float32(st.Width), st.Color, true)
}

// Resize reallocates the offscreen image. Previous pixels are discarded.
func (s *Screen) Resize(w, h int) error {
	if w == s.w && h == s.h {
		return nil
	}
	s.img.Deallocate()
	s.w, s.h = w, h
	s.img = ebiten.NewImage(w, h)
	return nil
}

// Blit draws the offscreen image onto dst.
func (s *Screen) Blit(dst *ebiten.Image) {
	dst.DrawImage(s.img, nil)
}
