package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"genart/internal/core"
)

// Software is a headless canvas rasterized on the CPU by gg.
type Software struct {
	dc  *gg.Context
	err error
}

// NewSoftware allocates a w*h software canvas.
func NewSoftware(w, h int) *Software {
	return &Software{dc: gg.NewContext(w, h)}
}

// Size returns the canvas dimensions.
func (s *Software) Size() core.Size {
	return core.Size{W: s.dc.Width(), H: s.dc.Height()}
}

// Fill replaces every pixel with c.
func (s *Software) Fill(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

// FillRect composites c over the rectangle.
func (s *Software) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.keep(s.dc.Fill())
}

// StrokeLine strokes a segment. Glow is approximated by a translucent
// under-stroke widened by the glow radius.
func (s *Software) StrokeLine(x0, y0, x1, y1 float64, st core.Stroke) {
	if st.Glow > 0 && st.GlowColor.A > 0 {
		halo := st.GlowColor
		halo.A /= 3
		s.dc.SetLineWidth(st.Width + st.Glow)
		s.dc.SetColor(halo)
		s.dc.DrawLine(x0, y0, x1, y1)
		s.keep(s.dc.Stroke())
	}
	s.dc.SetLineWidth(st.Width)
	s.dc.SetColor(st.Color)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.keep(s.dc.Stroke())
}

// Resize reallocates the backing pixmap.
func (s *Software) Resize(w, h int) error {
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("resizing software canvas: %w", err)
	}
	return nil
}

// Image returns the current pixels.
func (s *Software) Image() image.Image { return s.dc.Image() }

// SavePNG writes the current pixels to path.
func (s *Software) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Err returns the first rasterization error, then clears it.
func (s *Software) Err() error {
	err := s.err
	s.err = nil
	return err
}

// Close releases rasterizer resources.
func (s *Software) Close() error { return s.dc.Close() }

func (s *Software) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}
