package render

import (
	"image/color"

	"genart/internal/core"
)

// Op identifies a recorded canvas operation.
type Op uint8

const (
	OpFill Op = iota
	OpFillRect
	OpStroke
)

// Command is one recorded canvas call.
type Command struct {
	Op Op

	X0, Y0, X1, Y1 float64
	Color          color.NRGBA
	Stroke         core.Stroke
}

// Recorder captures canvas calls, optionally forwarding them to another
// canvas. It turns a scene tick into an inspectable list of render commands.
type Recorder struct {
	size core.Size
	next core.Canvas
	cmds []Command
}

// NewRecorder returns a standalone recorder of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{size: core.Size{W: w, H: h}}
}

// Tee returns a recorder that forwards every call to next.
func Tee(next core.Canvas) *Recorder {
	return &Recorder{size: next.Size(), next: next}
}

// Commands returns the commands recorded since the last Reset.
func (r *Recorder) Commands() []Command { return r.cmds }

// Reset drops recorded commands but keeps the backing storage.
func (r *Recorder) Reset() { r.cmds = r.cmds[:0] }

// Replay issues every recorded command on dst.
func (r *Recorder) Replay(dst core.Canvas) {
	for _, c := range r.cmds {
		switch c.Op {
		case OpFill:
			dst.Fill(c.Color)
		case OpFillRect:
			dst.FillRect(c.X0, c.Y0, c.X1-c.X0, c.Y1-c.Y0, c.Color)
		case OpStroke:
			dst.StrokeLine(c.X0, c.Y0, c.X1, c.Y1, c.Stroke)
		}
	}
}

// Size reports the recorded surface size.
func (r *Recorder) Size() core.Size {
	if r.next != nil {
		return r.next.Size()
	}
	return r.size
}

// Resize updates the recorded size and forwards to the wrapped canvas.
func (r *Recorder) Resize(w, h int) error {
	r.size = core.Size{W: w, H: h}
	if rs, ok := r.next.(core.Resizable); ok {
		return rs.Resize(w, h)
	}
	return nil
}

// Fill records a full-surface fill.
func (r *Recorder) Fill(c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpFill, Color: toNRGBA(c)})
	if r.next != nil {
		r.next.Fill(c)
	}
}

// FillRect records a rectangle fill. X1,Y1 hold the far corner.
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpFillRect, X0: x, Y0: y, X1: x + w, Y1: y + h, Color: toNRGBA(c)})
	if r.next != nil {
		r.next.FillRect(x, y, w, h, c)
	}
}

// StrokeLine records a line segment.
func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, s core.Stroke) {
	r.cmds = append(r.cmds, Command{Op: OpStroke, X0: x0, Y0: y0, X1: x1, Y1: y1, Color: s.Color, Stroke: s})
	if r.next != nil {
		r.next.StrokeLine(x0, y0, x1, y1, s)
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
