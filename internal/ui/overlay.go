//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"genart/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type flowProvider interface {
	FlowAt(x, y float64) (float64, float64)
}

// Overlay draws the direction field of scenes that expose one as a grid of
// arrows. F toggles it.
type Overlay struct {
	show    bool
	spacing float64
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{spacing: 32}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, scene core.Scene) {
	if !o.show {
		return
	}
	provider, ok := scene.(flowProvider)
	if !ok {
		return
	}

	const headAngle = math.Pi / 6
	size := scene.Size()
	length := o.spacing * 0.6
	head := length * 0.3
	col := color.RGBA{R: 200, G: 200, B: 210, A: 140}

	for cy := o.spacing / 2; cy < float64(size.H); cy += o.spacing {
		for cx := o.spacing / 2; cx < float64(size.W); cx += o.spacing {
			nx, ny := provider.FlowAt(cx, cy)
			tailX, tailY := cx-nx*length/2, cy-ny*length/2
			tipX, tipY := cx+nx*length/2, cy+ny*length/2
			o.drawLine(screen, tailX, tailY, tipX, tipY, col)

			angle := math.Atan2(ny, nx)
			o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head, col)
			o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head, col)
		}
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x0, y0, x1, y1 float64, col color.Color) {
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, col, true)
}
