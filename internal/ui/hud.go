//go:build ebiten

package ui

import (
	"image/color"

	"genart/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel in the top-left corner of the window.
type HUD struct {
	Visible bool
	lines   []string
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{Visible: true}
}

// Update refreshes the cached panel text from the scene.
func (h *HUD) Update(scene core.Scene, st Status) {
	if h == nil || !h.Visible {
		return
	}
	h.lines = PanelLines(scene, st)
}

// Draw paints the panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.Visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(h.lines) * lineHeight
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height+2*panelPadding),
		color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	for i, line := range h.lines {
		y := panelPadding + baseline + i*lineHeight
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

const (
	panelPadding = 10
	lineHeight   = 15
	baseline     = 11
)
