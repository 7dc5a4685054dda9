package flowfield

import (
	"math"

	"genart/internal/core"
	"genart/pkg/noise"
	"genart/pkg/rng"
)

// Kind tells which pool a particle belongs to.
type Kind uint8

const (
	Ambient Kind = iota
	Burst
)

// turn maps a noise sample to a heading. Values well beyond one turn make
// the field swirl rather than follow the gradient.
const turn = 4 * math.Pi

// repulsionEpsilon is the squared distance below which no push is applied.
const repulsionEpsilon = 0.001

// Frame is the per-tick context shared by every particle.
type Frame struct {
	Size    core.Size
	Pointer core.Point
	Time    float64
	Hue     float64
}

// Particle is a point advected through the noise field. It leaves a segment
// from its previous to its current position each tick.
type Particle struct {
	X, Y      float64
	PX, PY    float64
	Age       float64
	MaxLife   float64
	HueOffset float64
	Kind      Kind
}

// Progress returns the fraction of the lifetime already spent.
func (p *Particle) Progress() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	return p.Age / p.MaxLife
}

// Advance moves the particle one tick along the field, pushes it away from
// the pointer, ages it and respawns it once it expires or leaves the canvas.
func (p *Particle) Advance(f Frame, field noise.Field, cfg *Config, src rng.Source) {
	p.PX, p.PY = p.X, p.Y

	angle := Heading(field, p.X, p.Y, f.Time, cfg.Scale)
	p.X += math.Cos(angle) * cfg.Speed
	p.Y += math.Sin(angle) * cfg.Speed

	dx := p.X - f.Pointer.X
	dy := p.Y - f.Pointer.Y
	dSq := dx*dx + dy*dy
	if dSq < cfg.MouseRadius*cfg.MouseRadius && dSq > repulsionEpsilon {
		d := math.Sqrt(dSq)
		push := RepulsionPush(d, cfg.MouseRadius, cfg.MousePush)
		p.X += dx / d * push
		p.Y += dy / d * push
	}

	p.Age++

	if p.Age > p.MaxLife || p.outside(f.Size, cfg.Margin) {
		p.Respawn(f.Size, cfg, src)
	}
}

// Heading returns the field direction in radians at canvas position (x, y).
// Time scrolls the field along its second axis.
func Heading(field noise.Field, x, y, time, scale float64) float64 {
	return field.Sample(x*scale, y*scale+time) * turn
}

// RepulsionPush returns the displacement applied at distance d from the
// pointer: push at the pointer, falling linearly to zero at radius.
func RepulsionPush(d, radius, push float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	return (radius - d) / radius * push
}

func (p *Particle) outside(size core.Size, margin float64) bool {
	return p.X < -margin || p.X > float64(size.W)+margin ||
		p.Y < -margin || p.Y > float64(size.H)+margin
}

// Respawn places the particle at a fresh random position with age zero.
// Ambient particles also draw a new lifetime and hue offset; burst particles
// keep the ones assigned by their last trigger.
func (p *Particle) Respawn(size core.Size, cfg *Config, src rng.Source) {
	p.X = src.Float64() * float64(size.W)
	p.Y = src.Float64() * float64(size.H)
	p.PX, p.PY = p.X, p.Y
	p.Age = 0
	if p.Kind == Ambient {
		p.MaxLife = cfg.MaxLife * rng.Range(src, 0.5, 1.5)
		p.HueOffset = rng.Centered(src, cfg.HueRange)
	}
}

// Draw strokes the segment travelled during the last tick. Opacity rises and
// falls over the lifetime while lightness grows.
func (p *Particle) Draw(c core.Canvas, hue float64, cfg *Config) {
	progress := p.Progress()
	alpha := math.Sin(progress*math.Pi) * 0.7
	h := math.Mod(hue+p.HueOffset+360, 360)
	l := 0.52 + progress*0.18
	c.StrokeLine(p.PX, p.PY, p.X, p.Y, core.Stroke{
		Color: core.HSLA(h, 0.78, l, alpha),
		Width: cfg.LineWidth,
	})
}
