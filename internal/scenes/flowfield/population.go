package flowfield

import (
	"math"

	"genart/internal/core"
	"genart/pkg/noise"
	"genart/pkg/rng"
)

// Population holds the ambient particles and the reusable burst pool. Both
// slices are allocated once and recycled in place.
type Population struct {
	cfg     *Config
	src     rng.Source
	ambient []Particle
	burst   []Particle
}

// NewPopulation scatters the ambient particles and the burst pool across the
// surface. Ambient particles start at a random age so the field is already
// populated on the first frame.
func NewPopulation(cfg *Config, size core.Size, src rng.Source) *Population {
	p := &Population{
		cfg:     cfg,
		src:     src,
		ambient: make([]Particle, cfg.Count),
		burst:   make([]Particle, cfg.BurstSize),
	}
	for i := range p.ambient {
		a := &p.ambient[i]
		a.Kind = Ambient
		a.Respawn(size, cfg, src)
	}
	for i := range p.ambient {
		a := &p.ambient[i]
		a.Age = math.Floor(src.Float64() * a.MaxLife)
	}
	for i := range p.burst {
		b := &p.burst[i]
		b.Kind = Burst
		b.MaxLife = cfg.MaxLife * rng.Range(src, 0.5, 1.5)
		b.HueOffset = rng.Centered(src, cfg.HueRange)
		b.Respawn(size, cfg, src)
	}
	return p
}

// Ambient exposes the ambient particles.
func (p *Population) Ambient() []Particle { return p.ambient }

// BurstPool exposes the burst particles.
func (p *Population) BurstPool() []Particle { return p.burst }

// Len returns the total particle count.
func (p *Population) Len() int { return len(p.ambient) + len(p.burst) }

// Burst gathers the whole burst pool at the trigger point, overriding any
// particles still in flight.
func (p *Population) Burst(at core.Point) {
	for i := range p.burst {
		b := &p.burst[i]
		b.X = at.X + rng.Centered(p.src, p.cfg.BurstJitter)
		b.Y = at.Y + rng.Centered(p.src, p.cfg.BurstJitter)
		b.PX, b.PY = b.X, b.Y
		b.Age = 0
		b.MaxLife = p.cfg.MaxLife * rng.Range(p.src, 0.7, 1.3)
	}
}

// Step advances and draws every particle, ambient first.
func (p *Population) Step(f Frame, field noise.Field, c core.Canvas) {
	for i := range p.ambient {
		p.ambient[i].Advance(f, field, p.cfg, p.src)
		p.ambient[i].Draw(c, f.Hue, p.cfg)
	}
	for i := range p.burst {
		p.burst[i].Advance(f, field, p.cfg, p.src)
		p.burst[i].Draw(c, f.Hue, p.cfg)
	}
}
