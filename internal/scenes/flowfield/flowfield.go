package flowfield

import (
	"math"

	"genart/internal/core"
	"genart/pkg/noise"
	"genart/pkg/rng"
)

// Scene animates particles drifting through a noise field. Each tick fades
// the previous frame toward the background and strokes one segment per
// particle, so trails build up on the persistent canvas.
type Scene struct {
	cfg  Config
	size core.Size

	src    *rng.RNG
	field  noise.Field
	pinned noise.Field
	pop    *Population

	time  float64
	hue   float64
	clear bool
	ticks int
}

// New returns a flow field scene for the given surface size.
func New(size core.Size, cfg Config) *Scene {
	s := &Scene{cfg: cfg, size: size}
	s.Reset(0)
	return s
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "flowfield" }

// Size returns the surface dimensions.
func (s *Scene) Size() core.Size { return s.size }

// Config returns the active configuration.
func (s *Scene) Config() Config { return s.cfg }

// Population exposes the particles.
func (s *Scene) Population() *Population { return s.pop }

// Time returns the noise time offset.
func (s *Scene) Time() float64 { return s.time }

// Hue returns the global hue in degrees.
func (s *Scene) Hue() float64 { return s.hue }

// FlowAt returns the unit direction the field points at (x, y) this tick.
func (s *Scene) FlowAt(x, y float64) (float64, float64) {
	a := Heading(s.field, x, y, s.time, s.cfg.Scale)
	return math.Cos(a), math.Sin(a)
}

// UseField pins the direction field, surviving resets. Passing nil restores
// the seeded noise field.
func (s *Scene) UseField(f noise.Field) {
	s.pinned = f
	if f != nil {
		s.field = f
	}
}

// Reset rebuilds the noise field and particles from seed.
func (s *Scene) Reset(seed int64) {
	s.src = rng.New(seed)
	s.field = noise.New(s.src)
	if s.pinned != nil {
		s.field = s.pinned
	}
	s.pop = NewPopulation(&s.cfg, s.size, s.src)
	s.time = 0
	s.hue = s.cfg.StartHue
	s.clear = true
	s.ticks = 0
}

// Resize updates the bounds particles respawn within. Particles keep their
// positions; the canvas is cleared on the next tick.
func (s *Scene) Resize(w, h int) {
	s.size = core.Size{W: w, H: h}
	s.clear = true
}

// Tick fades the canvas, moves and draws every particle, and drifts time and hue.
func (s *Scene) Tick(in core.Input, c core.Canvas) {
	if s.clear {
		c.Fill(s.cfg.Background)
		s.clear = false
	}

	pointer := in.Pointer
	if in.Trigger {
		pointer = in.TriggerAt
		s.pop.Burst(in.TriggerAt)
	}

	c.FillRect(0, 0, float64(s.size.W), float64(s.size.H), core.WithAlpha(s.cfg.Background, s.cfg.TrailAlpha))

	s.pop.Step(Frame{Size: s.size, Pointer: pointer, Time: s.time, Hue: s.hue}, s.field, c)

	s.time += s.cfg.TimeStep
	s.hue = math.Mod(s.hue+s.cfg.HueDrift, 360)
	s.ticks++
}

func init() {
	core.Register("flowfield", func(size core.Size, cfg map[string]string) core.Scene {
		return New(size, FromMap(cfg))
	})
}
