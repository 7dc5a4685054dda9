package harmonograph

import (
	"math"

	"genart/internal/core"
	"genart/pkg/rng"
)

// State is the phase of the draw/pause/restart cycle.
type State uint8

const (
	Running State = iota
	Paused
	Restarting
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Restarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// hueSweep is how far the hue travels from the start to the end of a figure.
const hueSweep = 240

// Scene traces a damped four-oscillator harmonograph a few hundred points
// per tick, holds the finished figure, then starts over with new parameters.
type Scene struct {
	cfg  Config
	size core.Size

	src rng.Source
	gen Generator

	t          float64
	step       int
	hueBase    float64
	pauseFrame int
	prev       core.Point
	state      State
	clear      bool

	restarts int
}

// New returns a harmonograph scene for the given surface size.
func New(size core.Size, cfg Config) *Scene {
	s := &Scene{cfg: cfg, size: size}
	s.Reset(0)
	return s
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "harmonograph" }

// Size returns the surface dimensions.
func (s *Scene) Size() core.Size { return s.size }

// Config returns the active configuration.
func (s *Scene) Config() Config { return s.cfg }

// State returns the current phase.
func (s *Scene) State() State { return s.state }

// Step returns the number of points sampled for the current figure.
func (s *Scene) Step() int { return s.step }

// PauseFrame returns how many ticks the finished figure has been held.
func (s *Scene) PauseFrame() int { return s.pauseFrame }

// Generator returns the active figure.
func (s *Scene) Generator() Generator { return s.gen }

// Restarts counts figures started since the last reset.
func (s *Scene) Restarts() int { return s.restarts }

// UseSource replaces the random source and starts a new figure with it.
func (s *Scene) UseSource(src rng.Source) {
	s.src = src
	s.start()
}

// Reset seeds the random source and starts a new figure.
func (s *Scene) Reset(seed int64) {
	s.src = rng.New(seed)
	s.restarts = 0
	s.start()
}

// Resize refits the figure to the new surface. The figure in flight is
// dropped and restarted on the next tick.
func (s *Scene) Resize(w, h int) {
	s.size = core.Size{W: w, H: h}
	s.state = Restarting
}

// Tick samples up to StepsPerFrame points and strokes them, or counts down
// the pause that follows a finished figure.
func (s *Scene) Tick(in core.Input, c core.Canvas) {
	if in.Trigger || s.state == Restarting {
		s.start()
	}
	s.flush(c)

	if s.state == Paused {
		s.pauseFrame++
		if s.pauseFrame >= s.cfg.PauseAfter {
			s.start()
			s.flush(c)
		}
		return
	}

	total := s.cfg.TotalSteps
	for i := 0; i < s.cfg.StepsPerFrame && s.step < total; i++ {
		s.t += s.cfg.DT
		cur := s.gen.Position(s.t)
		progress := float64(s.step) / float64(total)
		hue := math.Mod(s.hueBase+progress*hueSweep, 360)
		alpha := math.Max(0.06, 0.88-progress*0.65)

		c.StrokeLine(s.prev.X, s.prev.Y, cur.X, cur.Y, core.Stroke{
			Color:     core.HSLA(hue, 0.85, 0.62, alpha),
			Width:     s.cfg.LineWidth,
			Glow:      s.cfg.Glow,
			GlowColor: core.HSLA(hue, 1, 0.70, 0.35),
		})

		s.prev = cur
		s.step++
	}

	if s.step >= total {
		s.state = Paused
	}
}

func (s *Scene) start() {
	p := NewParams(s.src, s.cfg.Damping, s.cfg.Detune)
	s.gen = NewGenerator(p, s.size, s.cfg.RadiusFactor)
	s.hueBase = s.src.Float64() * 360
	s.t = 0
	s.step = 0
	s.pauseFrame = 0
	s.prev = s.gen.Position(0)
	s.state = Running
	s.clear = true
	s.restarts++
}

func (s *Scene) flush(c core.Canvas) {
	if !s.clear {
		return
	}
	c.Fill(s.cfg.Background)
	s.clear = false
}

func init() {
	core.Register("harmonograph", func(size core.Size, cfg map[string]string) core.Scene {
		return New(size, FromMap(cfg))
	})
}
