package flowfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genart/internal/core"
	"genart/internal/render"
	"genart/pkg/noise"
	"genart/pkg/rng"
)

var zeroField = noise.FieldFunc(func(x, y float64) float64 { return 0 })

func offCanvasFrame(w, h int) Frame {
	return Frame{Size: core.Size{W: w, H: h}, Pointer: core.OffCanvas}
}

func TestParticleAdvancesThenRespawnsAfterLifetime(t *testing.T) {
	cfg := DefaultConfig()
	src := rng.New(1)
	f := offCanvasFrame(800, 600)
	p := Particle{X: 100, Y: 300, PX: 100, PY: 300, MaxLife: 100}

	for tick := 1; tick <= 100; tick++ {
		prevX := p.X
		p.Advance(f, zeroField, &cfg, src)
		require.InDelta(t, prevX+cfg.Speed, p.X, 1e-9, "tick %d", tick)
		require.Equal(t, 300.0, p.Y)
		require.Equal(t, float64(tick), p.Age)
		require.LessOrEqual(t, p.Age, p.MaxLife)
	}
	require.InDelta(t, 100+100*cfg.Speed, p.X, 1e-9)

	p.Advance(f, zeroField, &cfg, src)
	assert.Equal(t, 0.0, p.Age)
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.Less(t, p.X, 800.0)
	assert.GreaterOrEqual(t, p.Y, 0.0)
	assert.Less(t, p.Y, 600.0)
	assert.Equal(t, p.X, p.PX)
	assert.Equal(t, p.Y, p.PY)
	assert.GreaterOrEqual(t, p.MaxLife, cfg.MaxLife*0.5)
	assert.Less(t, p.MaxLife, cfg.MaxLife*1.5)
}

func TestParticleRespawnsWhenLeavingCanvas(t *testing.T) {
	cfg := DefaultConfig()
	src := rng.New(2)
	f := offCanvasFrame(200, 100)
	p := Particle{X: 211, Y: 50, MaxLife: 1000, Age: 5}

	p.Advance(f, zeroField, &cfg, src)
	assert.Equal(t, 0.0, p.Age)
	assert.Less(t, p.X, 200.0)
}

func TestBurstParticleKeepsTriggerLifetimeOnRespawn(t *testing.T) {
	cfg := DefaultConfig()
	src := rng.New(3)
	size := core.Size{W: 100, H: 100}
	p := Particle{Kind: Burst, MaxLife: 77, HueOffset: 12}
	p.Respawn(size, &cfg, src)
	assert.Equal(t, 77.0, p.MaxLife)
	assert.Equal(t, 12.0, p.HueOffset)

	a := Particle{Kind: Ambient, MaxLife: 77, HueOffset: 12}
	a.Respawn(size, &cfg, src)
	assert.NotEqual(t, 77.0, a.MaxLife)
	assert.LessOrEqual(t, math.Abs(a.HueOffset), cfg.HueRange/2)
}

func TestRepulsionFalloff(t *testing.T) {
	assert.Equal(t, 0.0, RepulsionPush(130, 130, 5))
	assert.InDelta(t, 2.5, RepulsionPush(65, 130, 5), 1e-12)
	assert.InDelta(t, 5.0, RepulsionPush(0, 130, 5), 1e-12)
	assert.Equal(t, 0.0, RepulsionPush(200, 130, 5))
}

func TestRepulsionPushesAwayFromPointer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 0
	f := offCanvasFrame(800, 600)
	f.Pointer = core.Point{X: 400, Y: 300}

	p := Particle{X: 400 + cfg.MouseRadius/2, Y: 300, MaxLife: 100}
	p.Advance(f, zeroField, &cfg, rng.New(4))
	assert.InDelta(t, 400+cfg.MouseRadius/2+cfg.MousePush/2, p.X, 1e-9)
	assert.Equal(t, 300.0, p.Y)

	edge := Particle{X: 400, Y: 300 + cfg.MouseRadius, MaxLife: 100}
	edge.Advance(f, zeroField, &cfg, rng.New(4))
	assert.Equal(t, 300+cfg.MouseRadius, edge.Y)
}

func TestRepulsionSkipsCoincidentPointer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 0
	f := offCanvasFrame(800, 600)
	f.Pointer = core.Point{X: 10, Y: 10}

	p := Particle{X: 10, Y: 10, MaxLife: 100}
	p.Advance(f, zeroField, &cfg, rng.New(5))
	assert.Equal(t, 10.0, p.X)
	assert.Equal(t, 10.0, p.Y)
	assert.False(t, math.IsNaN(p.X))
}

func TestDrawAlphaFollowsLifetime(t *testing.T) {
	cfg := DefaultConfig()
	rec := render.NewRecorder(10, 10)

	p := Particle{PX: 1, PY: 1, X: 2, Y: 2, MaxLife: 100, Age: 50}
	p.Draw(rec, 210, &cfg)
	p.Age = 0
	p.Draw(rec, 210, &cfg)

	cmds := rec.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, uint8(179), cmds[0].Color.A)
	assert.Equal(t, uint8(0), cmds[1].Color.A)
	assert.Equal(t, cfg.LineWidth, cmds[0].Stroke.Width)
	assert.Equal(t, 1.0, cmds[0].X0)
	assert.Equal(t, 2.0, cmds[0].X1)
}

func TestBurstGathersPoolAtTrigger(t *testing.T) {
	cfg := DefaultConfig()
	size := core.Size{W: 800, H: 600}
	pop := NewPopulation(&cfg, size, rng.New(6))
	require.Len(t, pop.Ambient(), cfg.Count)
	require.Len(t, pop.BurstPool(), cfg.BurstSize)

	at := core.Point{X: 321, Y: 123}
	pop.Burst(at)
	for _, b := range pop.BurstPool() {
		assert.LessOrEqual(t, math.Abs(b.X-at.X), cfg.BurstJitter/2)
		assert.LessOrEqual(t, math.Abs(b.Y-at.Y), cfg.BurstJitter/2)
		assert.Equal(t, b.X, b.PX)
		assert.Equal(t, 0.0, b.Age)
		assert.GreaterOrEqual(t, b.MaxLife, cfg.MaxLife*0.7)
		assert.Less(t, b.MaxLife, cfg.MaxLife*1.3)
	}
}

func TestWarmStartSpreadsAges(t *testing.T) {
	cfg := DefaultConfig()
	pop := NewPopulation(&cfg, core.Size{W: 400, H: 400}, rng.New(7))
	nonZero := 0
	for _, a := range pop.Ambient() {
		require.GreaterOrEqual(t, a.Age, 0.0)
		require.Less(t, a.Age, a.MaxLife)
		if a.Age > 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, cfg.Count/2)
}

func TestLifetimeBoundHoldsAcrossTicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 300
	s := New(core.Size{W: 320, H: 240}, cfg)
	s.Reset(99)
	rec := render.NewRecorder(320, 240)

	for tick := 0; tick < 400; tick++ {
		in := core.Input{Pointer: core.Point{X: 160, Y: 120}}
		if tick == 50 {
			in.Trigger = true
			in.TriggerAt = core.Point{X: 20, Y: 30}
		}
		s.Tick(in, rec)
		rec.Reset()
		for _, list := range [][]Particle{s.Population().Ambient(), s.Population().BurstPool()} {
			for _, p := range list {
				require.GreaterOrEqual(t, p.Age, 0.0)
				require.LessOrEqual(t, p.Age, p.MaxLife)
			}
		}
	}
}

func TestSceneTickCommands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 10
	cfg.BurstSize = 4
	s := New(core.Size{W: 64, H: 48}, cfg)
	s.Reset(1)
	rec := render.NewRecorder(64, 48)

	s.Tick(core.Input{Pointer: core.OffCanvas}, rec)
	cmds := rec.Commands()
	require.Len(t, cmds, 2+14)
	assert.Equal(t, render.OpFill, cmds[0].Op)
	assert.Equal(t, render.OpFillRect, cmds[1].Op)
	assert.Equal(t, uint8(10), cmds[1].Color.A)
	assert.Equal(t, 64.0, cmds[1].X1)
	for _, c := range cmds[2:] {
		assert.Equal(t, render.OpStroke, c.Op)
	}
	assert.InDelta(t, cfg.StartHue+cfg.HueDrift, s.Hue(), 1e-9)
	assert.InDelta(t, cfg.TimeStep, s.Time(), 1e-12)

	rec.Reset()
	s.Tick(core.Input{Pointer: core.OffCanvas}, rec)
	assert.Equal(t, render.OpFillRect, rec.Commands()[0].Op)
	assert.Len(t, rec.Commands(), 1+14)
}

func TestSceneTriggerBurstsAtPoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 0
	cfg.Speed = 0
	s := New(core.Size{W: 400, H: 400}, cfg)
	s.Reset(2)
	s.UseField(zeroField)
	rec := render.NewRecorder(400, 400)

	at := core.Point{X: 200, Y: 200}
	s.Tick(core.Input{Pointer: core.OffCanvas, Trigger: true, TriggerAt: at}, rec)
	for _, b := range s.Population().BurstPool() {
		assert.Equal(t, 1.0, b.Age)
		// The trigger point doubles as the pointer, so the pool is pushed outward.
		d := math.Hypot(b.X-at.X, b.Y-at.Y)
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, cfg.BurstJitter+cfg.MousePush)
	}
}

func TestSceneDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 50
	run := func() []render.Command {
		s := New(core.Size{W: 200, H: 150}, cfg)
		s.Reset(1234)
		rec := render.NewRecorder(200, 150)
		for i := 0; i < 20; i++ {
			s.Tick(core.Input{Pointer: core.Point{X: 100, Y: 75}}, rec)
		}
		return rec.Commands()
	}
	assert.Equal(t, run(), run())
}

func TestResizeKeepsParticlesAndClears(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 5
	s := New(core.Size{W: 100, H: 100}, cfg)
	rec := render.NewRecorder(100, 100)
	s.Tick(core.Input{Pointer: core.OffCanvas}, rec)

	before := append([]Particle(nil), s.Population().Ambient()...)
	s.Resize(300, 200)
	assert.Equal(t, core.Size{W: 300, H: 200}, s.Size())
	assert.Equal(t, before, s.Population().Ambient())

	rec.Reset()
	s.Tick(core.Input{Pointer: core.OffCanvas}, rec)
	assert.Equal(t, render.OpFill, rec.Commands()[0].Op)
	assert.Equal(t, 300.0, rec.Commands()[1].X1)
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"count":       "12",
		"speed":       "2.5",
		"trail_alpha": "3",
		"max_life":    "0",
		"hue_range":   "nope",
	})
	assert.Equal(t, 12, c.Count)
	assert.Equal(t, 2.5, c.Speed)
	assert.Equal(t, 1.0, c.TrailAlpha)
	assert.Equal(t, DefaultConfig().MaxLife, c.MaxLife)
	assert.Equal(t, DefaultConfig().HueRange, c.HueRange)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestParametersExposeState(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, DefaultConfig())
	p, ok := s.Parameters().Lookup("count")
	require.True(t, ok)
	assert.Equal(t, "1400", p.Value)
	p, ok = s.Parameters().Lookup("hue")
	require.True(t, ok)
	assert.Equal(t, "210", p.Value)
}

func TestFlowAtFollowsField(t *testing.T) {
	s := New(core.Size{W: 10, H: 10}, DefaultConfig())
	s.UseField(zeroField)
	vx, vy := s.FlowAt(3, 4)
	assert.InDelta(t, 1.0, vx, 1e-12)
	assert.InDelta(t, 0.0, vy, 1e-12)

	s.UseField(noise.FieldFunc(func(x, y float64) float64 { return 0.25 }))
	vx, vy = s.FlowAt(3, 4)
	assert.InDelta(t, -1.0, vx, 1e-12)
	assert.InDelta(t, 0.0, vy, 1e-12)
}
