package flowfield

import (
	"image/color"

	"genart/internal/core"
)

// Config holds the flow field constants.
type Config struct {
	Count      int     // ambient particles
	Speed      float64 // pixels per tick
	Scale      float64 // noise sampling scale
	MaxLife    float64 // base lifetime in ticks
	TrailAlpha float64 // background fade per tick; lower keeps longer trails

	MouseRadius float64 // repulsion zone in pixels
	MousePush   float64 // repulsion strength at the pointer
	HueRange    float64 // spread of per-particle hue offsets

	BurstSize   int
	BurstJitter float64 // full width of the burst scatter box

	TimeStep float64 // noise time advance per tick
	HueDrift float64 // degrees per tick
	StartHue float64

	Margin    float64 // off-canvas slack before a particle respawns
	LineWidth float64

	Background color.NRGBA
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:       1400,
		Speed:       1.9,
		Scale:       0.0028,
		MaxLife:     130,
		TrailAlpha:  0.038,
		MouseRadius: 130,
		MousePush:   5,
		HueRange:    80,
		BurstSize:   80,
		BurstJitter: 10,
		TimeStep:    0.004,
		HueDrift:    0.15,
		StartHue:    210,
		Margin:      12,
		LineWidth:   1,
		Background:  color.NRGBA{A: 255},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.OverrideInt(cfg, "count", 0, &c.Count)
	core.OverrideFloat(cfg, "speed", 0, &c.Speed)
	core.OverrideFloat(cfg, "scale", 0, &c.Scale)
	core.OverrideFloat(cfg, "max_life", 1, &c.MaxLife)
	core.OverrideFloat(cfg, "trail_alpha", 0, &c.TrailAlpha)
	core.OverrideFloat(cfg, "mouse_radius", 0, &c.MouseRadius)
	core.OverrideFloat(cfg, "mouse_push", 0, &c.MousePush)
	core.OverrideFloat(cfg, "hue_range", 0, &c.HueRange)
	core.OverrideInt(cfg, "burst_size", 0, &c.BurstSize)
	core.OverrideFloat(cfg, "burst_jitter", 0, &c.BurstJitter)
	core.OverrideFloat(cfg, "time_step", 0, &c.TimeStep)
	core.OverrideFloat(cfg, "hue_drift", 0, &c.HueDrift)
	core.OverrideFloat(cfg, "start_hue", 0, &c.StartHue)
	core.OverrideFloat(cfg, "margin", 0, &c.Margin)
	core.OverrideFloat(cfg, "line_width", 0, &c.LineWidth)
	if c.TrailAlpha > 1 {
		c.TrailAlpha = 1
	}
	return c
}
