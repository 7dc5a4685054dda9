package harmonograph

import (
	"image/color"

	"genart/internal/core"
)

// Config holds the harmonograph constants.
type Config struct {
	StepsPerFrame int     // path points sampled per tick
	TotalSteps    int     // points per figure before pausing
	DT            float64 // simulated time per point
	Damping       float64 // base amplitude decay rate
	Detune        float64 // full width of the secondary oscillator detuning
	LineWidth     float64
	Glow          float64 // halo radius around each stroke
	PauseAfter    int     // ticks to hold the finished figure
	RadiusFactor  float64 // figure radius as a fraction of the shorter side

	Background color.NRGBA
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		StepsPerFrame: 500,
		TotalSteps:    90000,
		DT:            0.025,
		Damping:       0.0006,
		Detune:        0.012,
		LineWidth:     1,
		Glow:          10,
		PauseAfter:    120,
		RadiusFactor:  0.42,
		Background:    color.NRGBA{A: 255},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.OverrideInt(cfg, "steps_per_frame", 1, &c.StepsPerFrame)
	core.OverrideInt(cfg, "total_steps", 1, &c.TotalSteps)
	core.OverrideFloat(cfg, "dt", 0, &c.DT)
	core.OverrideFloat(cfg, "damping", 0, &c.Damping)
	core.OverrideFloat(cfg, "detune", 0, &c.Detune)
	core.OverrideFloat(cfg, "line_width", 0, &c.LineWidth)
	core.OverrideFloat(cfg, "glow", 0, &c.Glow)
	core.OverrideInt(cfg, "pause_after", 0, &c.PauseAfter)
	core.OverrideFloat(cfg, "radius_factor", 0, &c.RadiusFactor)
	if c.Damping <= 0 {
		c.Damping = DefaultConfig().Damping
	}
	return c
}
