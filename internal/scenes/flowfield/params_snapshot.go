package flowfield

import "genart/internal/core"

// Parameters describes the configuration and live state for the HUD.
func (s *Scene) Parameters() core.ParameterSnapshot {
	c := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Particles",
			Params: []core.Parameter{
				core.IntParam("count", "Count", c.Count),
				core.FloatParam("speed", "Speed", c.Speed),
				core.FloatParam("scale", "Noise scale", c.Scale),
				core.FloatParam("max_life", "Max life", c.MaxLife),
				core.FloatParam("trail_alpha", "Trail alpha", c.TrailAlpha),
				core.FloatParam("hue_range", "Hue range", c.HueRange),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				core.FloatParam("mouse_radius", "Repulsion radius", c.MouseRadius),
				core.FloatParam("mouse_push", "Repulsion push", c.MousePush),
				core.IntParam("burst_size", "Burst size", c.BurstSize),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("tick", "Tick", s.ticks),
				core.FloatParam("time", "Time", s.time),
				core.FloatParam("hue", "Hue", s.hue),
			},
		},
	}}
}
