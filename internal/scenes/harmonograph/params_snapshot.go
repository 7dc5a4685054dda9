package harmonograph

import (
	"fmt"

	"genart/internal/core"
)

// Parameters describes the configuration and the figure in progress.
func (s *Scene) Parameters() core.ParameterSnapshot {
	c := s.cfg
	p := s.gen.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Sampling",
			Params: []core.Parameter{
				core.IntParam("steps_per_frame", "Steps per frame", c.StepsPerFrame),
				core.IntParam("total_steps", "Total steps", c.TotalSteps),
				core.FloatParam("dt", "Time step", c.DT),
				core.FloatParam("damping", "Damping", c.Damping),
				core.IntParam("pause_after", "Pause frames", c.PauseAfter),
			},
		},
		{
			Name: "Figure",
			Params: []core.Parameter{
				core.StringParam("ratio", "Ratio", fmt.Sprintf("%d:%d", p.Ratio.A, p.Ratio.B)),
				core.FloatParam("base", "Base frequency", p.Base),
				core.FloatParam("hue_base", "Hue base", s.hueBase),
				core.FloatParam("radius", "Radius", s.gen.Radius),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.StringParam("state", "State", s.state.String()),
				core.IntParam("step", "Step", s.step),
				core.IntParam("pause_frame", "Pause frame", s.pauseFrame),
				core.IntParam("restarts", "Restarts", s.restarts),
			},
		},
	}}
}
