// Package ui draws the heads-up display over a running scene.
package ui

import (
	"fmt"
	"math"
	"strconv"

	"genart/internal/core"
)

// Status is the host state shown in the panel header.
type Status struct {
	Seed   int64
	Ticks  int
	Paused bool
}

// Help lists the host key bindings.
const Help = "space pause  n step  r reset  s reseed  tab scene  f field  h hud  q quit"

// PanelLines renders the header, the scene parameters and the key help as
// text lines.
func PanelLines(scene core.Scene, st Status) []string {
	header := fmt.Sprintf("%s  seed %d  tick %d", scene.Name(), st.Seed, st.Ticks)
	if st.Paused {
		header += "  [paused]"
	}
	lines := []string{header}

	if provider, ok := scene.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			lines = append(lines, "", group.Name)
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("  %-16s %s", p.Label, formatValue(p)))
			}
		}
	}
	return append(lines, "", Help)
}

func formatValue(p core.Parameter) string {
	if p.Type != core.ParamTypeFloat {
		return p.Value
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return p.Value
	}
	var precision int
	switch a := math.Abs(v); {
	case a == 0 || a >= 100:
		precision = 1
	case a < 0.001:
		precision = 5
	case a < 0.01:
		precision = 4
	case a < 1:
		precision = 3
	default:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
