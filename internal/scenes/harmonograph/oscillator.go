package harmonograph

import (
	"math"

	"genart/internal/core"
	"genart/pkg/rng"
)

// Ratio is a pair of small integer frequency multipliers for the x and y axes.
type Ratio struct {
	A, B int
}

// Ratios lists the frequency pairs that give stable, near-closed figures.
var Ratios = []Ratio{
	{2, 3}, {3, 4}, {3, 5}, {4, 5},
	{5, 6}, {4, 7}, {5, 7}, {5, 8},
}

const (
	primaryWeight   = 0.65
	secondaryWeight = 0.35
)

// Oscillator is one damped sinusoid.
type Oscillator struct {
	Freq  float64
	Phase float64
	Damp  float64
}

// At evaluates sin(f t + phase) * e^(-damp t).
func (o Oscillator) At(t float64) float64 {
	return math.Sin(o.Freq*t+o.Phase) * math.Exp(-o.Damp*t)
}

// Params is a full parameter set: oscillators 0 and 1 drive x, 2 and 3 drive y.
type Params struct {
	Ratio Ratio
	Base  float64
	Osc   [4]Oscillator
}

// NewParams draws a parameter set. Each axis pairs a primary oscillator with
// a slightly detuned secondary one; damping stays within 70-130% of damping.
func NewParams(src rng.Source, damping, detune float64) Params {
	r := Ratios[src.IntN(len(Ratios))]
	base := rng.Range(src, 0.8, 1.2)
	phase := func() float64 { return src.Float64() * 2 * math.Pi }
	damp := func() float64 { return damping * rng.Range(src, 0.7, 1.3) }
	drift := func() float64 { return 1 + rng.Centered(src, detune) }

	p := Params{Ratio: r, Base: base}
	fa := base * float64(r.A)
	fb := base * float64(r.B)
	p.Osc[0] = Oscillator{Freq: fa, Phase: phase(), Damp: damp()}
	p.Osc[1].Freq = fa * drift()
	p.Osc[1].Phase = phase()
	p.Osc[1].Damp = damp()
	p.Osc[2] = Oscillator{Freq: fb, Phase: phase(), Damp: damp()}
	p.Osc[3].Freq = fb * drift()
	p.Osc[3].Phase = phase()
	p.Osc[3].Damp = damp()
	return p
}

// Offset returns the figure position at time t for a unit radius.
func (p Params) Offset(t float64) (x, y float64) {
	x = primaryWeight*p.Osc[0].At(t) + secondaryWeight*p.Osc[1].At(t)
	y = primaryWeight*p.Osc[2].At(t) + secondaryWeight*p.Osc[3].At(t)
	return x, y
}

// Envelope bounds |x| and |y| of Offset at time t.
func (p Params) Envelope(t float64) (x, y float64) {
	x = primaryWeight*math.Exp(-p.Osc[0].Damp*t) + secondaryWeight*math.Exp(-p.Osc[1].Damp*t)
	y = primaryWeight*math.Exp(-p.Osc[2].Damp*t) + secondaryWeight*math.Exp(-p.Osc[3].Damp*t)
	return x, y
}

// Generator maps simulated time to a point on the surface.
type Generator struct {
	Params Params
	Centre core.Point
	Radius float64
}

// NewGenerator fits a figure to the surface.
func NewGenerator(p Params, size core.Size, radiusFactor float64) Generator {
	return Generator{
		Params: p,
		Centre: core.Point{X: float64(size.W) / 2, Y: float64(size.H) / 2},
		Radius: float64(size.Min()) * radiusFactor,
	}
}

// Position returns the pen position at time t.
func (g Generator) Position(t float64) core.Point {
	x, y := g.Params.Offset(t)
	return core.Point{X: g.Centre.X + g.Radius*x, Y: g.Centre.Y + g.Radius*y}
}
