// Package noise implements the 2-D gradient noise used to steer particles.
package noise

import (
	"math"

	"genart/pkg/rng"
)

// Field is a scalar field sampled in the plane.
type Field interface {
	Sample(x, y float64) float64
}

// FieldFunc adapts a plain function to the Field interface.
type FieldFunc func(x, y float64) float64

// Sample calls f(x, y).
func (f FieldFunc) Sample(x, y float64) float64 { return f(x, y) }

// Perlin generates coherent gradient noise from a shuffled permutation table.
// Only four diagonal gradients are used, which gives the flow field its
// characteristic look; do not swap in the 8 or 12 gradient sets.
type Perlin struct {
	perm [512]int
}

// New builds a Perlin field whose permutation is shuffled with src.
func New(src rng.Source) *Perlin {
	var base [256]int
	for i := range base {
		base[i] = i
	}
	// Fisher-Yates
	for i := len(base) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		base[i], base[j] = base[j], base[i]
	}

	p := &Perlin{}
	for i := range p.perm {
		p.perm[i] = base[i&255]
	}
	return p
}

// Permutation returns a copy of the doubled permutation table.
func (p *Perlin) Permutation() [512]int { return p.perm }

// Sample returns the noise value at (x, y), roughly within [-1, 1].
func (p *Perlin) Sample(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy
	u := fade(xf)
	v := fade(yf)

	aa := p.perm[p.perm[xi]+yi]
	ab := p.perm[p.perm[xi]+yi+1]
	ba := p.perm[p.perm[xi+1]+yi]
	bb := p.perm[p.perm[xi+1]+yi+1]

	return lerp(
		lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u),
		lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u),
		v,
	)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}
