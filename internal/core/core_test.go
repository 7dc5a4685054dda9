package core

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSLA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, HSLA(0, 1, 0.5, 1))
	assert.Equal(t, color.NRGBA{G: 255, A: 128}, HSLA(120, 1, 0.5, 0.5))
	assert.Equal(t, HSLA(240, 1, 0.5, 1), HSLA(-120, 1, 0.5, 1))
	assert.Equal(t, HSLA(30, 1, 0.5, 1), HSLA(390, 1, 0.5, 1))
	assert.Equal(t, uint8(0), HSLA(10, 1, 0.5, -1).A)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, HSLA(0, 0, 1, 2))
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{R: 9, A: 255}, 0.038)
	assert.Equal(t, uint8(10), c.A)
	assert.Equal(t, uint8(9), c.R)
}

func TestOverrides(t *testing.T) {
	cfg := map[string]string{"n": "5", "neg": "-2", "f": "0.5", "bad": "x", "nan": "NaN"}
	n, neg, missing := 1, 1, 1
	OverrideInt(cfg, "n", 0, &n)
	OverrideInt(cfg, "neg", 0, &neg)
	OverrideInt(cfg, "missing", 0, &missing)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, neg)
	assert.Equal(t, 1, missing)

	f, bad, nan := 1.0, 1.0, 1.0
	OverrideFloat(cfg, "f", 0, &f)
	OverrideFloat(cfg, "bad", 0, &bad)
	OverrideFloat(cfg, "nan", 0, &nan)
	assert.Equal(t, 0.5, f)
	assert.Equal(t, 1.0, bad)
	assert.Equal(t, 1.0, nan)
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{IntParam("x", "X", 3)}},
		{Name: "b", Params: []Parameter{FloatParam("y", "Y", 0.25), StringParam("z", "Z", "on")}},
	}}
	p, ok := snap.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, "0.25", p.Value)
	assert.Equal(t, ParamTypeFloat, p.Type)
	_, ok = snap.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistryIgnoresInvalidEntries(t *testing.T) {
	before := len(Scenes())
	Register("", func(Size, map[string]string) Scene { return nil })
	Register("nil-factory", nil)
	assert.Len(t, Scenes(), before)
}

func TestSizeMin(t *testing.T) {
	assert.Equal(t, 600, Size{W: 800, H: 600}.Min())
	assert.Equal(t, 300, Size{W: 300, H: 900}.Min())
}
