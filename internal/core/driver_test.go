package core

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScene struct {
	size   Size
	seed   int64
	resets int
	inputs []Input
}

func (s *stubScene) Name() string { return "stub" }

func (s *stubScene) Size() Size { return s.size }

func (s *stubScene) Reset(seed int64) {
	s.seed = seed
	s.resets++
}

func (s *stubScene) Resize(w, h int) { s.size = Size{W: w, H: h} }

func (s *stubScene) Tick(in Input, _ Canvas) { s.inputs = append(s.inputs, in) }

type stubCanvas struct {
	size Size
	err  error
}

func (c *stubCanvas) Size() Size { return c.size }

func (c *stubCanvas) Fill(color.Color) {}

func (c *stubCanvas) FillRect(float64, float64, float64, float64, color.Color) {}

func (c *stubCanvas) StrokeLine(float64, float64, float64, float64, Stroke) {}

func (c *stubCanvas) Resize(w, h int) error {
	if c.err != nil {
		return c.err
	}
	c.size = Size{W: w, H: h}
	return nil
}

func TestDriverResetsSceneWithSeed(t *testing.T) {
	scene := &stubScene{}
	d := NewDriver(scene, &stubCanvas{}, 77)
	assert.Equal(t, int64(77), scene.seed)
	assert.Equal(t, 1, scene.resets)
	assert.Equal(t, OffCanvas, d.Pointer())
}

func TestDriverDeliversTriggerOnce(t *testing.T) {
	scene := &stubScene{}
	d := NewDriver(scene, &stubCanvas{}, 1)

	d.SetPointer(Point{X: 3, Y: 4})
	d.Tick()
	d.Trigger(Point{X: 1, Y: 1})
	d.Trigger(Point{X: 10, Y: 20})
	d.Tick()
	d.Tick()
	d.ClearPointer()
	d.Tick()

	require.Len(t, scene.inputs, 4)
	assert.Equal(t, Input{Pointer: Point{X: 3, Y: 4}}, scene.inputs[0])
	assert.True(t, scene.inputs[1].Trigger)
	assert.Equal(t, Point{X: 10, Y: 20}, scene.inputs[1].TriggerAt)
	assert.Equal(t, Point{X: 10, Y: 20}, scene.inputs[1].Pointer)
	assert.False(t, scene.inputs[2].Trigger)
	assert.Equal(t, OffCanvas, scene.inputs[3].Pointer)
	assert.Equal(t, 4, d.Ticks())
}

func TestDriverResetDropsPendingTrigger(t *testing.T) {
	scene := &stubScene{}
	d := NewDriver(scene, &stubCanvas{}, 1)
	d.Trigger(Point{X: 1, Y: 1})
	d.Tick()
	d.Trigger(Point{X: 2, Y: 2})
	d.Reset(9)
	d.Tick()

	assert.Equal(t, 1, d.Ticks())
	assert.False(t, scene.inputs[1].Trigger)
	assert.Equal(t, int64(9), d.Seed())
}

func TestDriverResize(t *testing.T) {
	scene := &stubScene{}
	canvas := &stubCanvas{}
	d := NewDriver(scene, canvas, 1)

	require.NoError(t, d.Resize(320, 200))
	assert.Equal(t, Size{W: 320, H: 200}, scene.size)
	assert.Equal(t, Size{W: 320, H: 200}, canvas.size)

	assert.Error(t, d.Resize(0, 10))

	canvas.err = errors.New("boom")
	err := d.Resize(10, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, canvas.err)
	assert.Equal(t, Size{W: 320, H: 200}, scene.size)
}

func TestDriverSetScene(t *testing.T) {
	d := NewDriver(&stubScene{}, &stubCanvas{}, 5)
	next := &stubScene{}
	d.SetScene(next)
	assert.Same(t, next, d.Scene())
	assert.Equal(t, int64(5), next.seed)
}
