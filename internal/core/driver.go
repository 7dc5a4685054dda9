package core

import "fmt"

// Resizable is implemented by canvases that can change their pixel size.
type Resizable interface {
	Resize(w, h int) error
}

// Driver owns the frame loop state shared between a host and a scene: the
// last known pointer, a pending trigger, and the tick counter. Hosts write
// input between ticks; Tick reads it exactly once.
type Driver struct {
	scene  Scene
	canvas Canvas
	seed   int64
	ticks  int

	pointer   Point
	trigger   bool
	triggerAt Point
}

// NewDriver resets scene with seed and binds it to canvas.
func NewDriver(scene Scene, canvas Canvas, seed int64) *Driver {
	d := &Driver{scene: scene, canvas: canvas, pointer: OffCanvas}
	d.Reset(seed)
	return d
}

// Scene returns the driven scene.
func (d *Driver) Scene() Scene { return d.scene }

// Canvas returns the surface the scene paints on.
func (d *Driver) Canvas() Canvas { return d.canvas }

// Seed returns the seed used by the last reset.
func (d *Driver) Seed() int64 { return d.seed }

// Ticks reports how many ticks ran since the last reset.
func (d *Driver) Ticks() int { return d.ticks }

// Pointer returns the last known pointer position.
func (d *Driver) Pointer() Point { return d.pointer }

// SetScene swaps the driven scene and resets it with the current seed.
func (d *Driver) SetScene(scene Scene) {
	d.scene = scene
	d.Reset(d.seed)
}

// Reset reinitialises the scene and drops pending input.
func (d *Driver) Reset(seed int64) {
	d.seed = seed
	d.ticks = 0
	d.trigger = false
	d.scene.Reset(seed)
}

// SetPointer records the current pointer position.
func (d *Driver) SetPointer(p Point) { d.pointer = p }

// ClearPointer moves the pointer off canvas.
func (d *Driver) ClearPointer() { d.pointer = OffCanvas }

// Trigger queues a discrete trigger at p for the next tick. Only the most
// recent trigger survives.
func (d *Driver) Trigger(p Point) {
	d.trigger = true
	d.triggerAt = p
	d.pointer = p
}

// Resize forwards new surface dimensions to the canvas and the scene.
func (d *Driver) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", w, h)
	}
	if r, ok := d.canvas.(Resizable); ok {
		if err := r.Resize(w, h); err != nil {
			return fmt.Errorf("resizing canvas: %w", err)
		}
	}
	d.scene.Resize(w, h)
	return nil
}

// Tick advances the scene by one frame.
func (d *Driver) Tick() {
	in := Input{Pointer: d.pointer, Trigger: d.trigger, TriggerAt: d.triggerAt}
	d.trigger = false
	d.scene.Tick(in, d.canvas)
	d.ticks++
}
