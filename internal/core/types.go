package core

// Size describes the dimensions of a drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Min returns the shorter side.
func (s Size) Min() int {
	if s.W < s.H {
		return s.W
	}
	return s.H
}

// Point is a position on the surface.
type Point struct {
	X, Y float64
}

// OffCanvas is the pointer position reported when no pointer is present.
var OffCanvas = Point{X: -9999, Y: -9999}

// Input is the external state a scene reads once at the start of a tick.
type Input struct {
	Pointer   Point
	Trigger   bool
	TriggerAt Point
}

// Scene is a generative animation advanced once per display frame.
type Scene interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Resize(w, h int)
	// Tick advances the scene by one frame and paints the incremental
	// change onto c. The canvas keeps its pixels between ticks.
	Tick(in Input, c Canvas)
}

// Factory constructs a Scene for a surface size using optional key/value overrides.
type Factory func(size Size, cfg map[string]string) Scene

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Scenes exposes the registry of available scene factories.
func Scenes() map[string]Factory {
	return scenes
}
