package app

import (
	"fmt"
	"sort"
	"strings"

	"genart/internal/config"
	"genart/internal/core"
)

// SceneNames lists the registered scenes, sorted.
func SceneNames() []string {
	names := make([]string, 0, len(core.Scenes()))
	for name := range core.Scenes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScene builds the named scene with the overrides cfg carries for it.
func NewScene(cfg *config.Config, name string) (core.Scene, error) {
	factory, ok := core.Scenes()[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %s)", name, strings.Join(SceneNames(), ", "))
	}
	size := core.Size{W: cfg.Window.Width, H: cfg.Window.Height}
	return factory(size, cfg.Overrides(name)), nil
}
