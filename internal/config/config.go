// Package config loads run configuration from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config describes a run: which scene, its seed, the window and per-scene
// parameter overrides keyed by scene name.
type Config struct {
	Scene  string                       `yaml:"scene"`
	Seed   int64                        `yaml:"seed"`
	Window WindowConfig                 `yaml:"window"`
	Scenes map[string]map[string]string `yaml:"scenes"`
}

// WindowConfig holds host surface settings.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.Scenes == nil {
		cfg.Scenes = map[string]map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects window settings that cannot describe a surface.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	if strings.TrimSpace(c.Scene) == "" {
		return fmt.Errorf("scene must be set")
	}
	return nil
}

// Set records a key=value override for a scene.
func (c *Config) Set(scene, key, value string) {
	if c.Scenes == nil {
		c.Scenes = map[string]map[string]string{}
	}
	m := c.Scenes[scene]
	if m == nil {
		m = map[string]string{}
		c.Scenes[scene] = m
	}
	m[key] = value
}

// Overrides returns a copy of the overrides for scene.
func (c *Config) Overrides(scene string) map[string]string {
	out := make(map[string]string, len(c.Scenes[scene]))
	for k, v := range c.Scenes[scene] {
		out[k] = v
	}
	return out
}

// SceneNames lists the scenes that carry overrides, sorted.
func (c *Config) SceneNames() []string {
	names := make([]string, 0, len(c.Scenes))
	for name := range c.Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteYAML writes the effective configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
