package app

import (
	"flag"
	"fmt"
	"strings"

	"genart/internal/config"
)

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the commands.
type Config struct {
	File   string
	Scene  string
	Width  int
	Height int
	TPS    int
	Seed   int64
	Sets   KVList
}

// NewConfig returns a Config populated from the embedded defaults.
func NewConfig() *Config {
	d := config.Default()
	return &Config{
		Scene:  d.Scene,
		Width:  d.Window.Width,
		Height: d.Window.Height,
		TPS:    d.Window.TPS,
		Seed:   d.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML run configuration")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scene reset")
	fs.Var(&c.Sets, "set", "scene parameter override in key=value or scene.key=value form (repeatable)")
}

// Resolve loads the YAML file, then applies the flags that were set
// explicitly on fs and finally the -set overrides.
func (c *Config) Resolve(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(c.File)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = c.Scene
		case "width":
			cfg.Window.Width = c.Width
		case "height":
			cfg.Window.Height = c.Height
		case "tps":
			cfg.Window.TPS = c.TPS
		case "seed":
			cfg.Seed = c.Seed
		}
	})
	for _, kv := range c.Sets {
		scene, key, value, err := ParseOverride(kv, cfg.Scene)
		if err != nil {
			return nil, err
		}
		cfg.Set(scene, key, value)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseOverride splits "key=value" or "scene.key=value". Unqualified keys
// belong to scene.
func ParseOverride(kv, scene string) (string, string, string, error) {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", "", fmt.Errorf("override %q: want key=value", kv)
	}
	if prefix, rest, qualified := strings.Cut(key, "."); qualified {
		if prefix == "" || rest == "" {
			return "", "", "", fmt.Errorf("override %q: want scene.key=value", kv)
		}
		scene, key = prefix, rest
	}
	return scene, key, strings.TrimSpace(value), nil
}
