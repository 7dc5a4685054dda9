// Package headless renders scenes to PNG frames without a window.
package headless

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"genart/internal/app"
	"genart/internal/config"
	"genart/internal/core"
	"genart/internal/render"
	"genart/internal/telemetry"
)

// Burst is a trigger injected before a given frame.
type Burst struct {
	Frame int
	At    core.Point
}

// ParseBurst parses "frame:x:y".
func ParseBurst(s string) (Burst, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Burst{}, fmt.Errorf("burst %q: want frame:x:y", s)
	}
	frame, err := strconv.Atoi(parts[0])
	if err != nil || frame < 0 {
		return Burst{}, fmt.Errorf("burst %q: bad frame", s)
	}
	x, errX := strconv.ParseFloat(parts[1], 64)
	y, errY := strconv.ParseFloat(parts[2], 64)
	if errX != nil || errY != nil {
		return Burst{}, fmt.Errorf("burst %q: bad position", s)
	}
	return Burst{Frame: frame, At: core.Point{X: x, Y: y}}, nil
}

// Options controls a headless run.
type Options struct {
	Frames int
	// Every saves a PNG each Every frames; the last frame is always saved.
	// Zero saves only the last frame.
	Every   int
	Out     string
	Bursts  []Burst
	Pointer *core.Point
	// Realtime paces ticks at the configured window TPS.
	Realtime bool
}

// Result summarises a run.
type Result struct {
	Scene     string        `csv:"scene"`
	Seed      int64         `csv:"seed"`
	Frames    int           `csv:"frames"`
	Strokes   int           `csv:"strokes"`
	AlphaMean float64       `csv:"alpha_mean"`
	Coverage  float64       `csv:"coverage"`
	Restarts  int           `csv:"restarts"`
	Final     string        `csv:"final"`
	Elapsed   time.Duration `csv:"-"`
}

type restartCounter interface {
	Restarts() int
}

// Run renders cfg.Scene for opt.Frames ticks into opt.Out.
func Run(ctx context.Context, cfg *config.Config, opt Options, log *slog.Logger) (Result, error) {
	if opt.Frames <= 0 {
		return Result{}, fmt.Errorf("frames must be positive, got %d", opt.Frames)
	}
	scene, err := app.NewScene(cfg, cfg.Scene)
	if err != nil {
		return Result{}, err
	}

	canvas := render.NewSoftware(cfg.Window.Width, cfg.Window.Height)
	defer canvas.Close()
	rec := render.Tee(canvas)
	driver := core.NewDriver(scene, rec, cfg.Seed)

	om, err := telemetry.NewOutputManager(opt.Out)
	if err != nil {
		return Result{}, err
	}
	defer om.Close()
	if om != nil {
		if err := cfg.WriteYAML(om.Path("config.yaml")); err != nil {
			return Result{}, err
		}
	}

	res := Result{Scene: scene.Name(), Seed: cfg.Seed}
	rc, counts := scene.(restartCounter)
	restarts := 0
	if counts {
		restarts = rc.Restarts()
	}
	initial := restarts
	alphaSum := 0.0
	start := time.Now()
	log.Info("render started", "scene", res.Scene, "seed", res.Seed, "frames", opt.Frames,
		"width", cfg.Window.Width, "height", cfg.Window.Height)

	var pacer *core.Pacer
	if opt.Realtime {
		pacer = core.NewPacer(cfg.Window.TPS)
	}

	for frame := 0; frame < opt.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if pacer != nil {
			if err := pacer.Wait(ctx); err != nil {
				return res, err
			}
		}
		if opt.Pointer != nil {
			driver.SetPointer(*opt.Pointer)
		}
		for _, b := range opt.Bursts {
			if b.Frame == frame {
				driver.Trigger(b.At)
			}
		}

		rec.Reset()
		tickStart := time.Now()
		driver.Tick()
		if err := canvas.Err(); err != nil {
			return res, fmt.Errorf("frame %d: %w", frame, err)
		}

		stats := telemetry.Summarize(frame, res.Scene, rec.Commands(), time.Since(tickStart))
		if err := om.WriteFrame(stats); err != nil {
			return res, err
		}
		res.Frames++
		res.Strokes += stats.Strokes
		alphaSum += stats.AlphaMean * float64(stats.Strokes)

		if counts && rc.Restarts() != restarts {
			restarts = rc.Restarts()
			log.Info("figure restarted", "frame", frame, "figures", restarts)
		}

		last := frame == opt.Frames-1
		if om != nil && (last || (opt.Every > 0 && (frame+1)%opt.Every == 0)) {
			path := om.FramePath(frame)
			if err := canvas.SavePNG(path); err != nil {
				return res, err
			}
			res.Final = path
			log.Debug("frame written", "path", path)
		}
	}

	if res.Strokes > 0 {
		res.AlphaMean = alphaSum / float64(res.Strokes)
	}
	res.Restarts = restarts - initial
	res.Coverage = Coverage(canvas.Image(), coverageThreshold)
	res.Elapsed = time.Since(start)
	log.Info("render finished", "scene", res.Scene, "seed", res.Seed, "frames", res.Frames,
		"strokes", res.Strokes, "coverage", res.Coverage, "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

const coverageThreshold = 24

// Coverage returns the fraction of pixels with any channel brighter than
// threshold (0-255).
func Coverage(img image.Image, threshold uint8) float64 {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	limit := uint32(threshold) * 0x101
	lit := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r > limit || g > limit || bl > limit {
				lit++
			}
		}
	}
	return float64(lit) / float64(total)
}
