package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"genart/internal/app"
	"genart/internal/core"
	"genart/internal/headless"
	_ "genart/internal/scenes/flowfield"
	_ "genart/internal/scenes/harmonograph"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 600, "ticks to render")
	every := flag.Int("every", 60, "save a PNG every N ticks (0: last frame only)")
	out := flag.String("out", "out", "output directory")
	pointerX := flag.Float64("pointer-x", core.OffCanvas.X, "fixed pointer x")
	pointerY := flag.Float64("pointer-y", core.OffCanvas.Y, "fixed pointer y")
	realtime := flag.Bool("realtime", false, "pace ticks at -tps instead of rendering flat out")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	verbose := flag.Bool("v", false, "debug logging")
	var bursts app.KVList
	flag.Var(&bursts, "burst", "trigger in frame:x:y form (repeatable)")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, *logJSON, *verbose)

	run, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	opt := headless.Options{Frames: *frames, Every: *every, Out: *out, Realtime: *realtime}
	for _, s := range bursts {
		b, err := headless.ParseBurst(s)
		if err != nil {
			logger.Error("invalid burst", "err", err)
			os.Exit(2)
		}
		opt.Bursts = append(opt.Bursts, b)
	}
	if p := (core.Point{X: *pointerX, Y: *pointerY}); p != core.OffCanvas {
		opt.Pointer = &p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := headless.Run(ctx, run, opt, logger)
	if err != nil {
		logger.Error("render failed", "frames", res.Frames, "err", err)
		os.Exit(1)
	}
	logger.Info("final frame", "path", res.Final, "coverage", res.Coverage)
}
