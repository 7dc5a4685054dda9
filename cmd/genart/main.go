//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"genart/internal/app"
	_ "genart/internal/scenes/flowfield"
	_ "genart/internal/scenes/harmonograph"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logJSON := flag.Bool("log-json", false, "log as JSON")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, *logJSON, *verbose)

	run, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	game, err := app.New(run, logger)
	if err != nil {
		logger.Error("starting scene", "err", err)
		os.Exit(2)
	}

	ebiten.SetWindowTitle("genart - " + run.Scene)
	ebiten.SetTPS(run.Window.TPS)
	ebiten.SetWindowSize(run.Window.Width, run.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("window started", "scene", run.Scene, "seed", run.Seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "err", err)
		os.Exit(1)
	}
}
