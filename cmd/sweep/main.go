package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"

	"genart/internal/app"
	"genart/internal/headless"
	_ "genart/internal/scenes/flowfield"
	_ "genart/internal/scenes/harmonograph"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 300, "ticks to render per seed")
	count := flag.Int("seeds", 16, "number of consecutive seeds to render")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := flag.String("out", "sweep", "output directory")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, *logJSON, false)

	run, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = run.Seed + int64(i)
	}

	fmt.Printf("Sweeping %d seeds of %s (%d workers, %d frames)\n", len(seeds), run.Scene, *workers, *frames)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := headless.Sweep(ctx, run, seeds, *workers, headless.Options{Frames: *frames, Out: *out}, logger)
	if err != nil {
		logger.Error("sweep failed", "completed", len(results), "err", err)
	}

	if merr := os.MkdirAll(*out, 0755); merr != nil {
		logger.Error("creating output directory", "err", merr)
		os.Exit(1)
	}
	f, ferr := os.Create(filepath.Join(*out, "summary.csv"))
	if ferr != nil {
		logger.Error("creating summary", "err", ferr)
		os.Exit(1)
	}
	if werr := gocsv.MarshalFile(&results, f); werr != nil {
		logger.Error("writing summary", "err", werr)
	}
	f.Close()

	fmt.Printf("\nTop 5 results (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		r := results[i]
		fmt.Printf("%2d) seed=%d coverage=%.3f strokes=%d alpha=%.3f restarts=%d %s\n",
			i+1, r.Seed, r.Coverage, r.Strokes, r.AlphaMean, r.Restarts, r.Final)
	}
	if err != nil {
		os.Exit(1)
	}
}
