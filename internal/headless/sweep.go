package headless

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"genart/internal/config"
)

// Sweep renders one run per seed using a pool of workers. Each run writes
// into its own subdirectory of opt.Out. Results are sorted by coverage,
// fullest first.
func Sweep(ctx context.Context, base *config.Config, seeds []int64, workers int, opt Options, log *slog.Logger) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}

	type outcome struct {
		res Result
		err error
	}
	jobs := make(chan int64)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := *base
				cfg.Seed = seed
				o := opt
				if opt.Out != "" {
					o.Out = filepath.Join(opt.Out, fmt.Sprintf("seed_%d", seed))
				}
				res, err := Run(ctx, &cfg, o, log.With("seed", seed))
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	var firstErr error
	for o := range results {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		all = append(all, o.res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Coverage != all[j].Coverage {
			return all[i].Coverage > all[j].Coverage
		}
		return all[i].Seed < all[j].Seed
	})
	return all, firstErr
}
