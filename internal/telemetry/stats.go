// Package telemetry summarises rendered frames and writes them out as CSV.
package telemetry

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"genart/internal/render"
)

// FrameStats describes the draw calls issued during one tick.
type FrameStats struct {
	Tick        int     `csv:"tick"`
	Scene       string  `csv:"scene"`
	Fills       int     `csv:"fills"`
	Rects       int     `csv:"rects"`
	Strokes     int     `csv:"strokes"`
	AlphaMean   float64 `csv:"alpha_mean"`
	AlphaStd    float64 `csv:"alpha_std"`
	SegmentMean float64 `csv:"segment_mean"`
	SegmentMax  float64 `csv:"segment_max"`
	TickMicros  int64   `csv:"tick_us"`
}

// Summarize computes stroke statistics for the commands of one tick.
// Alphas are reported as fractions.
func Summarize(tick int, scene string, cmds []render.Command, elapsed time.Duration) FrameStats {
	fs := FrameStats{Tick: tick, Scene: scene, TickMicros: elapsed.Microseconds()}

	alphas := make([]float64, 0, len(cmds))
	lengths := make([]float64, 0, len(cmds))
	for _, c := range cmds {
		switch c.Op {
		case render.OpFill:
			fs.Fills++
		case render.OpFillRect:
			fs.Rects++
		case render.OpStroke:
			fs.Strokes++
			alphas = append(alphas, float64(c.Color.A)/255)
			lengths = append(lengths, math.Hypot(c.X1-c.X0, c.Y1-c.Y0))
		}
	}

	if len(alphas) > 0 {
		fs.AlphaMean = stat.Mean(alphas, nil)
		fs.SegmentMean = stat.Mean(lengths, nil)
		fs.SegmentMax = floats.Max(lengths)
	}
	if len(alphas) > 1 {
		fs.AlphaStd = stat.StdDev(alphas, nil)
	}
	return fs
}
