package telemetry

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genart/internal/core"
	"genart/internal/render"
)

func TestSummarize(t *testing.T) {
	rec := render.NewRecorder(10, 10)
	rec.Fill(color.Black)
	rec.FillRect(0, 0, 10, 10, color.NRGBA{A: 10})
	rec.StrokeLine(0, 0, 3, 4, core.Stroke{Color: color.NRGBA{A: 255}})
	rec.StrokeLine(0, 0, 0, 1, core.Stroke{Color: color.NRGBA{A: 51}})

	fs := Summarize(7, "flowfield", rec.Commands(), 1500*time.Microsecond)
	assert.Equal(t, 7, fs.Tick)
	assert.Equal(t, "flowfield", fs.Scene)
	assert.Equal(t, 1, fs.Fills)
	assert.Equal(t, 1, fs.Rects)
	assert.Equal(t, 2, fs.Strokes)
	assert.InDelta(t, 0.6, fs.AlphaMean, 1e-9)
	assert.Greater(t, fs.AlphaStd, 0.0)
	assert.InDelta(t, 3.0, fs.SegmentMean, 1e-9)
	assert.InDelta(t, 5.0, fs.SegmentMax, 1e-9)
	assert.Equal(t, int64(1500), fs.TickMicros)
}

func TestSummarizeWithoutStrokes(t *testing.T) {
	fs := Summarize(0, "x", nil, 0)
	assert.Zero(t, fs.Strokes)
	assert.Zero(t, fs.AlphaMean)
	assert.Zero(t, fs.AlphaStd)
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteFrame(FrameStats{Tick: 0, Scene: "a", Strokes: 3}))
	require.NoError(t, om.WriteFrame(FrameStats{Tick: 1, Scene: "a", Strokes: 4}))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "tick,scene"))

	var rows []FrameStats
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[1].Strokes)
	assert.Equal(t, filepath.Join(dir, "frame_000012.png"), om.FramePath(12))
}

func TestDisabledOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)
	assert.NoError(t, om.WriteFrame(FrameStats{}))
	assert.NoError(t, om.Close())
	assert.Equal(t, "", om.Dir())
}
