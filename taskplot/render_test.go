package taskplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)
	return info.Size()
}

func TestRender_WritesPNG(t *testing.T) {
	// GIVEN a small two-thread timeline
	palette := BuildPalette()
	rt := RankTrace{
		Summary: StepSummary{Rank: 0, Tic: 100, Toc: 200},
		Tasks: []TaskRecord{
			{Thread: 0, Type: "self", SubType: "density", Tic: 110, Toc: 150},
			{Thread: 1, Type: "sort", SubType: "none", Tic: 115, Toc: 140},
			{Thread: 1, Type: "drift", SubType: "none", Tic: 145, Toc: 170},
		},
	}
	tl := BuildTimeline(rt, 2, 2, 1.0, palette)
	out := filepath.Join(t.TempDir(), "step0.png")

	// WHEN the diagram is rendered
	err := Render(tl, 100, DefaultStyle(), true, out)

	// THEN a non-empty PNG exists
	require.NoError(t, err)
	assert.Greater(t, renderedSize(t, out), int64(0))
}

func TestRender_EmptyRankStillProducesDiagram(t *testing.T) {
	// A rank that did no work still gets a framed plot with step markers.
	palette := BuildPalette()
	tl := BuildTimeline(RankTrace{Summary: StepSummary{Rank: 2, Tic: 0, Toc: 500}}, 4, 1, 1.0, palette)
	out := filepath.Join(t.TempDir(), "step2.png")

	err := Render(tl, 500, DefaultStyle(), true, out)

	require.NoError(t, err)
	assert.Greater(t, renderedSize(t, out), int64(0))
}

func TestRender_NoLegendMode(t *testing.T) {
	palette := BuildPalette()
	rt := RankTrace{
		Summary: StepSummary{Tic: 0, Toc: 100},
		Tasks:   []TaskRecord{{Thread: 0, Type: "ghost", SubType: "none", Tic: 10, Toc: 20}},
	}
	tl := BuildTimeline(rt, 1, 1, 1.0, palette)
	out := filepath.Join(t.TempDir(), "nolegend.png")

	require.NoError(t, Render(tl, 100, DefaultStyle(), false, out))
	assert.Greater(t, renderedSize(t, out), int64(0))
}

func TestBuildPlot_AxisSpanStaysFixed(t *testing.T) {
	// GIVEN a rank whose step end lies well beyond the shared window, as
	// happens whenever the window derives from task spans only
	palette := BuildPalette()
	rt := RankTrace{
		Summary: StepSummary{Rank: 0, Tic: 100, Toc: 200}, // EndMS = 100
		Tasks: []TaskRecord{
			{Thread: 0, Type: "self", SubType: "density", Tic: 110, Toc: 150},
		},
	}
	tl := BuildTimeline(rt, 1, 1, 1.0, palette)
	deltaTMS := 40.0
	require.Greater(t, tl.EndMS, 1.01*deltaTMS, "step end must exceed the window for this test to bite")

	// WHEN the plot is assembled
	p, err := buildPlot(tl, deltaTMS, DefaultStyle(), true)
	require.NoError(t, err)

	// THEN the step marker has not stretched the axes: every rank keeps the
	// same [-0.01Δt, 1.01Δt] span so diagrams stay comparable
	assert.Equal(t, -0.01*deltaTMS, p.X.Min)
	assert.Equal(t, 1.01*deltaTMS, p.X.Max)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, float64(tl.NLanes+tl.LegendRows()+1), p.Y.Max)
}

func TestThreadTicks_OnePerLogicalThread(t *testing.T) {
	ticks := threadTicks(6, 3)

	var values []float64
	for _, tick := range ticks {
		values = append(values, tick.Value)
	}
	assert.Equal(t, []float64{0, 3, 6}, values)
}
