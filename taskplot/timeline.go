package taskplot

// Bar is one drawable interval on a lane, in milliseconds from step start.
type Bar struct {
	StartMS    float64
	DurationMS float64
	Colour     Colour
}

// LegendEntry pairs a category label with its colour. Entries are recorded
// in first-seen order while scanning a rank's tasks; legends are rank-local.
type LegendEntry struct {
	Label  string
	Colour Colour
}

// Timeline is one rank's fully laid-out diagram content.
type Timeline struct {
	Rank   int
	Lanes  map[int][]Bar // lane index -> bars in arrival order
	Legend []LegendEntry
	EndMS  float64 // step end, ms from step start
	NLanes int     // NThreads * Expand
	Expand int
}

// legendColumns is the number of legend entries per legend row.
const legendColumns = 5

// LegendRows is the number of rows the legend band needs at five entries
// per row.
func (t Timeline) LegendRows() int {
	return (len(t.Legend) + legendColumns - 1) / legendColumns
}

// BuildTimeline folds one rank's rows into per-lane bar sequences.
// Timestamps are shifted so the step summary's tic maps to zero, then scaled
// to milliseconds. Successive tasks on one thread round-robin across expand
// adjacent lanes so that temporally overlapping bars on a single thread do
// not overplot. Rows are taken in file order; the input is chronological per
// thread and is not re-sorted here.
func BuildTimeline(rt RankTrace, nThreads, expand int, ticksPerMS float64, palette Palette) Timeline {
	startT := rt.Summary.Tic
	tl := Timeline{
		Rank:   rt.Summary.Rank,
		Lanes:  make(map[int][]Bar),
		EndMS:  float64(rt.Summary.Toc-startT) / ticksPerMS,
		NLanes: nThreads * expand,
		Expand: expand,
	}

	counters := make([]int, nThreads)
	seen := make(map[string]bool)
	for _, task := range rt.Tasks {
		lane := task.Thread*expand + counters[task.Thread]%expand
		counters[task.Thread]++

		colour := palette.Lookup(task.Type, task.SubType)
		ticMS := float64(task.Tic-startT) / ticksPerMS
		tocMS := float64(task.Toc-startT) / ticksPerMS
		tl.Lanes[lane] = append(tl.Lanes[lane], Bar{
			StartMS:    ticMS,
			DurationMS: tocMS - ticMS,
			Colour:     colour,
		})

		label := task.Type
		if task.SubType != "none" {
			label = task.Type + "/" + task.SubType
		}
		if !seen[label] {
			seen[label] = true
			tl.Legend = append(tl.Legend, LegendEntry{Label: label, Colour: colour})
		}
	}
	return tl
}
