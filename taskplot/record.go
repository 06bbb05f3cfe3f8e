package taskplot

// TaskRecord is one scheduled unit of work read from the trace table.
// Timestamps are absolute hardware clock ticks.
type TaskRecord struct {
	Rank    int
	Thread  int
	Type    string
	SubType string
	Tic     int64
	Toc     int64
}

// StepSummary is the first row of a rank's block. Its tic/toc bound the
// rank's whole step rather than a single task.
type StepSummary struct {
	Rank int
	Tic  int64
	Toc  int64
}

// RankTrace groups one rank's step summary with its surviving task rows, in
// original file order.
type RankTrace struct {
	Summary StepSummary
	Tasks   []TaskRecord
}

// Trace is the loaded, calibrated table: one RankTrace per rank plus the
// tick-to-millisecond conversion factor shared by every rank.
type Trace struct {
	Ranks      []RankTrace // indexed by rank id
	NThreads   int         // logical threads per rank, before expansion
	TicksPerMS float64
}
