package taskplot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fixed column schema of the thread info table. The calibration value (CPU
// tick rate in Hz) sits in the last column of the first row.
const (
	colRank    = 0
	colThread  = 1
	colType    = 2
	colSubType = 3
	colTic     = 5
	colToc     = 6

	minColumns = 8
)

// ParseTable reads a whitespace-delimited numeric table. Blank lines and
// lines starting with '#' are skipped. All data lines must have the same
// number of columns.
func ParseTable(r io.Reader) ([][]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]float64
	width := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %v", ErrMalformedInput, lineNo, i+1, err)
			}
			row[i] = value
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformedInput, lineNo, len(row), width)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace table: %w", err)
	}
	return rows, nil
}

// Load calibrates and partitions a parsed table. The tick rate comes from
// the first row only and is assumed constant for the whole input. Rows with
// a zero tic or toc are "never executed" sentinels and are dropped, except
// each rank's first row, which is always retained as its StepSummary. Note
// that a task genuinely starting at tick 0 would be dropped too; absolute
// tick values make that a non-issue in practice.
func Load(rows [][]float64) (*Trace, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrMalformedInput)
	}
	if len(rows[0]) < minColumns {
		return nil, fmt.Errorf("%w: need at least %d columns, got %d", ErrMalformedInput, minColumns, len(rows[0]))
	}

	cpuClock := rows[0][len(rows[0])-1]
	if cpuClock <= 0 {
		return nil, fmt.Errorf("%w: non-positive CPU tick rate %g", ErrMalformedInput, cpuClock)
	}
	ticksPerMS := cpuClock / 1000.0

	nRanks, nThreads := 0, 0
	for i, row := range rows {
		rank, thread := int(row[colRank]), int(row[colThread])
		if rank < 0 || thread < 0 {
			return nil, fmt.Errorf("%w: negative rank or thread on data row %d", ErrMalformedInput, i+1)
		}
		if rank+1 > nRanks {
			nRanks = rank + 1
		}
		if thread+1 > nThreads {
			nThreads = thread + 1
		}
	}

	ranks := make([]RankTrace, nRanks)
	seen := make([]bool, nRanks)
	for _, row := range rows {
		rank := int(row[colRank])
		if !seen[rank] {
			// First row of the rank's block: the step boundaries.
			seen[rank] = true
			ranks[rank].Summary = StepSummary{
				Rank: rank,
				Tic:  int64(row[colTic]),
				Toc:  int64(row[colToc]),
			}
			continue
		}
		if row[colTic] == 0 || row[colToc] == 0 {
			continue
		}
		taskType, err := TaskTypeName(int(row[colType]))
		if err != nil {
			return nil, err
		}
		subType, err := SubTypeName(int(row[colSubType]))
		if err != nil {
			return nil, err
		}
		ranks[rank].Tasks = append(ranks[rank].Tasks, TaskRecord{
			Rank:    rank,
			Thread:  int(row[colThread]),
			Type:    taskType,
			SubType: subType,
			Tic:     int64(row[colTic]),
			Toc:     int64(row[colToc]),
		})
	}

	// Rank ids must be contiguous: a gap means a rank block is missing its
	// StepSummary and any diagram for it would be fabricated.
	for rank, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: no rows for rank %d", ErrMalformedInput, rank)
		}
	}

	return &Trace{Ranks: ranks, NThreads: nThreads, TicksPerMS: ticksPerMS}, nil
}
