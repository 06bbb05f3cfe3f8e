package taskplot

// ResolveWindow determines the shared x-axis span in ticks. A non-zero
// limitMS takes precedence and is converted via the calibration factor.
// Otherwise the widest per-rank task span wins: each rank can sit on a
// different compute node, but one shared span keeps the diagrams visually
// comparable. With no limit and no task rows anywhere the span is
// undefined and ErrEmptyWindow is returned.
func ResolveWindow(trace *Trace, limitMS float64) (float64, error) {
	if limitMS != 0 {
		return limitMS * trace.TicksPerMS, nil
	}

	deltaT := 0.0
	found := false
	for _, rt := range trace.Ranks {
		if len(rt.Tasks) == 0 {
			continue
		}
		found = true
		minTic, maxToc := rt.Tasks[0].Tic, rt.Tasks[0].Toc
		for _, task := range rt.Tasks[1:] {
			if task.Tic < minTic {
				minTic = task.Tic
			}
			if task.Toc > maxToc {
				maxToc = task.Toc
			}
		}
		if span := float64(maxToc - minTic); span > deltaT {
			deltaT = span
		}
	}
	if !found {
		return 0, ErrEmptyWindow
	}
	return deltaT, nil
}
