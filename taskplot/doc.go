// Package taskplot turns raw scheduler trace tables into per-rank task
// timeline diagrams.
//
// # Reading Guide
//
// The pipeline runs in four stages, one file each:
//   - loader.go: parse the numeric table, calibrate ticks to ms, filter
//     sentinel rows and partition by rank
//   - window.go: resolve the shared x-axis span used by every rank
//   - timeline.go: fold one rank's rows into coloured per-lane bar sequences
//   - render.go: draw one PNG per rank via gonum/plot
//
// vocab.go and palette.go hold the fixed task vocabularies and the
// deterministic category-to-colour mapping they feed.
package taskplot
