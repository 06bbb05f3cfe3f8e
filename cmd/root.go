package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fjeanquartier/swiftsim/taskplot"
)

var (
	// CLI flags for the task timeline plotter
	limitMS   float64 // upper time limit in ms (0 = derive from data)
	expand    int     // visual lanes per logical thread
	figWidth  float64 // figure width in inches
	figHeight float64 // figure height in inches
	noLegend  bool    // suppress the category legend
	verbose   bool    // dump palette assignments
	logLevel  string  // log verbosity level
	stylePath string  // optional YAML style override file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "swiftsim",
	Short: "Analysis tooling for task-parallel simulation traces",
}

// plotTasksCmd renders one task timeline diagram per rank from a thread
// info file captured during a single simulation step.
var plotTasksCmd = &cobra.Command{
	Use:   "plot-tasks input.dat output-prefix",
	Short: "Plot per-rank task timelines from a scheduler trace",
	Long: `Plot per-rank task timelines from a scheduler trace.

input.dat is a thread info file for one step. One PNG is produced per rank,
named output-prefix<rank>.png. Use --limit to force the same time span on
every plot and --expand to spread each thread over several lanes so that
adjacent tasks of the same type can be told apart.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if expand < 1 {
			logrus.Fatalf("Expansion factor must be >= 1, got %d", expand)
		}

		style, err := taskplot.LoadStyle(stylePath)
		if err != nil {
			logrus.Fatalf("Unable to load style: %v", err)
		}
		// Explicit flags win over the style file.
		if cmd.Flags().Changed("width") {
			style.WidthInches = figWidth
		}
		if cmd.Flags().Changed("height") {
			style.HeightInches = figHeight
		}
		if err := style.Validate(); err != nil {
			logrus.Fatalf("Invalid style: %v", err)
		}

		if err := runPlotTasks(args[0], args[1], style); err != nil {
			logrus.Fatalf("plot-tasks: %v", err)
		}
	},
}

// runPlotTasks executes the full pipeline: load and calibrate the table,
// resolve the shared time window, then build and render one diagram per
// rank. Any error aborts the whole run; no partial multi-rank output.
func runPlotTasks(inPath, outBase string, style taskplot.Style) error {
	file, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file; close error is not actionable

	rows, err := taskplot.ParseTable(file)
	if err != nil {
		return err
	}
	trace, err := taskplot.Load(rows)
	if err != nil {
		return err
	}
	logrus.Infof("Number of ranks: %d", len(trace.Ranks))
	logrus.Infof("Number of threads: %d", trace.NThreads)
	logrus.Debugf("CPU frequency: %g", trace.TicksPerMS*1000.0)

	palette := taskplot.BuildPalette()
	if verbose {
		palette.Dump()
	}

	deltaT, err := taskplot.ResolveWindow(trace, limitMS)
	if err != nil {
		return err
	}
	deltaTMS := deltaT / trace.TicksPerMS
	if limitMS == 0 {
		logrus.Infof("Data range: %g ms", deltaTMS)
	}

	for _, rt := range trace.Ranks {
		if len(rt.Tasks) == 0 {
			logrus.Infof("rank %d has no tasks", rt.Summary.Rank)
		}
		tl := taskplot.BuildTimeline(rt, trace.NThreads, expand, trace.TicksPerMS, palette)
		outPath := fmt.Sprintf("%s%d.png", outBase, rt.Summary.Rank)
		if err := taskplot.Render(tl, deltaTMS, style, !noLegend, outPath); err != nil {
			return fmt.Errorf("rendering rank %d: %w", rt.Summary.Rank, err)
		}
		logrus.Infof("Graphics done, output written to %s", outPath)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	plotTasksCmd.Flags().Float64VarP(&limitMS, "limit", "l", 0, "Upper time limit in millisecs (0 = depends on data)")
	plotTasksCmd.Flags().IntVarP(&expand, "expand", "e", 1, "Thread expansion factor")
	plotTasksCmd.Flags().Float64Var(&figWidth, "width", 16, "Width of plot in inches")
	plotTasksCmd.Flags().Float64Var(&figHeight, "height", 4, "Height of plot in inches")
	plotTasksCmd.Flags().BoolVar(&noLegend, "nolegend", false, "Hide the task type legend")
	plotTasksCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show colour assignments and other details")
	plotTasksCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	plotTasksCmd.Flags().StringVar(&stylePath, "style", "", "YAML file overriding figure style defaults")

	// Attach `plot-tasks` as a subcommand to `root`
	rootCmd.AddCommand(plotTasksCmd)
}
