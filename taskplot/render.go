package taskplot

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// laneBars draws one lane's interval bars as a single batched collection.
type laneBars struct {
	lane float64
	fill float64 // bar height as a fraction of the lane
	bars []Bar
}

// Plot implements plot.Plotter.
func (lb laneBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pad := (1 - lb.fill) / 2
	yMin := trY(lb.lane + pad)
	yMax := trY(lb.lane + 1 - pad)
	for _, bar := range lb.bars {
		xMin := trX(bar.StartMS)
		xMax := trX(bar.StartMS + bar.DurationMS)
		rect := c.ClipPolygonXY([]vg.Point{
			{X: xMin, Y: yMin},
			{X: xMax, Y: yMin},
			{X: xMax, Y: yMax},
			{X: xMin, Y: yMax},
		})
		c.FillPolygon(bar.Colour.RGBA, rect)
	}
}

// legendBand draws the category legend inside the band reserved above the
// lanes, legendColumns entries per row in first-seen order.
type legendBand struct {
	entries  []LegendEntry
	top      float64 // upper edge of the band in data coordinates
	fontSize vg.Length
}

// Plot implements plot.Plotter.
func (lb legendBand) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	ts := plt.Title.TextStyle
	ts.Font.Size = lb.fontSize
	ts.XAlign = draw.XLeft
	ts.YAlign = draw.YBottom

	span := plt.X.Max - plt.X.Min
	swatchW := span * 0.012
	for i, entry := range lb.entries {
		row := i / legendColumns
		col := i % legendColumns
		x0 := plt.X.Min + span*(0.01+float64(col)/legendColumns)
		y0 := lb.top - float64(row) - 0.85
		rect := c.ClipPolygonXY([]vg.Point{
			{X: trX(x0), Y: trY(y0)},
			{X: trX(x0 + swatchW), Y: trY(y0)},
			{X: trX(x0 + swatchW), Y: trY(y0 + 0.6)},
			{X: trX(x0), Y: trY(y0 + 0.6)},
		})
		c.FillPolygon(entry.Colour.RGBA, rect)
		c.FillText(ts, vg.Point{X: trX(x0+swatchW) + vg.Points(2), Y: trY(y0)}, entry.Label)
	}
}

// stepMarker builds a dashed vertical line at x spanning the whole y range.
func stepMarker(x, yMax float64, width vg.Length) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: yMax}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = color.Black
	line.LineStyle.Width = width
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return line, nil
}

// threadTicks places one major y tick per logical thread, i.e. every expand
// lanes, labelled with the lane index.
func threadTicks(nLanes, expand int) []plot.Tick {
	var ticks []plot.Tick
	for lane := 0; lane <= nLanes; lane += expand {
		ticks = append(ticks, plot.Tick{Value: float64(lane), Label: strconv.Itoa(lane)})
	}
	return ticks
}

// buildPlot assembles one rank's diagram. The x-axis spans the shared
// window with a 1% margin on each side; the y-axis reserves room above the
// lanes for the legend band. An empty timeline still yields a framed
// diagram with its step markers.
func buildPlot(tl Timeline, deltaTMS float64, style Style, showLegend bool) (*plot.Plot, error) {
	p := plot.New()

	legendRows := tl.LegendRows()
	yMax := float64(tl.NLanes + legendRows + 1)

	p.X.Label.Text = "Wall clock time [ms]"
	if tl.Expand == 1 {
		p.Y.Label.Text = "Thread ID"
	} else {
		p.Y.Label.Text = fmt.Sprintf("Thread ID * %d", tl.Expand)
	}
	p.X.Label.TextStyle.Font.Size = vg.Points(style.LabelSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(style.LabelSize)
	p.X.Tick.Label.Font.Size = vg.Points(style.TickSize)
	p.Y.Tick.Label.Font.Size = vg.Points(style.TickSize)
	p.Y.Tick.Marker = plot.ConstantTicks(threadTicks(tl.NLanes, tl.Expand))

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil // y-major lines only
	p.Add(grid)

	lanes := make([]int, 0, len(tl.Lanes))
	for lane := range tl.Lanes {
		lanes = append(lanes, lane)
	}
	sort.Ints(lanes)
	for _, lane := range lanes {
		p.Add(laneBars{lane: float64(lane), fill: style.BarFill, bars: tl.Lanes[lane]})
	}

	// Start and end of the time-step.
	for _, x := range []float64{0, tl.EndMS} {
		marker, err := stepMarker(x, yMax, vg.Points(style.MarkerWidth))
		if err != nil {
			return nil, fmt.Errorf("building step marker: %w", err)
		}
		p.Add(marker)
	}

	if showLegend && len(tl.Legend) > 0 {
		p.Add(legendBand{
			entries:  tl.Legend,
			top:      float64(tl.NLanes + legendRows),
			fontSize: vg.Points(style.LegendSize),
		})
	}

	// Pin the axes last: Add merges every DataRanger's range (the step
	// markers included) into the limits, and a step end beyond the shared
	// window must not stretch this rank's axis.
	p.X.Min = -0.01 * deltaTMS
	p.X.Max = 1.01 * deltaTMS
	p.Y.Min = 0
	p.Y.Max = yMax

	return p, nil
}

// Render draws one rank's diagram and writes it to outPath as a PNG.
func Render(tl Timeline, deltaTMS float64, style Style, showLegend bool, outPath string) error {
	p, err := buildPlot(tl, deltaTMS, style, showLegend)
	if err != nil {
		return err
	}
	width := vg.Length(style.WidthInches) * vg.Inch
	height := vg.Length(style.HeightInches) * vg.Inch
	if err := p.Save(width, height, outPath); err != nil {
		return fmt.Errorf("saving %s: %w", outPath, err)
	}
	return nil
}
