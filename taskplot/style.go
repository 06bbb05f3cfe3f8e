package taskplot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style controls figure geometry and text sizing. A YAML style file only
// needs the fields it overrides; the rest keep their defaults.
type Style struct {
	WidthInches  float64 `yaml:"width"`        // figure width in inches
	HeightInches float64 `yaml:"height"`       // figure height in inches
	LabelSize    float64 `yaml:"label_size"`   // axis label font size in points
	TickSize     float64 `yaml:"tick_size"`    // tick label font size in points
	LegendSize   float64 `yaml:"legend_size"`  // legend font size in points
	MarkerWidth  float64 `yaml:"marker_width"` // step marker line width in points
	BarFill      float64 `yaml:"bar_fill"`     // fraction of a lane's height a bar fills, in (0, 1]
}

// DefaultStyle mirrors the figure parameters the diagrams have always used:
// a wide 16x4 inch canvas with small tick labels.
func DefaultStyle() Style {
	return Style{
		WidthInches:  16,
		HeightInches: 4,
		LabelSize:    10,
		TickSize:     10,
		LegendSize:   12,
		MarkerWidth:  1,
		BarFill:      0.90,
	}
}

// LoadStyle reads a YAML style file and overlays it on DefaultStyle. An
// empty path returns the defaults unchanged.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return style, fmt.Errorf("reading style config: %w", err)
	}
	if err := yaml.Unmarshal(data, &style); err != nil {
		return style, fmt.Errorf("parsing style config: %w", err)
	}
	return style, nil
}

// Validate rejects geometry the renderer cannot work with.
func (s Style) Validate() error {
	if s.WidthInches <= 0 || s.HeightInches <= 0 {
		return fmt.Errorf("figure dimensions must be positive, got %gx%g", s.WidthInches, s.HeightInches)
	}
	if s.BarFill <= 0 || s.BarFill > 1 {
		return fmt.Errorf("bar_fill must be in (0, 1], got %g", s.BarFill)
	}
	return nil
}
