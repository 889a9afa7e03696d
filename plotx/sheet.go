package plotx

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gopkg.in/yaml.v3"
)

// Sheet is a reusable figure style loaded from a YAML file:
//
//	width: 10        # canvas width, cm
//	height: 6        # canvas height, cm
//	font_size: 9     # pt
//	line_width: 1.2  # pt
//	color_cycle: [blue, orange, green]
//	dash_cycle: [solid, dashed]
//
// Zero-value fields leave the corresponding figure settings untouched.
type Sheet struct {
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	FontSize   float64  `yaml:"font_size"`
	LineWidth  float64  `yaml:"line_width"`
	ColorCycle []string `yaml:"color_cycle"`
	DashCycle  []string `yaml:"dash_cycle"`
}

// LoadSheet reads a YAML style sheet from path.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSheet decodes a YAML style sheet. Color and dash names are
// resolved against the palette up front, so a bad sheet fails here
// rather than mid-plot.
func ParseSheet(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for _, n := range s.ColorCycle {
		if _, err := Color(n); err != nil {
			return nil, err
		}
	}
	for _, n := range s.DashCycle {
		if _, err := Dashes(n); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

// Apply sets the sheet's canvas size and font defaults on fig.
func (s *Sheet) Apply(fig *Figure) {
	if s.Width > 0 {
		fig.Width = vg.Length(s.Width) * vg.Centimeter
	}
	if s.Height > 0 {
		fig.Height = vg.Length(s.Height) * vg.Centimeter
	}
	if s.FontSize > 0 {
		size := vg.Length(s.FontSize)
		fig.Title.TextStyle.Font.Size = size
		fig.X.Label.TextStyle.Font.Size = size
		fig.Y.Label.TextStyle.Font.Size = size
		fig.X.Tick.Label.Font.Size = size
		fig.Y.Tick.Label.Font.Size = size
		fig.Legend.TextStyle.Font.Size = size
	}
}

// Cycles returns fresh color and dash cycles as configured by the
// sheet, falling back to the default cycles where the sheet is silent.
func (s *Sheet) Cycles() (*Cycle[color.Color], *Cycle[[]vg.Length], error) {
	cc, err := NewColorCycle(s.ColorCycle...)
	if err != nil {
		return nil, nil, err
	}
	dc, err := NewDashCycle(s.DashCycle...)
	if err != nil {
		return nil, nil, err
	}
	return cc, dc, nil
}

// LineStyle returns a line style carrying the sheet's line width
// (default 1pt) with the given color and dash pattern, typically fed
// from the sheet's cycles.
func (s *Sheet) LineStyle(c color.Color, dashes []vg.Length) draw.LineStyle {
	w := vg.Length(s.LineWidth)
	if w == 0 {
		w = 1
	}
	return draw.LineStyle{Color: c, Width: w, Dashes: dashes}
}
