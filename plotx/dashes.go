package plotx

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"
)

// dashes holds the named dash patterns, in points, in the form
// draw.LineStyle.Dashes expects. A nil pattern is a solid line.
var dashes = map[string][]vg.Length{
	"solid":            nil,
	"dashed":           {4, 1.5},
	"long-dashed":      {8, 1},
	"double-dashed":    {3, 1, 3, 2.5},
	"dash-dotted":      {5, 1, 1, 1},
	"dot-dot-dashed":   {1, 1, 1, 1, 7, 1},
	"dash-dash-dotted": {4, 1, 4, 1, 1, 1},
	"dotted":           {1, 1},
	"double-dotted":    {1, 1, 1, 3},
}

// DefaultDashCycle is the pattern order used when no explicit dash
// cycle is given.
var DefaultDashCycle = []string{
	"solid", "dashed", "long-dashed", "dash-dotted", "dash-dash-dotted",
	"dot-dot-dashed", "double-dashed", "dotted", "double-dotted",
}

// Dashes returns the named dash pattern. Names are case-insensitive.
func Dashes(name string) ([]vg.Length, error) {
	d, ok := dashes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: dash pattern %q", ErrUnknownName, name)
	}
	return d, nil
}
