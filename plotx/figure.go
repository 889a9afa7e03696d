package plotx

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Figure is a plot with a fixed canvas size. The embedded plot is used
// directly for adding plotters, titles, and legends; the size is applied
// when the figure is saved.
type Figure struct {
	*plot.Plot
	Width, Height vg.Length
}

// New returns an empty figure with the given canvas size.
func New(width, height vg.Length) *Figure {
	return &Figure{Plot: plot.New(), Width: width, Height: height}
}

// NewCm returns an empty figure sized in centimeters, the usual unit
// for print-targeted figures.
func NewCm(width, height float64) *Figure {
	return New(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter)
}
