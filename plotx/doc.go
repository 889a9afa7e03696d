// Package plotx provides thin conveniences over gonum.org/v1/plot for
// producing publication figures: a fixed color palette and dash-pattern
// set with restartable cycles, figure construction with canvas sizes in
// centimeters, fixed-step axis formatting, format-specific export, and
// reusable YAML style sheets.
//
// A typical figure:
//
//	fig := plotx.NewCm(10, 6)
//	colors := plotx.MustColorCycle()
//	dashes := plotx.MustDashCycle()
//	line, _ := plotter.NewLine(pts)
//	line.Color = colors.Next()
//	line.Dashes = dashes.Next()
//	fig.Add(line)
//	plotx.SetAxis(&fig.X, 0, 10, 2,
//		plotx.WithLabel("time (ns)"), plotx.WithMinorTicks(2))
//	fig.Save("figure.pdf")
//
// Cycles restart per call site: construct a fresh cycle for each panel
// instead of sharing one across the program.
package plotx
