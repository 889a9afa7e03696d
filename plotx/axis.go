package plotx

import (
	"fmt"

	"gonum.org/v1/plot"
)

// AxisOption adjusts axis formatting beyond the fixed tick grid.
type AxisOption func(*axisOptions)

type axisOptions struct {
	min, max   float64
	hasRange   bool
	minor      int
	format     string
	label      string
	ticklabels []string
	suppress   bool
}

// WithRange overrides the axis limits, which otherwise span start to
// stop.
func WithRange(min, max float64) AxisOption {
	return func(o *axisOptions) { o.min, o.max, o.hasRange = min, max, true }
}

// WithMinorTicks subdivides each major interval into n parts, placing
// n-1 unlabeled ticks between majors. n=2 puts a single minor tick
// midway between majors.
func WithMinorTicks(n int) AxisOption {
	return func(o *axisOptions) { o.minor = n }
}

// WithTickFormat sets the printf format for major tick labels, e.g.
// "%.1f". Defaults to "%g".
func WithTickFormat(format string) AxisOption {
	return func(o *axisOptions) { o.format = format }
}

// WithLabel sets the axis label.
func WithLabel(label string) AxisOption {
	return func(o *axisOptions) { o.label = label }
}

// WithTickLabels replaces the generated major tick labels. Majors
// beyond the list are left unlabeled.
func WithTickLabels(labels ...string) AxisOption {
	return func(o *axisOptions) { o.ticklabels = labels }
}

// WithoutTickLabels keeps the major tick marks but suppresses their
// labels.
func WithoutTickLabels() AxisOption {
	return func(o *axisOptions) { o.suppress = true }
}

// SetAxis puts major ticks on ax at start, start+step, ..., stop and
// sets the axis limits to [start, stop] unless WithRange overrides
// them. Pass the axis by address, e.g. SetAxis(&fig.X, 0, 10, 2).
func SetAxis(ax *plot.Axis, start, stop, step float64, opts ...AxisOption) {
	var o axisOptions
	for _, fn := range opts {
		fn(&o)
	}
	ax.Tick.Marker = fixedTicks{start: start, stop: stop, step: step, o: o}
	if o.hasRange {
		ax.Min, ax.Max = o.min, o.max
	} else {
		ax.Min, ax.Max = start, stop
	}
	if o.label != "" {
		ax.Label.Text = o.label
	}
}

// fixedTicks places ticks on a fixed grid, independent of the axis
// range the renderer passes in.
type fixedTicks struct {
	start, stop, step float64
	o                 axisOptions
}

var _ plot.Ticker = fixedTicks{}

// Ticks returns majors at start..stop in increments of step, with the
// configured minor subdivisions between them.
func (t fixedTicks) Ticks(_, _ float64) []plot.Tick {
	if t.step <= 0 {
		return nil
	}
	// Half a step of slack keeps stop inclusive under float rounding.
	limit := t.stop + t.step/2
	var ticks []plot.Tick
	for i := 0; ; i++ {
		v := t.start + float64(i)*t.step
		if v > limit {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: t.majorLabel(i, v)})
		// Minors go between majors only, never past the last one.
		if t.o.minor > 1 && v+t.step <= limit {
			sub := t.step / float64(t.o.minor)
			for j := 1; j < t.o.minor; j++ {
				ticks = append(ticks, plot.Tick{Value: v + float64(j)*sub})
			}
		}
	}
	return ticks
}

func (t fixedTicks) majorLabel(i int, v float64) string {
	// gonum draws a tick with an empty label as a minor tick, so
	// suppressed labels become a single space to keep the major mark.
	if t.o.suppress {
		return " "
	}
	if t.o.ticklabels != nil {
		if i < len(t.o.ticklabels) {
			return t.o.ticklabels[i]
		}
		return " "
	}
	format := t.o.format
	if format == "" {
		format = "%g"
	}
	return fmt.Sprintf(format, v)
}
