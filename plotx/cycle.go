package plotx

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Cycle iterates over a fixed list, restarting from the first element
// after the last. Cycles share no state; construct a fresh one for each
// panel that should start from the beginning.
type Cycle[T any] struct {
	items []T
	next  int
}

// NewCycle returns a Cycle over items. Next panics on an empty cycle.
func NewCycle[T any](items []T) *Cycle[T] {
	return &Cycle[T]{items: items}
}

// Next returns the next element, wrapping around at the end of the list.
func (c *Cycle[T]) Next() T {
	v := c.items[c.next]
	c.next = (c.next + 1) % len(c.items)
	return v
}

// Reset restarts the cycle at the first element.
func (c *Cycle[T]) Reset() { c.next = 0 }

// Len returns the number of distinct elements in the cycle.
func (c *Cycle[T]) Len() int { return len(c.items) }

// NewColorCycle returns a Cycle over the given palette color names, or
// over DefaultColorCycle when none are given.
func NewColorCycle(names ...string) (*Cycle[color.Color], error) {
	cs, err := Colors(names...)
	if err != nil {
		return nil, err
	}
	return NewCycle(cs), nil
}

// MustColorCycle is NewColorCycle, panicking on an unknown name.
func MustColorCycle(names ...string) *Cycle[color.Color] {
	c, err := NewColorCycle(names...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewDashCycle returns a Cycle over the given dash-pattern names, or
// over DefaultDashCycle when none are given.
func NewDashCycle(names ...string) (*Cycle[[]vg.Length], error) {
	if len(names) == 0 {
		names = DefaultDashCycle
	}
	ds := make([][]vg.Length, len(names))
	for i, n := range names {
		d, err := Dashes(n)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return NewCycle(ds), nil
}

// MustDashCycle is NewDashCycle, panicking on an unknown name.
func MustDashCycle(names ...string) *Cycle[[]vg.Length] {
	c, err := NewDashCycle(names...)
	if err != nil {
		panic(err)
	}
	return c
}
