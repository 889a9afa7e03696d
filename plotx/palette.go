package plotx

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownName is returned for color or dash-pattern names that are
// not in the palette.
var ErrUnknownName = errors.New("unknown style name")

// palette holds the standard colors, picked for distinguishability in
// print and on screen.
var palette = map[string]color.RGBA{
	"white":       {R: 255, G: 255, B: 255, A: 255}, // #ffffff
	"black":       {R: 0, G: 0, B: 0, A: 255},       // #000000
	"blue":        {R: 55, G: 126, B: 184, A: 255},  // #377eb8
	"orange":      {R: 255, G: 127, B: 0, A: 255},   // #ff7f00
	"red":         {R: 228, G: 26, B: 28, A: 255},   // #e41a1c
	"green":       {R: 77, G: 175, B: 74, A: 255},   // #4daf4a
	"purple":      {R: 152, G: 78, B: 163, A: 255},  // #984ea3
	"brown":       {R: 166, G: 86, B: 40, A: 255},   // #a65628
	"pink":        {R: 247, G: 129, B: 191, A: 255}, // #f781bf
	"yellow":      {R: 210, G: 210, B: 21, A: 255},  // #d2d215
	"lightred":    {R: 251, G: 154, B: 153, A: 255}, // #fb9a99
	"lightblue":   {R: 166, G: 206, B: 227, A: 255}, // #a6cee3
	"lightorange": {R: 253, G: 191, B: 111, A: 255}, // #fdbf6f
	"lightgreen":  {R: 178, G: 223, B: 138, A: 255}, // #b2df8a
	"lightpurple": {R: 202, G: 178, B: 214, A: 255}, // #cab2d6
	"grey":        {R: 153, G: 153, B: 153, A: 255}, // #999999
}

// DefaultColorCycle is the palette order used when no explicit color
// cycle is given.
var DefaultColorCycle = []string{
	"blue", "orange", "red", "green", "purple", "brown", "pink",
	"yellow", "lightred", "lightblue", "lightorange", "lightgreen",
	"lightpurple",
}

// Color returns the named palette color, fully opaque. Names are
// case-insensitive.
func Color(name string) (color.RGBA, error) {
	c, ok := palette[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrUnknownName, name)
	}
	return c, nil
}

// RGBA returns the named palette color with the given alpha.
func RGBA(name string, alpha uint8) (color.NRGBA, error) {
	c, err := Color(name)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Web returns the named palette color as an "#rrggbb" hex string.
func Web(name string) (string, error) {
	c, err := Color(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// Colors resolves a list of palette names. With no names it resolves
// DefaultColorCycle.
func Colors(names ...string) ([]color.Color, error) {
	if len(names) == 0 {
		names = DefaultColorCycle
	}
	out := make([]color.Color, len(names))
	for i, n := range names {
		c, err := Color(n)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
