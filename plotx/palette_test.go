package plotx_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goerz/mgplottools/plotx"
)

func TestColor(t *testing.T) {
	t.Parallel()
	c, err := plotx.Color("blue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 55, G: 126, B: 184, A: 255}, c)
}

func TestColorCaseInsensitive(t *testing.T) {
	t.Parallel()
	c, err := plotx.Color("Blue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 55, G: 126, B: 184, A: 255}, c)
}

func TestColorUnknown(t *testing.T) {
	t.Parallel()
	_, err := plotx.Color("chartreuse")
	assert.ErrorIs(t, err, plotx.ErrUnknownName)
}

func TestWeb(t *testing.T) {
	t.Parallel()
	hex, err := plotx.Web("blue")
	require.NoError(t, err)
	assert.Equal(t, "#377eb8", hex)

	hex, err = plotx.Web("grey")
	require.NoError(t, err)
	assert.Equal(t, "#999999", hex)
}

func TestRGBA(t *testing.T) {
	t.Parallel()
	c, err := plotx.RGBA("red", 128)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 228, G: 26, B: 28, A: 128}, c)
}

func TestColorsDefaultCycle(t *testing.T) {
	t.Parallel()
	cs, err := plotx.Colors()
	require.NoError(t, err)
	require.Len(t, cs, 13)
	assert.Equal(t, color.RGBA{R: 55, G: 126, B: 184, A: 255}, cs[0])
}

func TestColorsUnknownName(t *testing.T) {
	t.Parallel()
	_, err := plotx.Colors("blue", "nope")
	assert.ErrorIs(t, err, plotx.ErrUnknownName)
}

func TestDashes(t *testing.T) {
	t.Parallel()
	d, err := plotx.Dashes("dashed")
	require.NoError(t, err)
	assert.Len(t, d, 2)

	solid, err := plotx.Dashes("solid")
	require.NoError(t, err)
	assert.Nil(t, solid, "solid is the empty dash pattern")
}

func TestDashesUnknown(t *testing.T) {
	t.Parallel()
	_, err := plotx.Dashes("wavy")
	assert.ErrorIs(t, err, plotx.ErrUnknownName)
}

func TestDefaultCyclesResolve(t *testing.T) {
	t.Parallel()
	for _, name := range plotx.DefaultColorCycle {
		_, err := plotx.Color(name)
		assert.NoError(t, err, "color %q", name)
	}
	for _, name := range plotx.DefaultDashCycle {
		_, err := plotx.Dashes(name)
		assert.NoError(t, err, "dash pattern %q", name)
	}
}
