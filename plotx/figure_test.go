package plotx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/goerz/mgplottools/plotx"
)

func TestNewCm(t *testing.T) {
	t.Parallel()
	fig := plotx.NewCm(10, 6)
	assert.Equal(t, vg.Length(10)*vg.Centimeter, fig.Width)
	assert.Equal(t, vg.Length(6)*vg.Centimeter, fig.Height)
	require.NotNil(t, fig.Plot)
}

func testFigure(t *testing.T) *plotx.Figure {
	t.Helper()
	fig := plotx.NewCm(8, 5)
	fig.Title.Text = "test"
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	fig.Add(line)
	return fig
}

func TestSaveByExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fig := testFigure(t)

	for _, name := range []string{"fig.png", "fig.pdf", "fig.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, fig.Save(path), name)
		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	t.Parallel()
	fig := testFigure(t)
	err := fig.Save(filepath.Join(t.TempDir(), "fig.bogus"))
	assert.Error(t, err)
}

func TestSavePDF(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.dat")
	require.NoError(t, testFigure(t).SavePDF(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF", "PDF magic regardless of extension")
}

func TestSaveEPS(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.eps")
	require.NoError(t, testFigure(t).SaveEPS(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveSVG(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, testFigure(t).SaveSVG(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestSavePNGWithDPI(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	lo := filepath.Join(dir, "lo.png")
	hi := filepath.Join(dir, "hi.png")
	fig := testFigure(t)

	require.NoError(t, fig.SavePNG(lo, 72))
	require.NoError(t, fig.SavePNG(hi, 300))

	loInfo, err := os.Stat(lo)
	require.NoError(t, err)
	hiInfo, err := os.Stat(hi)
	require.NoError(t, err)
	assert.Greater(t, hiInfo.Size(), loInfo.Size(), "more pixels at higher dpi")
}
