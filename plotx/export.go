package plotx

import (
	"os"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Save writes the figure to path at its canvas size, with the image
// format chosen from the file extension (.eps, .jpg, .pdf, .png, .svg,
// .tex, .tif).
func (f *Figure) Save(path string) error {
	return f.Plot.Save(f.Width, f.Height, path)
}

// SavePDF writes the figure as a PDF, regardless of the path's
// extension.
func (f *Figure) SavePDF(path string) error { return f.writeTo(path, "pdf") }

// SaveEPS writes the figure as encapsulated PostScript.
func (f *Figure) SaveEPS(path string) error { return f.writeTo(path, "eps") }

// SaveSVG writes the figure as SVG.
func (f *Figure) SaveSVG(path string) error { return f.writeTo(path, "svg") }

func (f *Figure) writeTo(path, format string) error {
	wt, err := f.Plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SavePNG writes the figure as a PNG rasterized at the given
// resolution.
func (f *Figure) SavePNG(path string, dpi int) error {
	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
	)
	f.Plot.Draw(draw.New(c))
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
