package plotrender

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ExportFormats lists the supported chart export formats.
var ExportFormats = []string{"png", "pdf", "svg"}

// FormatForPath derives the export format from a file extension, defaulting
// to PNG for unrecognized extensions.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "pdf"
	case ".svg":
		return "svg"
	default:
		return "png"
	}
}

// WriteTo exports the figure. PNG is rasterized at the export DPI; PDF and
// SVG are written as vector output at the figure's nominal size.
func (f *Figure) WriteTo(w io.Writer, format string) error {
	wpt := vg.Length(f.settings.WidthIn) * vg.Inch
	hpt := vg.Length(f.settings.HeightIn) * vg.Inch
	switch strings.ToLower(format) {
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(wpt, hpt), vgimg.UseDPI(f.settings.ExportDPI))
		f.plot.Draw(draw.New(c))
		pngc := vgimg.PngCanvas{Canvas: c}
		_, err := pngc.WriteTo(w)
		return err
	case "pdf":
		c := vgpdf.New(wpt, hpt)
		f.plot.Draw(draw.New(c))
		_, err := c.WriteTo(w)
		return err
	case "svg":
		c := vgsvg.New(wpt, hpt)
		f.plot.Draw(draw.New(c))
		_, err := c.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
