// Package plotrender builds the application's figures with gonum/plot and
// renders them either to an in-memory image for the GUI canvas or to
// PNG/PDF/SVG for export.
package plotrender

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"datastudio/src/dataset"
)

// Kind selects the figure type.
type Kind int

const (
	KindHistogram Kind = iota
	KindHeatmap
	KindScatter
)

// Request describes one plot: the kind and the column parameters it needs.
// Histogram uses X only; Scatter uses X and Y; Heatmap uses neither.
type Request struct {
	Kind Kind
	X    string
	Y    string
}

// Settings are the fixed startup plot defaults. They are never loaded from or
// saved to a file.
type Settings struct {
	WidthIn       float64
	HeightIn      float64
	DisplayDPI    int
	ExportDPI     int
	HistogramBins int
	TopCategories int
}

// DefaultSettings mirrors the application defaults: 10x6 inch figure,
// 100 DPI display, 300 DPI export, 30 histogram bins, top-15 category bars.
func DefaultSettings() Settings {
	return Settings{
		WidthIn:       10,
		HeightIn:      6,
		DisplayDPI:    100,
		ExportDPI:     300,
		HistogramBins: 30,
		TopCategories: 15,
	}
}

var (
	accentColor = color.RGBA{R: 88, G: 166, B: 255, A: 255}
	barEdge     = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// Renderer builds figures from the resident dataset.
type Renderer struct {
	settings Settings
}

// New returns a Renderer with the given settings.
func New(settings Settings) *Renderer {
	return &Renderer{settings: settings}
}

// Settings returns the renderer's fixed settings.
func (r *Renderer) Settings() Settings { return r.settings }

// Render dispatches a plot request against the dataset. Each call builds a
// complete new figure; nothing is retained between calls.
func (r *Renderer) Render(ds *dataset.Dataset, req Request) (*Figure, error) {
	switch req.Kind {
	case KindHistogram:
		return r.Histogram(ds, req.X)
	case KindHeatmap:
		return r.Heatmap(ds)
	case KindScatter:
		return r.Scatter(ds, req.X, req.Y)
	default:
		return nil, fmt.Errorf("unknown plot kind %d", req.Kind)
	}
}

// Welcome builds the placeholder figure shown before any dataset is loaded.
func (r *Renderer) Welcome() *Figure {
	p := plot.New()
	p.Title.Text = "Data Analysis Studio"
	p.HideAxes()
	if l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.35, Y: 0.5}},
		Labels: []string{"Load a dataset to begin"},
	}); err == nil {
		p.Add(l)
	}
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return &Figure{plot: p, settings: r.settings}
}

// Figure is a fully built plot, ready to rasterize for the canvas or write
// to an export format. It is ephemeral: replaced wholesale on every render.
type Figure struct {
	plot     *plot.Plot
	settings Settings
}

// Image rasterizes the figure at display resolution for the GUI canvas.
func (f *Figure) Image() image.Image {
	w := vg.Length(f.settings.WidthIn) * vg.Inch
	h := vg.Length(f.settings.HeightIn) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(f.settings.DisplayDPI))
	f.plot.Draw(draw.New(c))
	return c.Image()
}
