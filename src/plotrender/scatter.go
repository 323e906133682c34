package plotrender

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"datastudio/src/analysis"
	"datastudio/src/dataset"
)

// Scatter builds the two-column scatter figure with the pairwise Pearson
// coefficient overlaid. Rows missing either value are dropped.
func (r *Renderer) Scatter(ds *dataset.Dataset, xCol, yCol string) (*Figure, error) {
	xs, err := ds.NumericFull(xCol)
	if err != nil {
		return nil, err
	}
	ys, err := ds.NumericFull(yCol)
	if err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, 0, len(xs))
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymax := math.Inf(-1)
	for i := range xs {
		if i >= len(ys) || math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		if xs[i] < xmin {
			xmin = xs[i]
		}
		if xs[i] > xmax {
			xmax = xs[i]
		}
		if ys[i] > ymax {
			ymax = ys[i]
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("no complete rows for %q vs %q", xCol, yCol)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Scatter Plot: %s vs %s", xCol, yCol)
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("build scatter: %w", err)
	}
	sc.GlyphStyle.Color = accentColor
	sc.GlyphStyle.Radius = vg.Points(2.5)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)

	corr, _, err := analysis.PairwiseCorrelation(ds, xCol, yCol)
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf("Correlation: %.3f", corr)
	if math.IsNaN(corr) {
		text = "Correlation: N/A"
	}
	if l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: xmin + (xmax-xmin)*0.03, Y: ymax}},
		Labels: []string{text},
	}); err == nil {
		p.Add(l)
	}
	return &Figure{plot: p, settings: r.settings}, nil
}
