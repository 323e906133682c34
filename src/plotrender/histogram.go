package plotrender

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"datastudio/src/analysis"
	"datastudio/src/dataset"
)

// Histogram builds the distribution figure for one column: a fixed-bin
// frequency histogram for numeric columns, or a top-category bar chart for
// categorical columns.
func (r *Renderer) Histogram(ds *dataset.Dataset, column string) (*Figure, error) {
	kind, err := ds.Kind(column)
	if err != nil {
		return nil, err
	}
	if kind == dataset.KindNumeric {
		return r.numericHistogram(ds, column)
	}
	return r.categoryBars(ds, column)
}

func (r *Renderer) numericHistogram(ds *dataset.Dataset, column string) (*Figure, error) {
	values, err := ds.Numeric(column)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("column %q has no non-missing values", column)
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Histogram of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"

	h, err := newHistogram(values, r.settings.HistogramBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = accentColor
	h.LineStyle.Color = barEdge
	p.Add(h)

	// stats box in the upper right, in data coordinates
	s := analysis.SummarizeNumeric(values)
	xmin, xmax, _, ymax := h.DataRange()
	lx := xmin + (xmax-xmin)*0.72
	if l, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: lx, Y: ymax * 0.97},
			{X: lx, Y: ymax * 0.91},
			{X: lx, Y: ymax * 0.85},
		},
		Labels: []string{
			fmt.Sprintf("Mean: %.2f", s.Mean),
			fmt.Sprintf("Std: %.2f", s.Std),
			fmt.Sprintf("Count: %d", s.Count),
		},
	}); err == nil {
		p.Add(l)
	}
	return &Figure{plot: p, settings: r.settings}, nil
}

// newHistogram bins values into the fixed equal-width bin count.
func newHistogram(values []float64, bins int) (*plotter.Histogram, error) {
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, fmt.Errorf("build histogram: %w", err)
	}
	return h, nil
}

func (r *Renderer) categoryBars(ds *dataset.Dataset, column string) (*Figure, error) {
	records, err := ds.Records(column)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("column %q has no non-missing values", column)
	}
	summary := analysis.SummarizeCategorical(records, r.settings.TopCategories)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", column)
	p.Y.Label.Text = "Count"

	counts := make(plotter.Values, len(summary.Frequencies))
	labels := make([]string, len(summary.Frequencies))
	maxCount := 0.0
	for i, f := range summary.Frequencies {
		counts[i] = float64(f.Count)
		labels[i] = f.Value
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}
	bars, err := plotter.NewBarChart(counts, vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = accentColor
	bars.LineStyle.Color = barEdge
	p.Add(bars)
	p.NominalX(labels...)

	// per-bar count labels just above each bar
	xys := make([]plotter.XY, len(counts))
	texts := make([]string, len(counts))
	for i, c := range counts {
		xys[i] = plotter.XY{X: float64(i), Y: c + maxCount*0.01}
		texts[i] = strconv.Itoa(int(c))
	}
	if l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts}); err == nil {
		p.Add(l)
	}
	p.Y.Min = 0
	p.Y.Max = maxCount * 1.08
	return &Figure{plot: p, settings: r.settings}, nil
}
