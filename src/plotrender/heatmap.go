package plotrender

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"datastudio/src/analysis"
	"datastudio/src/dataset"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Rows are flipped
// so the first column reads top-to-bottom like the text matrix. NaN cells
// (insufficient observations) are drawn as zero and labelled "NaN".
type corrGrid struct {
	m *analysis.Matrix
}

func (g corrGrid) Dims() (int, int) { return g.m.Dim(), g.m.Dim() }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }

func (g corrGrid) Z(c, r int) float64 {
	v := g.m.At(g.m.Dim()-1-r, c)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Heatmap builds the annotated correlation heatmap over the numeric columns.
func (r *Renderer) Heatmap(ds *dataset.Dataset) (*Figure, error) {
	m, err := analysis.Correlation(ds)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Correlation Matrix Heatmap"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{m: m}, cm.Palette(255))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	n := m.Dim()
	xticks := make([]plot.Tick, n)
	yticks := make([]plot.Tick, n)
	for i, name := range m.Columns {
		xticks[i] = plot.Tick{Value: float64(i), Label: name}
		yticks[n-1-i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)

	// annotate every cell with its coefficient
	xys := make([]plotter.XY, 0, n*n)
	labels := make([]string, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := m.At(n-1-row, col)
			text := "NaN"
			if !math.IsNaN(v) {
				text = fmt.Sprintf("%.2f", v)
			}
			xys = append(xys, plotter.XY{X: float64(col), Y: float64(row)})
			labels = append(labels, text)
		}
	}
	if l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels}); err == nil {
		p.Add(l)
	}
	return &Figure{plot: p, settings: r.settings}, nil
}
