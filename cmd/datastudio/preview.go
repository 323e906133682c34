package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"datastudio/src/analysis"
	"datastudio/src/dataset"
)

const (
	previewBins       = 10
	previewCategories = 8
	previewWidth      = 360
	previewHeight     = 240
)

// updatePreview renders the compact quick-look chart shown under the column
// analysis report. Preview failures are silent; the text report is the
// primary output.
func updatePreview(state *uiState, col string) {
	img := renderPreview(state.ds, col)
	if img == nil {
		return
	}
	state.previewCanvas.Image = img
	state.previewCanvas.Refresh()
}

func renderPreview(ds *dataset.Dataset, col string) image.Image {
	kind, err := ds.Kind(col)
	if err != nil {
		return nil
	}
	var bars []chart.Value
	if kind == dataset.KindNumeric {
		values, err := ds.Numeric(col)
		if err != nil || len(values) == 0 {
			return nil
		}
		bars = numericPreviewBars(values, previewBins)
	} else {
		records, err := ds.Records(col)
		if err != nil || len(records) == 0 {
			return nil
		}
		bars = categoryPreviewBars(records, previewCategories)
	}
	if len(bars) == 0 {
		return nil
	}
	bc := chart.BarChart{
		Title:    "Quick Look: " + col,
		Width:    previewWidth,
		Height:   previewHeight,
		BarWidth: 24,
		Bars:     bars,
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil
	}
	return img
}

// numericPreviewBars partitions values into equal-width bins and returns one
// bar per bin labelled with the bin's lower edge.
func numericPreviewBars(values []float64, bins int) []chart.Value {
	if len(values) == 0 || bins < 1 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return []chart.Value{{Value: float64(len(values)), Label: formatEdge(min)}}
	}
	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		i := int((v - min) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	out := make([]chart.Value, bins)
	for i, c := range counts {
		out[i] = chart.Value{Value: float64(c), Label: formatEdge(min + float64(i)*width)}
	}
	return out
}

// categoryPreviewBars returns the top categories by frequency as bars.
func categoryPreviewBars(records []string, top int) []chart.Value {
	s := analysis.SummarizeCategorical(records, top)
	out := make([]chart.Value, len(s.Frequencies))
	for i, f := range s.Frequencies {
		out[i] = chart.Value{Value: float64(f.Count), Label: f.Value}
	}
	return out
}

func formatEdge(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// drawHint draws a small hint string onto the provided image near the
// bottom-left. Display only; exports never carry the overlay.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
