package main

import (
	"image"
	"testing"
)

func TestNumericPreviewBars(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	bars := numericPreviewBars(values, 5)
	if len(bars) != 5 {
		t.Fatalf("bins = %d, want 5", len(bars))
	}
	total := 0.0
	for _, b := range bars {
		total += b.Value
	}
	if total != float64(len(values)) {
		t.Errorf("bars lose values: sum = %v, want %d", total, len(values))
	}
	// max lands in the last bin, not past it
	if bars[4].Value != 2 {
		t.Errorf("last bin count = %v, want 2", bars[4].Value)
	}
}

func TestNumericPreviewBarsConstantColumn(t *testing.T) {
	bars := numericPreviewBars([]float64{3.5, 3.5, 3.5}, 10)
	if len(bars) != 1 {
		t.Fatalf("constant column bins = %d, want 1", len(bars))
	}
	if bars[0].Value != 3 {
		t.Errorf("constant column count = %v, want 3", bars[0].Value)
	}
	if bars[0].Label != "3.50" {
		t.Errorf("constant column label = %q, want %q", bars[0].Label, "3.50")
	}
}

func TestNumericPreviewBarsEmpty(t *testing.T) {
	if bars := numericPreviewBars(nil, 10); bars != nil {
		t.Errorf("empty input yields bars: %v", bars)
	}
}

func TestCategoryPreviewBars(t *testing.T) {
	records := []string{"a", "b", "a", "c", "a", "b"}
	bars := categoryPreviewBars(records, 2)
	if len(bars) != 2 {
		t.Fatalf("bars = %d, want 2", len(bars))
	}
	if bars[0].Label != "a" || bars[0].Value != 3 {
		t.Errorf("top bar = %q/%v, want a/3", bars[0].Label, bars[0].Value)
	}
	if bars[1].Label != "b" || bars[1].Value != 2 {
		t.Errorf("second bar = %q/%v, want b/2", bars[1].Label, bars[1].Value)
	}
}

func TestFormatEdge(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "0.50"},
		{9.99, "9.99"},
		{42.5, "42.5"},
		{-42.5, "-42.5"},
		{12345.6, "12346"},
	}
	for _, c := range cases {
		if got := formatEdge(c.in); got != c.want {
			t.Errorf("formatEdge(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDrawHintKeepsBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	out := drawHint(src, "press H to hide hints")
	if out.Bounds() != src.Bounds() {
		t.Errorf("bounds changed: %v", out.Bounds())
	}
	if out == image.Image(src) {
		t.Error("hint overlay should draw onto a copy")
	}
}

func TestDrawHintEmptyText(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if out := drawHint(src, "   "); out != image.Image(src) {
		t.Error("blank hint should return the image unchanged")
	}
}
