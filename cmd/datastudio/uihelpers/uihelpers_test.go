package uihelpers

import (
	"strings"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		raw, wantW, wantH int
	}{
		{100, 640, 400},
		{640, 640, 400},
		{1000, 1000, 600},
		{1600, 1600, 960},
		{5000, 1600, 960},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.raw)
		if w != c.wantW || h != c.wantH {
			t.Errorf("ComputeChartDimensions(%d) = (%d, %d), want (%d, %d)", c.raw, w, h, c.wantW, c.wantH)
		}
	}
}

func TestPreviewColumnWidth(t *testing.T) {
	if got := PreviewColumnWidth("Id"); got != 90 {
		t.Errorf("short name width = %d, want 90", got)
	}
	if got := PreviewColumnWidth("Education_Years"); got != 30+9*len("Education_Years") {
		t.Errorf("mid name width = %d", got)
	}
	if got := PreviewColumnWidth("An_Extremely_Long_Column_Header_Name"); got != 220 {
		t.Errorf("long name width = %d, want 220", got)
	}
}

func TestFormatShape(t *testing.T) {
	cases := []struct {
		rows, cols int
		want       string
	}{
		{0, 0, "0 rows x 0 columns"},
		{8, 3, "8 rows x 3 columns"},
		{1000, 8, "1,000 rows x 8 columns"},
		{1234567, 12, "1,234,567 rows x 12 columns"},
	}
	for _, c := range cases {
		if got := FormatShape(c.rows, c.cols); got != c.want {
			t.Errorf("FormatShape(%d, %d) = %q, want %q", c.rows, c.cols, got, c.want)
		}
	}
}

func TestTruncatePath(t *testing.T) {
	if got := TruncatePath("/tmp/a.csv", 40); got != "/tmp/a.csv" {
		t.Errorf("short path changed: %q", got)
	}
	long := "/home/user/projects/research/datasets/quarterly_listings.csv"
	got := TruncatePath(long, 30)
	if len(got) > 34 {
		t.Errorf("truncated path too long: %q", got)
	}
	if got == long {
		t.Errorf("path not truncated: %q", got)
	}
	// base name must survive
	if want := "quarterly_listings.csv"; !strings.HasSuffix(got, want) {
		t.Errorf("base name lost: %q", got)
	}
}
