// Package uihelpers holds pure layout and formatting helpers for the viewer,
// kept free of Fyne types so they stay trivially testable.
package uihelpers

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ComputeChartDimensions applies the width/height clamp rules used for the
// plot canvas. Input: desired raw width (e.g. window width). Returns clamped
// width and height keeping a roughly 5:3 aspect ratio.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	if w > 1600 {
		w = 1600
	}
	h := int(float32(w) * 0.6)
	if h < 400 {
		h = 400
	}
	if h > 960 {
		h = 960
	}
	return w, h
}

// PreviewColumnWidth sizes a data-preview column from its header length,
// clamped so narrow names stay readable and long names do not dominate.
func PreviewColumnWidth(name string) int {
	w := 30 + 9*len(name)
	if w < 90 {
		w = 90
	}
	if w > 220 {
		w = 220
	}
	return w
}

// FormatShape renders a table shape like "1,234 rows x 8 columns".
func FormatShape(rows, cols int) string {
	return groupDigits(rows) + " rows x " + strconv.Itoa(cols) + " columns"
}

func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// TruncatePath shortens a file path to at most n characters, keeping the
// base name visible.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + string(filepath.Separator) + "..." + base
}
