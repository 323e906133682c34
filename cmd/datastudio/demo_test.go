package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRunDemoMode(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	if err := RunDemoMode(dir, zerolog.Nop()); err != nil {
		t.Fatalf("demo mode: %v", err)
	}

	charts := []string{
		"histogram_age.png",
		"bars_department.png",
		"correlation_heatmap.png",
		"scatter_age_income.png",
	}
	for _, name := range charts {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.HasPrefix(b, []byte("\x89PNG")) {
			t.Errorf("%s is not a PNG", name)
		}
	}

	summary, err := os.ReadFile(filepath.Join(dir, "summary.txt"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(summary), "Age") {
		t.Error("summary report missing Age column")
	}
	corr, err := os.ReadFile(filepath.Join(dir, "correlation.txt"))
	if err != nil {
		t.Fatalf("read correlation: %v", err)
	}
	if !strings.Contains(string(corr), "CORRELATION") {
		t.Error("correlation report missing heading")
	}
}
