package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"datastudio/src/analysis"
	"datastudio/src/dataset"
	"datastudio/src/plotrender"
)

// RunDemoMode loads the sample dataset and writes a representative set of
// charts and reports into outDir. It runs headlessly without creating a UI
// window, which makes it useful for docs and smoke checks.
func RunDemoMode(outDir string, log zerolog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	ds, err := dataset.Sample(dataset.DefaultSampleOptions())
	if err != nil {
		return err
	}
	r := plotrender.New(plotrender.DefaultSettings())

	toRender := []struct {
		name string
		req  plotrender.Request
	}{
		{"histogram_age.png", plotrender.Request{Kind: plotrender.KindHistogram, X: "Age"}},
		{"bars_department.png", plotrender.Request{Kind: plotrender.KindHistogram, X: "Department"}},
		{"correlation_heatmap.png", plotrender.Request{Kind: plotrender.KindHeatmap}},
		{"scatter_age_income.png", plotrender.Request{Kind: plotrender.KindScatter, X: "Age", Y: "Income"}},
	}
	for _, item := range toRender {
		fig, err := r.Render(ds, item.req)
		if err != nil {
			return fmt.Errorf("render %s: %w", item.name, err)
		}
		path := filepath.Join(outDir, item.name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fig.WriteTo(f, "png"); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("demo chart written")
	}

	now := time.Now()
	summary, err := analysis.SummaryReport(ds, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "summary.txt"), []byte(summary), 0o644); err != nil {
		return err
	}
	m, err := analysis.Correlation(ds)
	if err != nil {
		return err
	}
	report := analysis.CorrelationReport(m, now)
	if err := os.WriteFile(filepath.Join(outDir, "correlation.txt"), []byte(report), 0o644); err != nil {
		return err
	}
	log.Info().Str("dir", outDir).Msg("demo mode complete")
	return nil
}
