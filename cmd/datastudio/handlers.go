package main

import (
	"errors"
	"fmt"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"datastudio/cmd/datastudio/uihelpers"
	"datastudio/src/analysis"
	"datastudio/src/dataset"
	"datastudio/src/plotrender"
)

var datasetFilter = storage.NewExtensionFileFilter([]string{".csv", ".xlsx", ".xls", ".json"})

// requireDataset gates every analysis handler: precondition failures surface
// a warning dialog and leave all state unchanged.
func requireDataset(state *uiState) bool {
	if state.ds != nil {
		return true
	}
	dialog.ShowInformation("Warning", "No data loaded!", state.window)
	setStatus(state, "No data loaded")
	return false
}

func requireColumn(state *uiState) (string, bool) {
	if !requireDataset(state) {
		return "", false
	}
	col := state.columnSelect.Selected
	if col == "" {
		dialog.ShowInformation("Warning", "No column selected!", state.window)
		setStatus(state, "No column selected")
		return "", false
	}
	return col, true
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()
		loadPath(state, path)
	}, state.window)
	d.SetFilter(datasetFilter)
	d.Show()
}

// loadPath loads a dataset file and, only on success, replaces the resident
// dataset. On failure the previously loaded dataset stays active.
func loadPath(state *uiState, path string) {
	setStatus(state, "Loading data…")
	ds, err := dataset.Load(path)
	if err != nil {
		state.log.Error().Err(err).Str("path", path).Msg("load failed")
		dialog.ShowError(fmt.Errorf("failed to load data: %w", err), state.window)
		setStatus(state, "Failed to load data")
		return
	}
	rows, cols := ds.Shape()
	state.log.Info().Str("path", path).Int("rows", rows).Int("cols", cols).Msg("dataset loaded")
	state.ds = ds
	state.filePath = path
	state.fileLabel.SetText(uihelpers.TruncatePath(path, 60))
	addRecentFile(state, path)
	savePrefs(state)
	buildMenus(state)
	onDatasetReplaced(state)
	setStatus(state, "Data loaded successfully")
}

func loadSampleData(state *uiState) {
	ds, err := dataset.Sample(dataset.DefaultSampleOptions())
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to create sample data: %w", err), state.window)
		return
	}
	state.ds = ds
	state.filePath = ""
	state.fileLabel.SetText("Sample Data")
	onDatasetReplaced(state)
	setStatus(state, "Sample data loaded")
}

func reloadData(state *uiState) {
	if state.filePath == "" {
		dialog.ShowInformation("Reload", "No file to reload.", state.window)
		return
	}
	loadPath(state, state.filePath)
}

// onDatasetReplaced clears all derived state: column list, data preview and
// the previous plot.
func onDatasetReplaced(state *uiState) {
	names := state.ds.ColumnNames()
	state.columnSelect.Options = names
	if len(names) > 0 {
		state.columnSelect.SetSelected(names[0])
	}
	state.columnSelect.Refresh()
	refreshDataTable(state)
	updateDataStatus(state)
	state.previewCanvas.Image = nil
	state.previewCanvas.Refresh()
	setFigure(state, state.renderer.Welcome())
	showResults(state, analysis.InfoReport(state.ds))
}

func showDataInfo(state *uiState) {
	if !requireDataset(state) {
		return
	}
	showResults(state, analysis.InfoReport(state.ds))
	setStatus(state, "Data info generated")
}

func showStatisticalSummary(state *uiState) {
	if !requireDataset(state) {
		return
	}
	report, err := analysis.SummaryReport(state.ds, time.Now())
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to generate summary: %w", err), state.window)
		return
	}
	showResults(state, report)
	setStatus(state, "Statistical summary generated")
}

func correlationAnalysis(state *uiState) {
	if !requireDataset(state) {
		return
	}
	m, err := analysis.Correlation(state.ds)
	if err != nil {
		if errors.Is(err, analysis.ErrNoNumericColumns) {
			dialog.ShowInformation("Warning", "No numeric columns for correlation analysis!", state.window)
			setStatus(state, "No numeric columns")
			return
		}
		dialog.ShowError(fmt.Errorf("correlation analysis failed: %w", err), state.window)
		return
	}
	showResults(state, analysis.CorrelationReport(m, time.Now()))
	setStatus(state, "Correlation analysis completed")
}

func missingValuesAnalysis(state *uiState) {
	if !requireDataset(state) {
		return
	}
	showResults(state, analysis.MissingValuesReport(state.ds, time.Now()))
	setStatus(state, "Missing values analyzed")
}

func analyzeColumn(state *uiState) {
	col, ok := requireColumn(state)
	if !ok {
		return
	}
	summary, err := analysis.AnalyzeColumn(state.ds, col, 10)
	if err != nil {
		dialog.ShowError(fmt.Errorf("column analysis failed: %w", err), state.window)
		return
	}
	showResults(state, analysis.ColumnReport(summary, time.Now()))
	updatePreview(state, col)
	setStatus(state, fmt.Sprintf("Analysis completed for %s", col))
}

func plotHistogram(state *uiState) {
	col, ok := requireColumn(state)
	if !ok {
		return
	}
	fig, err := state.renderer.Render(state.ds, plotrender.Request{Kind: plotrender.KindHistogram, X: col})
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to create histogram: %w", err), state.window)
		return
	}
	setFigure(state, fig)
	state.tabs.SelectIndex(tabPlot)
	setStatus(state, fmt.Sprintf("Histogram created for %s", col))
}

func plotHeatmap(state *uiState) {
	if !requireDataset(state) {
		return
	}
	fig, err := state.renderer.Render(state.ds, plotrender.Request{Kind: plotrender.KindHeatmap})
	if err != nil {
		if errors.Is(err, analysis.ErrNoNumericColumns) {
			dialog.ShowInformation("Warning", "No numeric columns for correlation heatmap!", state.window)
			setStatus(state, "No numeric columns")
			return
		}
		dialog.ShowError(fmt.Errorf("failed to create heatmap: %w", err), state.window)
		return
	}
	setFigure(state, fig)
	state.tabs.SelectIndex(tabPlot)
	setStatus(state, "Correlation heatmap created")
}

// plotScatter opens the modal two-column picker, then renders. The dialog
// blocks further action until confirmed or cancelled.
func plotScatter(state *uiState) {
	if !requireDataset(state) {
		return
	}
	numeric := state.ds.NumericColumns()
	if len(numeric) < 2 {
		dialog.ShowInformation("Warning", "Need at least 2 numeric columns for scatter plot!", state.window)
		setStatus(state, "Not enough numeric columns")
		return
	}
	xSel := widget.NewSelect(numeric, nil)
	xSel.SetSelected(numeric[0])
	ySel := widget.NewSelect(numeric, nil)
	ySel.SetSelected(numeric[1])
	items := []*widget.FormItem{
		widget.NewFormItem("X-axis", xSel),
		widget.NewFormItem("Y-axis", ySel),
	}
	dialog.ShowForm("Select Columns for Scatter Plot", "Create Plot", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		fig, err := state.renderer.Render(state.ds, plotrender.Request{
			Kind: plotrender.KindScatter, X: xSel.Selected, Y: ySel.Selected,
		})
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to create scatter plot: %w", err), state.window)
			return
		}
		setFigure(state, fig)
		state.tabs.SelectIndex(tabPlot)
		setStatus(state, fmt.Sprintf("Scatter plot created: %s vs %s", xSel.Selected, ySel.Selected))
	}, state.window)
}

func savePlot(state *uiState) {
	if state.figure == nil {
		dialog.ShowInformation("Export", "No plot to save.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		format := plotrender.FormatForPath(wc.URI().Path())
		if werr := state.figure.WriteTo(wc, format); werr != nil {
			dialog.ShowError(fmt.Errorf("failed to save plot: %w", werr), state.window)
			return
		}
		state.log.Info().Str("path", wc.URI().Path()).Str("format", format).Msg("chart exported")
		setStatus(state, "Plot saved successfully")
	}, state.window)
	fs.SetFileName("chart.png")
	fs.Show()
}

func clearPlot(state *uiState) {
	setFigure(state, state.renderer.Welcome())
	setStatus(state, "Plot cleared")
}

// comingSoon handles the announced-but-unimplemented menu entries: an
// informational dialog, no computation.
func comingSoon(state *uiState, feature string) func() {
	return func() {
		dialog.ShowInformation("Info", feature+" feature coming soon!", state.window)
	}
}
