package main

import (
	"os"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"datastudio/cmd/datastudio/uihelpers"
)

func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(uihelpers.TruncatePath(f, 60), func() {
			loadPath(state, f)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Sample Data", func() { loadSampleData(state) }),
		fyne.NewMenuItem("Reload", func() { reloadData(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart…", func() { savePlot(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)

	analysisMenu := fyne.NewMenu("Analysis",
		fyne.NewMenuItem("Data Info", func() { showDataInfo(state) }),
		fyne.NewMenuItem("Statistical Summary", func() { showStatisticalSummary(state) }),
		fyne.NewMenuItem("Correlation Analysis", func() { correlationAnalysis(state) }),
		fyne.NewMenuItem("Missing Values", func() { missingValuesAnalysis(state) }),
		fyne.NewMenuItem("Column Analysis", func() { analyzeColumn(state) }),
	)

	vizMenu := fyne.NewMenu("Visualization",
		fyne.NewMenuItem("Histogram", func() { plotHistogram(state) }),
		fyne.NewMenuItem("Correlation Heatmap", func() { plotHeatmap(state) }),
		fyne.NewMenuItem("Scatter Plot…", func() { plotScatter(state) }),
		fyne.NewMenuItem("Clear Plot", func() { clearPlot(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Line Plot", comingSoon(state, "Line plot")),
		fyne.NewMenuItem("Box Plot", comingSoon(state, "Box plot")),
		fyne.NewMenuItem("Pie Chart", comingSoon(state, "Pie chart")),
		fyne.NewMenuItem("Bar Plot", comingSoon(state, "Bar plot")),
		fyne.NewMenuItem("Violin Plot", comingSoon(state, "Violin plot")),
		fyne.NewMenuItem("Pair Plot", comingSoon(state, "Pair plot")),
		fyne.NewMenuItem("Distribution Plot", comingSoon(state, "Distribution plot")),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Outlier Detection", comingSoon(state, "Outlier detection")),
		fyne.NewMenuItem("Feature Importance", comingSoon(state, "Feature importance")),
		fyne.NewMenuItem("Normality Test", comingSoon(state, "Normality test")),
		fyne.NewMenuItem("PCA Analysis", comingSoon(state, "PCA analysis")),
		fyne.NewMenuItem("Clustering Analysis", comingSoon(state, "Clustering analysis")),
		fyne.NewMenuItem("ANOVA Test", comingSoon(state, "ANOVA test")),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Data Cleaner", comingSoon(state, "Data cleaner")),
		fyne.NewMenuItem("Feature Engineering", comingSoon(state, "Feature engineering")),
		fyne.NewMenuItem("Settings", comingSoon(state, "Settings panel")),
		fyne.NewMenuItem("Save Analysis", comingSoon(state, "Save analysis")),
		fyne.NewMenuItem("Export Report", comingSoon(state, "Export report")),
	)

	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu, analysisMenu, vizMenu, toolsMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { reloadData(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { reloadData(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// recent files, kept in preferences (most recent first, max 10)
func recentFiles(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	filtered := []string{path}
	for _, f := range recentFiles(state) {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetBool("showHints", state.showHints)
}

func loadPrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if state.filePath == "" {
		if f := prefs.StringWithFallback("lastFile", ""); f != "" {
			if _, err := os.Stat(f); err == nil {
				state.filePath = f
				state.fileLabel.SetText(uihelpers.TruncatePath(f, 60))
			}
		}
	}
	if state.tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(state.tabs.Items) {
			state.tabs.SelectIndex(idx)
		}
	}
}
