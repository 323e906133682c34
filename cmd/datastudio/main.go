package main

import (
	"flag"
	"fmt"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"datastudio/cmd/datastudio/uihelpers"
	"datastudio/src/dataset"
	"datastudio/src/plotrender"
)

// uiState is the single controller object: it owns the resident dataset, the
// resident figure and every widget the handlers touch. All handlers run on
// the UI thread; mutation is always a full replace of the dataset or figure.
type uiState struct {
	app    fyne.App
	window fyne.Window
	log    zerolog.Logger

	filePath string
	ds       *dataset.Dataset
	figure   *plotrender.Figure
	renderer *plotrender.Renderer

	// widgets
	tabs          *container.AppTabs
	statusLabel   *widget.Label
	dataStatus    *widget.Label
	fileLabel     *widget.Label
	resultsLabel  *widget.Label
	columnSelect  *widget.Select
	plotCanvas    *canvas.Image
	previewCanvas *canvas.Image
	dataTable     *widget.Table

	// data preview rows (header + formatted cells)
	head [][]string

	showHints bool
}

// tab indices, in creation order
const (
	tabPlot = iota
	tabData
	tabResults
)

func main() {
	var fileFlag, demoFlag, levelFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to a CSV/Excel/JSON dataset to open on startup")
	flag.StringVar(&demoFlag, "demo", "", "Render sample-data charts and reports into DIR headlessly, then exit")
	flag.StringVar(&levelFlag, "loglevel", "info", "Log level: debug|info|warn|error")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	if demoFlag != "" {
		if err := RunDemoMode(demoFlag, log); err != nil {
			log.Error().Err(err).Msg("demo mode failed")
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.datastudio.app")
	w := a.NewWindow("Data Analysis Studio")
	w.Resize(fyne.NewSize(1200, 800))

	state := &uiState{
		app:      a,
		window:   w,
		log:      log,
		filePath: fileFlag,
		renderer: plotrender.New(plotrender.DefaultSettings()),
	}
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	buildUI(state)
	buildMenus(state)
	loadPrefs(state)

	if state.filePath != "" {
		loadPath(state, state.filePath)
	}
	w.ShowAndRun()
}

func buildUI(state *uiState) {
	// top bar
	state.fileLabel = widget.NewLabel(uihelpers.TruncatePath(state.filePath, 60))
	openBtn := widget.NewButton("Open…", func() { openFileDialog(state) })
	sampleBtn := widget.NewButton("Sample", func() { loadSampleData(state) })
	state.columnSelect = widget.NewSelect([]string{}, nil)
	state.columnSelect.PlaceHolder = "(column)"
	analyzeBtn := widget.NewButton("Analyze Column", func() { analyzeColumn(state) })
	histBtn := widget.NewButton("Histogram", func() { plotHistogram(state) })
	hintsChk := widget.NewCheck("Hints", func(v bool) {
		state.showHints = v
		state.app.Preferences().SetBool("showHints", v)
		refreshFigure(state)
	})
	hintsChk.SetChecked(state.showHints)
	topBar := container.NewHBox(openBtn, sampleBtn, state.fileLabel,
		widget.NewSeparator(), state.columnSelect, analyzeBtn, histBtn, hintsChk)

	// plot tab
	state.plotCanvas = canvas.NewImageFromImage(nil)
	state.plotCanvas.FillMode = canvas.ImageFillContain
	cw, ch := uihelpers.ComputeChartDimensions(1000)
	state.plotCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
	plotTab := container.NewScroll(state.plotCanvas)

	// data tab
	state.dataTable = newDataTable(state)
	dataTab := container.NewScroll(state.dataTable)

	// results tab (monospace text report plus the quick-look preview chart)
	state.resultsLabel = widget.NewLabel("No data loaded.")
	state.resultsLabel.TextStyle = fyne.TextStyle{Monospace: true}
	state.previewCanvas = canvas.NewImageFromImage(nil)
	state.previewCanvas.FillMode = canvas.ImageFillContain
	state.previewCanvas.SetMinSize(fyne.NewSize(340, 220))
	resultsTab := container.NewScroll(container.NewVBox(state.resultsLabel, state.previewCanvas))

	state.tabs = container.NewAppTabs(
		container.NewTabItem("Plot", plotTab),
		container.NewTabItem("Data", dataTab),
		container.NewTabItem("Results", resultsTab),
	)
	state.tabs.OnSelected = func(item *container.TabItem) {
		state.app.Preferences().SetInt("selectedTabIndex", state.tabs.SelectedIndex())
	}

	// status bar
	state.statusLabel = widget.NewLabel("Ready")
	state.dataStatus = widget.NewLabel("No data loaded")
	statusBar := container.NewHBox(state.statusLabel, widget.NewSeparator(), state.dataStatus)

	state.window.SetContent(container.NewBorder(topBar, statusBar, nil, nil, state.tabs))
	setFigure(state, state.renderer.Welcome())
}

func setStatus(state *uiState, msg string) {
	if state.statusLabel != nil {
		state.statusLabel.SetText(msg)
	}
}

func updateDataStatus(state *uiState) {
	if state.dataStatus == nil {
		return
	}
	if state.ds == nil {
		state.dataStatus.SetText("No data loaded")
		return
	}
	rows, cols := state.ds.Shape()
	name := "Sample Data"
	if state.ds.Source() != "" {
		name = uihelpers.TruncatePath(state.ds.Source(), 40)
	}
	state.dataStatus.SetText(fmt.Sprintf("%s | File: %s", uihelpers.FormatShape(rows, cols), name))
}

// setFigure replaces the resident figure and redraws the plot canvas.
func setFigure(state *uiState, fig *plotrender.Figure) {
	state.figure = fig
	refreshFigure(state)
}

func refreshFigure(state *uiState) {
	if state.figure == nil || state.plotCanvas == nil {
		return
	}
	img := state.figure.Image()
	if state.showHints {
		img = drawHint(img, "File > Export Chart… saves PNG, PDF or SVG")
	}
	state.plotCanvas.Image = img
	state.plotCanvas.Refresh()
}

func showResults(state *uiState, text string) {
	state.resultsLabel.SetText(text)
	state.tabs.SelectIndex(tabResults)
}
