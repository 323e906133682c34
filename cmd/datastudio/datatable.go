package main

import (
	"fmt"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"datastudio/cmd/datastudio/uihelpers"
	"datastudio/src/analysis"
)

// previewRows caps the data tab at the first rows of the resident dataset.
const previewRows = 100

func newDataTable(state *uiState) *widget.Table {
	return widget.NewTable(
		func() (int, int) {
			if len(state.head) == 0 {
				return 0, 0
			}
			return len(state.head), len(state.head[0])
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			l := o.(*widget.Label)
			l.TextStyle = fyne.TextStyle{Bold: id.Row == 0}
			l.SetText(state.head[id.Row][id.Col])
		},
	)
}

// refreshDataTable rebuilds the preview rows: header, first 100 data rows and
// a truncation note when the table is longer.
func refreshDataTable(state *uiState) {
	if state.ds == nil || state.dataTable == nil {
		return
	}
	names := state.ds.ColumnNames()
	rows := make([][]string, 0, previewRows+2)
	rows = append(rows, names)
	rows = append(rows, state.ds.HeadRecords(previewRows)...)

	total, _ := state.ds.Shape()
	if total > previewRows {
		note := make([]string, len(names))
		note[0] = fmt.Sprintf("Showing first %d of %s rows", previewRows, analysis.FormatInt(total))
		rows = append(rows, note)
	}
	state.head = rows
	for c, name := range names {
		state.dataTable.SetColumnWidth(c, float32(uihelpers.PreviewColumnWidth(name)))
	}
	state.dataTable.Refresh()
}
