package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// Load reads a tabular file into a new Dataset. The format is chosen by
// extension: .csv, .xlsx/.xls (first sheet), .json (record oriented).
// Unrecognized extensions are attempted as CSV, matching the permissive
// behavior users expect from plain-text exports.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return loadExcel(path)
	case ".json":
		return loadJSON(path)
	default:
		return loadCSV(path)
	}
}

func loadCSV(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse CSV %s: %w", path, df.Err)
	}
	return New(df, path)
}

func loadJSON(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	df := dataframe.ReadJSON(bytes.NewReader(raw))
	if df.Err != nil {
		return nil, fmt.Errorf("parse JSON %s: %w", path, df.Err)
	}
	return New(df, path)
}

// loadExcel reads the first sheet of a workbook. Short rows are padded so
// every record matches the header width.
func loadExcel(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}
	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		} else if len(row) > width {
			row = row[:width]
		}
		records = append(records, row)
	}
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse sheet %q: %w", sheet, df.Err)
	}
	return New(df, path)
}
