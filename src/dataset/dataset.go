package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ColumnKind classifies a column by its underlying storage type.
type ColumnKind int

const (
	KindNumeric ColumnKind = iota
	KindCategorical
)

func (k ColumnKind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "categorical"
}

var (
	// ErrColumnNotFound is returned when a requested column does not exist.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNotNumeric is returned when a numeric view of a categorical column is requested.
	ErrNotNumeric = errors.New("column is not numeric")
)

// Column describes one named column and its inferred kind.
type Column struct {
	Name string
	Kind ColumnKind
}

// Dataset is the single resident table. It is owned by the controller and
// replaced wholesale on every successful load; analysis operations are pure
// reads against it.
type Dataset struct {
	df     dataframe.DataFrame
	source string
}

// New wraps a gota dataframe. An empty frame (no columns or no rows) is
// rejected so the resident dataset is always analyzable.
func New(df dataframe.DataFrame, source string) (*Dataset, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	if df.Ncol() == 0 {
		return nil, errors.New("table has no columns")
	}
	if df.Nrow() == 0 {
		return nil, errors.New("table has no data rows")
	}
	return &Dataset{df: df, source: source}, nil
}

// Source returns the file path the dataset was loaded from, or "" for the
// generated sample.
func (d *Dataset) Source() string { return d.source }

// Shape returns (rows, columns).
func (d *Dataset) Shape() (int, int) { return d.df.Nrow(), d.df.Ncol() }

// Columns returns the ordered column descriptors.
func (d *Dataset) Columns() []Column {
	names := d.df.Names()
	types := d.df.Types()
	out := make([]Column, len(names))
	for i, n := range names {
		out[i] = Column{Name: n, Kind: kindOf(types[i])}
	}
	return out
}

// ColumnNames returns the ordered column names.
func (d *Dataset) ColumnNames() []string { return d.df.Names() }

// Kind returns the inferred kind of one column.
func (d *Dataset) Kind(name string) (ColumnKind, error) {
	for _, c := range d.Columns() {
		if c.Name == name {
			return c.Kind, nil
		}
	}
	return KindCategorical, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// NumericColumns returns the names of all numeric columns, in table order.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, c := range d.Columns() {
		if c.Kind == KindNumeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// CategoricalColumns returns the names of all categorical columns, in table order.
func (d *Dataset) CategoricalColumns() []string {
	var out []string
	for _, c := range d.Columns() {
		if c.Kind == KindCategorical {
			out = append(out, c.Name)
		}
	}
	return out
}

// Numeric returns the non-missing values of a numeric column.
func (d *Dataset) Numeric(name string) ([]float64, error) {
	full, err := d.NumericFull(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(full))
	for _, v := range full {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// NumericFull returns a numeric column aligned with row positions, with NaN
// marking missing entries. Needed for pairwise-complete correlation.
func (d *Dataset) NumericFull(name string) ([]float64, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	if kindOf(s.Type()) != KindNumeric {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, name)
	}
	return s.Float(), nil
}

// Records returns the non-missing values of a column as strings.
func (d *Dataset) Records(name string) ([]string, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	recs := s.Records()
	mask := missingMask(s)
	out := make([]string, 0, len(recs))
	for i, r := range recs {
		if mask[i] {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// MissingCount returns (missing, total) for one column.
func (d *Dataset) MissingCount(name string) (int, int, error) {
	s, err := d.col(name)
	if err != nil {
		return 0, 0, err
	}
	n := 0
	for _, m := range missingMask(s) {
		if m {
			n++
		}
	}
	return n, s.Len(), nil
}

// MissingColumn reports missing entries for one column.
type MissingColumn struct {
	Name    string
	Count   int
	Percent float64
}

// MissingReport reports missing entries across the whole table.
type MissingReport struct {
	Columns []MissingColumn
	Total   int
}

// Missing computes the per-column missing-value report.
func (d *Dataset) Missing() MissingReport {
	rep := MissingReport{}
	rows := d.df.Nrow()
	for _, name := range d.df.Names() {
		cnt, _, _ := d.MissingCount(name)
		pct := 0.0
		if rows > 0 {
			pct = float64(cnt) / float64(rows) * 100
		}
		rep.Columns = append(rep.Columns, MissingColumn{Name: name, Count: cnt, Percent: pct})
		rep.Total += cnt
	}
	return rep
}

// HeadRecords returns up to n rows formatted for display: missing entries as
// "NaN", floats with three decimals. The column header is not included.
func (d *Dataset) HeadRecords(n int) [][]string {
	rows := d.df.Nrow()
	if n > rows {
		n = rows
	}
	names := d.df.Names()
	cols := make([][]string, len(names))
	masks := make([][]bool, len(names))
	types := make([]series.Type, len(names))
	for i, name := range names {
		s := d.df.Col(name)
		cols[i] = s.Records()
		masks[i] = missingMask(s)
		types[i] = s.Type()
	}
	out := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(names))
		for c := range names {
			row[c] = formatCell(cols[c][r], masks[c][r], types[c])
		}
		out[r] = row
	}
	return out
}

func (d *Dataset) col(name string) (series.Series, error) {
	for _, n := range d.df.Names() {
		if n == name {
			return d.df.Col(name), nil
		}
	}
	return series.Series{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

func kindOf(t series.Type) ColumnKind {
	switch t {
	case series.Int, series.Float:
		return KindNumeric
	default:
		return KindCategorical
	}
}

// missingMask marks missing entries. Numeric NaN is always missing; for
// string columns an empty record counts as missing too, since CSV blanks
// load as empty strings.
func missingMask(s series.Series) []bool {
	nan := s.IsNaN()
	if kindOf(s.Type()) == KindNumeric {
		return nan
	}
	recs := s.Records()
	out := make([]bool, len(recs))
	for i, r := range recs {
		out[i] = nan[i] || r == "" || r == "NaN"
	}
	return out
}

func formatCell(rec string, missing bool, t series.Type) string {
	if missing {
		return "NaN"
	}
	if t == series.Float {
		if v, err := strconv.ParseFloat(rec, 64); err == nil {
			return strconv.FormatFloat(v, 'f', 3, 64)
		}
	}
	return rec
}
