package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"datastudio/src/dataset"
)

// ErrNoNumericColumns is returned by operations that need at least one
// numeric column (correlation, heatmap).
var ErrNoNumericColumns = errors.New("no numeric columns in dataset")

// NumericSummary holds the descriptive statistics of one numeric column,
// computed over its non-missing values only.
type NumericSummary struct {
	Count    int
	Mean     float64
	Median   float64
	Mode     float64
	Std      float64
	Min      float64
	Max      float64
	Range    float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
	Q1       float64
	Q2       float64
	Q3       float64
	IQR      float64
}

// Frequency is one value of a categorical column with its occurrence count.
type Frequency struct {
	Value string
	Count int
}

// CategoricalSummary holds cardinality and frequency statistics of one
// categorical column, computed over its non-missing values only.
type CategoricalSummary struct {
	Count       int
	Unique      int
	Top         string
	TopCount    int
	Frequencies []Frequency
}

// ColumnSummary tags a per-column summary with its name and kind. Exactly one
// of Numeric/Categorical is set.
type ColumnSummary struct {
	Name        string
	Kind        dataset.ColumnKind
	Missing     int
	Rows        int
	Numeric     *NumericSummary
	Categorical *CategoricalSummary
}

// SummarizeNumeric computes the full numeric summary of a value slice.
// An empty slice yields Count 0 with NaN statistics.
func SummarizeNumeric(values []float64) NumericSummary {
	s := NumericSummary{Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Median, s.Mode, s.Std = nan, nan, nan, nan
		s.Min, s.Max, s.Range = nan, nan, nan
		s.Skewness, s.Kurtosis = nan, nan
		s.Q1, s.Q2, s.Q3, s.IQR = nan, nan, nan, nan
		return s
	}
	s.Mean = stat.Mean(values, nil)
	s.Std = stat.StdDev(values, nil)
	s.Skewness = stat.Skew(values, nil)
	s.Kurtosis = stat.ExKurtosis(values, nil)

	s.Median, _ = stats.Median(values)
	s.Min, _ = stats.Min(values)
	s.Max, _ = stats.Max(values)
	s.Range = s.Max - s.Min
	if modes, err := stats.Mode(values); err == nil && len(modes) > 0 {
		s.Mode = modes[0]
	} else {
		s.Mode = math.NaN()
	}
	if q, err := stats.Quartile(values); err == nil {
		s.Q1, s.Q2, s.Q3 = q.Q1, q.Q2, q.Q3
		s.IQR = q.Q3 - q.Q1
	} else {
		s.Q1, s.Q2, s.Q3, s.IQR = s.Median, s.Median, s.Median, 0
	}
	return s
}

// SummarizeCategorical computes cardinality and the top-N frequency table of
// a record slice. Ties are broken lexically so output is deterministic.
func SummarizeCategorical(records []string, topN int) CategoricalSummary {
	counts := map[string]int{}
	for _, r := range records {
		counts[r]++
	}
	freqs := make([]Frequency, 0, len(counts))
	for v, c := range counts {
		freqs = append(freqs, Frequency{Value: v, Count: c})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Value < freqs[j].Value
	})
	s := CategoricalSummary{
		Count:  len(records),
		Unique: len(freqs),
	}
	if len(freqs) > 0 {
		s.Top = freqs[0].Value
		s.TopCount = freqs[0].Count
	}
	if topN > 0 && len(freqs) > topN {
		freqs = freqs[:topN]
	}
	s.Frequencies = freqs
	return s
}

// AnalyzeColumn summarizes one column of the dataset. Numeric columns get the
// full descriptive block; categorical columns get cardinality and a top-N
// frequency table.
func AnalyzeColumn(ds *dataset.Dataset, name string, topN int) (ColumnSummary, error) {
	kind, err := ds.Kind(name)
	if err != nil {
		return ColumnSummary{}, err
	}
	missing, rows, err := ds.MissingCount(name)
	if err != nil {
		return ColumnSummary{}, err
	}
	out := ColumnSummary{Name: name, Kind: kind, Missing: missing, Rows: rows}
	if kind == dataset.KindNumeric {
		values, err := ds.Numeric(name)
		if err != nil {
			return ColumnSummary{}, err
		}
		s := SummarizeNumeric(values)
		out.Numeric = &s
		return out, nil
	}
	records, err := ds.Records(name)
	if err != nil {
		return ColumnSummary{}, err
	}
	s := SummarizeCategorical(records, topN)
	out.Categorical = &s
	return out, nil
}

// Describe summarizes every column of the dataset in table order.
func Describe(ds *dataset.Dataset, topN int) ([]ColumnSummary, error) {
	var out []ColumnSummary
	for _, c := range ds.Columns() {
		s, err := AnalyzeColumn(ds, c.Name, topN)
		if err != nil {
			return nil, fmt.Errorf("summarize %q: %w", c.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Info captures the dataset overview: shape, kind counts, missing values
// and the overall numeric range.
type Info struct {
	Rows             int
	Cols             int
	NumericCols      int
	CategoricalCols  int
	Missing          dataset.MissingReport
	NumericMin       float64
	NumericMax       float64
	HasNumericValues bool
}

// DatasetInfo computes the overview shown by the Data Info action.
func DatasetInfo(ds *dataset.Dataset) Info {
	rows, cols := ds.Shape()
	info := Info{
		Rows:            rows,
		Cols:            cols,
		NumericCols:     len(ds.NumericColumns()),
		CategoricalCols: len(ds.CategoricalColumns()),
		Missing:         ds.Missing(),
		NumericMin:      math.Inf(1),
		NumericMax:      math.Inf(-1),
	}
	for _, name := range ds.NumericColumns() {
		values, err := ds.Numeric(name)
		if err != nil {
			continue
		}
		for _, v := range values {
			if v < info.NumericMin {
				info.NumericMin = v
			}
			if v > info.NumericMax {
				info.NumericMax = v
			}
			info.HasNumericValues = true
		}
	}
	return info
}
