package analysis

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"

	"datastudio/src/dataset"
)

func newTestDataset(t *testing.T, ss ...series.Series) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(dataframe.New(ss...), "")
	require.NoError(t, err)
	return ds
}

func TestSummarizeNumericAgainstDirectFormulas(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := SummarizeNumeric(values)

	// direct recomputation
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	varSum := 0.0
	for _, v := range values {
		varSum += (v - mean) * (v - mean)
	}
	std := math.Sqrt(varSum / float64(len(values)-1))

	require.Equal(t, 8, s.Count)
	require.InDelta(t, mean, s.Mean, 1e-12)
	require.InDelta(t, std, s.Std, 1e-12)
	require.InDelta(t, 4.5, s.Median, 1e-12)
	require.InDelta(t, 4, s.Mode, 1e-12)
	require.InDelta(t, 2, s.Min, 1e-12)
	require.InDelta(t, 9, s.Max, 1e-12)
	require.InDelta(t, 7, s.Range, 1e-12)
	require.InDelta(t, 4, s.Q1, 1e-12)
	require.InDelta(t, 6, s.Q3, 1e-12)
	require.InDelta(t, 2, s.IQR, 1e-12)
}

func TestSummarizeNumericSymmetricSkew(t *testing.T) {
	s := SummarizeNumeric([]float64{1, 2, 3, 4, 5, 6, 7})
	require.InDelta(t, 0, s.Skewness, 1e-9)
}

func TestSummarizeNumericEmpty(t *testing.T) {
	s := SummarizeNumeric(nil)
	require.Equal(t, 0, s.Count)
	require.True(t, math.IsNaN(s.Mean))
	require.True(t, math.IsNaN(s.Median))
	require.True(t, math.IsNaN(s.Q1))
}

func TestSummarizeCategorical(t *testing.T) {
	records := []string{"IT", "Sales", "IT", "HR", "IT", "Sales"}
	s := SummarizeCategorical(records, 10)
	require.Equal(t, 6, s.Count)
	require.Equal(t, 3, s.Unique)
	require.Equal(t, "IT", s.Top)
	require.Equal(t, 3, s.TopCount)
	require.Equal(t, []Frequency{{"IT", 3}, {"Sales", 2}, {"HR", 1}}, s.Frequencies)
}

func TestSummarizeCategoricalTopNCapAndTies(t *testing.T) {
	var records []string
	for _, v := range []string{"e", "d", "c", "b", "a"} {
		records = append(records, v)
	}
	s := SummarizeCategorical(records, 3)
	require.Equal(t, 5, s.Unique)
	require.Len(t, s.Frequencies, 3)
	// equal counts break lexically
	require.Equal(t, "a", s.Frequencies[0].Value)
	require.Equal(t, "a", s.Top)
}

func TestAnalyzeColumnNumeric(t *testing.T) {
	ds := newTestDataset(t,
		series.New([]float64{30, 40, 50, 40}, series.Float, "Age"),
		series.New([]string{"IT", "HR", "IT", "HR"}, series.String, "Department"),
	)
	s, err := AnalyzeColumn(ds, "Age", 10)
	require.NoError(t, err)
	require.Equal(t, dataset.KindNumeric, s.Kind)
	require.NotNil(t, s.Numeric)
	require.Nil(t, s.Categorical)
	require.InDelta(t, 40, s.Numeric.Mean, 1e-12)
	require.InDelta(t, 40, s.Numeric.Median, 1e-12)
}

func TestAnalyzeColumnCategoricalTopTableSumsToCount(t *testing.T) {
	records := []string{"a", "b", "a", "c", "a", "b", "d", "e"}
	ds := newTestDataset(t, series.New(records, series.String, "Label"))

	s, err := AnalyzeColumn(ds, "Label", 10)
	require.NoError(t, err)
	require.NotNil(t, s.Categorical)
	require.Equal(t, 5, s.Categorical.Unique)

	total := 0
	for _, f := range s.Categorical.Frequencies {
		total += f.Count
	}
	require.Equal(t, s.Categorical.Count, total)
}

func TestAnalyzeColumnUnknown(t *testing.T) {
	ds := newTestDataset(t, series.New([]float64{1}, series.Float, "A"))
	_, err := AnalyzeColumn(ds, "Nope", 10)
	require.ErrorIs(t, err, dataset.ErrColumnNotFound)
}

func TestDatasetInfo(t *testing.T) {
	ds := newTestDataset(t,
		series.New([]float64{1, 2, 3}, series.Float, "A"),
		series.New([]string{"x", "y", "z"}, series.String, "B"),
	)
	info := DatasetInfo(ds)
	require.Equal(t, 3, info.Rows)
	require.Equal(t, 2, info.Cols)
	require.Equal(t, 1, info.NumericCols)
	require.Equal(t, 1, info.CategoricalCols)
	require.True(t, info.HasNumericValues)
	require.InDelta(t, 1, info.NumericMin, 1e-12)
	require.InDelta(t, 3, info.NumericMax, 1e-12)
}
