package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportTime = time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "999", FormatInt(999))
	assert.Equal(t, "1,000", FormatInt(1000))
	assert.Equal(t, "1,234,567", FormatInt(1234567))
	assert.Equal(t, "-12,345", FormatInt(-12345))
}

func TestInfoReport(t *testing.T) {
	ds := newTestDataset(t,
		series.New([]float64{1, 2, 3}, series.Float, "A"),
		series.New([]string{"x", "", "z"}, series.String, "B"),
	)
	out := InfoReport(ds)
	assert.Contains(t, out, "DATASET OVERVIEW")
	assert.Contains(t, out, "Shape: 3 rows x 2 columns")
	assert.Contains(t, out, "File: Sample Data")
	assert.Contains(t, out, "Numeric columns: 1")
	assert.Contains(t, out, "Categorical columns: 1")
	assert.Contains(t, out, "B")
}

func TestSummaryReport(t *testing.T) {
	ds := newTestDataset(t,
		series.New([]float64{2, 4, 4, 4, 5, 5, 7, 9}, series.Float, "Score"),
		series.New([]string{"IT", "HR", "IT", "IT", "HR", "IT", "HR", "IT"}, series.String, "Dept"),
	)
	out, err := SummaryReport(ds, reportTime)
	require.NoError(t, err)
	assert.Contains(t, out, "STATISTICAL SUMMARY")
	assert.Contains(t, out, "2025-06-01 12:30:00")
	assert.Contains(t, out, "NUMERIC COLUMNS ANALYSIS")
	assert.Contains(t, out, "Score:")
	assert.Contains(t, out, "Mean: 5.000")
	assert.Contains(t, out, "CATEGORICAL COLUMNS ANALYSIS")
	assert.Contains(t, out, "Most common: IT")
}

func TestCorrelationReportStrongPair(t *testing.T) {
	ds := newTestDataset(t,
		series.New([]float64{1, 2, 3, 4, 5}, series.Float, "X"),
		series.New([]float64{2, 4, 6, 8, 10}, series.Float, "Y"),
	)
	m, err := Correlation(ds)
	require.NoError(t, err)
	out := CorrelationReport(m, reportTime)
	assert.Contains(t, out, "CORRELATION ANALYSIS")
	assert.Contains(t, out, "Correlation Matrix:")
	assert.Contains(t, out, "X <-> Y: 1.000")
}

func TestCorrelationReportNoStrongPairs(t *testing.T) {
	ds := newTestDataset(t,
		series.New([]float64{1, 2, 3, 4, 10}, series.Float, "X"),
		series.New([]float64{5, 1, 9, 2, 6}, series.Float, "Y"),
	)
	m, err := Correlation(ds)
	require.NoError(t, err)
	out := CorrelationReport(m, reportTime)
	assert.Contains(t, out, "No strong correlations found")
}

func TestColumnReportNumeric(t *testing.T) {
	ds := newTestDataset(t, series.New([]float64{2, 4, 4, 4, 5, 5, 7, 9}, series.Float, "Score"))
	s, err := AnalyzeColumn(ds, "Score", 10)
	require.NoError(t, err)
	out := ColumnReport(s, reportTime)
	assert.Contains(t, out, "COLUMN ANALYSIS: Score")
	assert.Contains(t, out, "Kind: numeric")
	assert.Contains(t, out, "Mean: 5.000")
	assert.Contains(t, out, "Median: 4.500")
	assert.Contains(t, out, "IQR: 2.000")
}

func TestColumnReportCategorical(t *testing.T) {
	ds := newTestDataset(t, series.New([]string{"a", "b", "a"}, series.String, "Label"))
	s, err := AnalyzeColumn(ds, "Label", 10)
	require.NoError(t, err)
	out := ColumnReport(s, reportTime)
	assert.Contains(t, out, "CATEGORICAL ANALYSIS:")
	assert.Contains(t, out, "Unique Values: 2")
	assert.Contains(t, out, "Most Common: a")
}

func TestMissingValuesReport(t *testing.T) {
	nan := math.NaN()
	ds := newTestDataset(t,
		series.New([]float64{1, nan, 3, nan}, series.Float, "A"),
		series.New([]string{"x", "y", "z", "w"}, series.String, "B"),
	)
	out := MissingValuesReport(ds, reportTime)
	assert.Contains(t, out, "MISSING VALUES ANALYSIS")
	assert.Contains(t, out, "Total missing entries: 2")
	assert.Contains(t, out, "(50.0%)")
}
