package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"datastudio/src/dataset"
)

// Text report builders for the results pane. Timestamps are passed in by the
// caller so report content stays reproducible in tests.

const (
	ruleWide   = 60
	ruleMedium = 50
	ruleNarrow = 40
)

func rule(n int) string { return strings.Repeat("=", n) }

// FormatInt renders n with thousands separators.
func FormatInt(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func fnum(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// InfoReport renders the dataset overview: shape, column kinds, missing
// values and the overall numeric range.
func InfoReport(ds *dataset.Dataset) string {
	info := DatasetInfo(ds)
	var b strings.Builder
	fmt.Fprintf(&b, "DATASET OVERVIEW\n%s\n", rule(ruleNarrow))
	fmt.Fprintf(&b, "Shape: %s rows x %d columns\n", FormatInt(info.Rows), info.Cols)
	if src := ds.Source(); src != "" {
		fmt.Fprintf(&b, "File: %s\n", src)
	} else {
		b.WriteString("File: Sample Data\n")
	}

	fmt.Fprintf(&b, "\nCOLUMN TYPES\n%s\n", rule(ruleNarrow))
	for _, c := range ds.Columns() {
		fmt.Fprintf(&b, "%-20s : %s\n", c.Name, c.Kind)
	}

	fmt.Fprintf(&b, "\nMISSING VALUES\n%s\n", rule(ruleNarrow))
	b.WriteString(missingBlock(info.Missing))

	fmt.Fprintf(&b, "\nQUICK STATS\n%s\n", rule(ruleNarrow))
	fmt.Fprintf(&b, "Numeric columns: %d\n", info.NumericCols)
	fmt.Fprintf(&b, "Categorical columns: %d\n", info.CategoricalCols)
	if info.HasNumericValues {
		fmt.Fprintf(&b, "Numeric range: %.2f to %.2f\n", info.NumericMin, info.NumericMax)
	}
	return b.String()
}

// MissingValuesReport renders the standalone missing-value analysis.
func MissingValuesReport(ds *dataset.Dataset, ts time.Time) string {
	rep := ds.Missing()
	var b strings.Builder
	fmt.Fprintf(&b, "MISSING VALUES ANALYSIS\n%s\n%s\n\n", ts.Format("2006-01-02 15:04:05"), rule(ruleMedium))
	b.WriteString(missingBlock(rep))
	fmt.Fprintf(&b, "\nTotal missing entries: %s\n", FormatInt(rep.Total))
	return b.String()
}

func missingBlock(rep dataset.MissingReport) string {
	if rep.Total == 0 {
		return "No missing values found!\n"
	}
	var b strings.Builder
	for _, c := range rep.Columns {
		if c.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-20s : %4d (%.1f%%)\n", c.Name, c.Count, c.Percent)
	}
	return b.String()
}

// SummaryReport renders the statistical summary of every column.
func SummaryReport(ds *dataset.Dataset, ts time.Time) (string, error) {
	summaries, err := Describe(ds, 10)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "STATISTICAL SUMMARY\n%s\n%s\n", ts.Format("2006-01-02 15:04:05"), rule(ruleWide))

	var wroteNumeric bool
	for _, s := range summaries {
		if s.Numeric == nil {
			continue
		}
		if !wroteNumeric {
			fmt.Fprintf(&b, "\nNUMERIC COLUMNS ANALYSIS\n%s\n", rule(ruleNarrow))
			wroteNumeric = true
		}
		n := s.Numeric
		fmt.Fprintf(&b, "\n%s:\n", s.Name)
		fmt.Fprintf(&b, "  Count: %d\n", n.Count)
		fmt.Fprintf(&b, "  Mean: %s\n", fnum(n.Mean))
		fmt.Fprintf(&b, "  Std: %s\n", fnum(n.Std))
		fmt.Fprintf(&b, "  Min: %s\n", fnum(n.Min))
		fmt.Fprintf(&b, "  Max: %s\n", fnum(n.Max))
		fmt.Fprintf(&b, "  Skewness: %s\n", fnum(n.Skewness))
		fmt.Fprintf(&b, "  Kurtosis: %s\n", fnum(n.Kurtosis))
		fmt.Fprintf(&b, "  Range: %s\n", fnum(n.Range))
		fmt.Fprintf(&b, "  IQR: %s\n", fnum(n.IQR))
	}

	var wroteCategorical bool
	for _, s := range summaries {
		if s.Categorical == nil {
			continue
		}
		if !wroteCategorical {
			fmt.Fprintf(&b, "\n\nCATEGORICAL COLUMNS ANALYSIS\n%s\n", rule(ruleNarrow))
			wroteCategorical = true
		}
		c := s.Categorical
		fmt.Fprintf(&b, "\n%s:\n", s.Name)
		fmt.Fprintf(&b, "  Unique values: %d\n", c.Unique)
		fmt.Fprintf(&b, "  Most common: %s\n", c.Top)
	}
	return b.String(), nil
}

// CorrelationReport renders the correlation matrix and the strong pairs list.
func CorrelationReport(m *Matrix, ts time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CORRELATION ANALYSIS\n%s\n%s\n\n", ts.Format("2006-01-02 15:04:05"), rule(ruleMedium))
	b.WriteString("Correlation Matrix:\n")
	b.WriteString(matrixBlock(m))

	fmt.Fprintf(&b, "\nStrong Correlations (|r| > %.1f):\n%s\n", StrongThreshold, rule(ruleNarrow))
	pairs := StrongPairs(m, StrongThreshold)
	if len(pairs) == 0 {
		fmt.Fprintf(&b, "No strong correlations found (|r| > %.1f)\n", StrongThreshold)
		return b.String()
	}
	for _, p := range pairs {
		fmt.Fprintf(&b, "%s <-> %s: %.3f\n", p.A, p.B, p.R)
	}
	return b.String()
}

func matrixBlock(m *Matrix) string {
	width := 8
	for _, c := range m.Columns {
		if len(c) > width {
			width = len(c)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%*s", width+2, "")
	for _, c := range m.Columns {
		fmt.Fprintf(&b, " %*s", width, c)
	}
	b.WriteByte('\n')
	for i, row := range m.Values {
		fmt.Fprintf(&b, "%-*s ", width+2, m.Columns[i])
		for _, v := range row {
			if math.IsNaN(v) {
				fmt.Fprintf(&b, " %*s", width, "NaN")
			} else {
				fmt.Fprintf(&b, " %*.3f", width, v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ColumnReport renders the single-column analysis.
func ColumnReport(s ColumnSummary, ts time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "COLUMN ANALYSIS: %s\n%s\n%s\n\n", s.Name, ts.Format("2006-01-02 15:04:05"), rule(ruleMedium))
	fmt.Fprintf(&b, "Kind: %s\n", s.Kind)
	fmt.Fprintf(&b, "Non-null Count: %s / %s\n", FormatInt(s.Rows-s.Missing), FormatInt(s.Rows))
	pct := 0.0
	if s.Rows > 0 {
		pct = float64(s.Missing) / float64(s.Rows) * 100
	}
	fmt.Fprintf(&b, "Missing Values: %s (%.1f%%)\n\n", FormatInt(s.Missing), pct)

	if s.Numeric != nil {
		n := s.Numeric
		b.WriteString("NUMERIC ANALYSIS:\n")
		fmt.Fprintf(&b, "Mean: %s\n", fnum(n.Mean))
		fmt.Fprintf(&b, "Median: %s\n", fnum(n.Median))
		fmt.Fprintf(&b, "Mode: %s\n", fnum(n.Mode))
		fmt.Fprintf(&b, "Standard Deviation: %s\n", fnum(n.Std))
		fmt.Fprintf(&b, "Min: %s\n", fnum(n.Min))
		fmt.Fprintf(&b, "Max: %s\n", fnum(n.Max))
		fmt.Fprintf(&b, "Range: %s\n", fnum(n.Range))
		fmt.Fprintf(&b, "Skewness: %s\n", fnum(n.Skewness))
		fmt.Fprintf(&b, "Kurtosis: %s\n", fnum(n.Kurtosis))
		b.WriteString("\nQuartiles:\n")
		fmt.Fprintf(&b, "Q1 (25%%): %s\n", fnum(n.Q1))
		fmt.Fprintf(&b, "Q2 (50%%): %s\n", fnum(n.Q2))
		fmt.Fprintf(&b, "Q3 (75%%): %s\n", fnum(n.Q3))
		fmt.Fprintf(&b, "IQR: %s\n", fnum(n.IQR))
		return b.String()
	}

	c := s.Categorical
	b.WriteString("CATEGORICAL ANALYSIS:\n")
	fmt.Fprintf(&b, "Unique Values: %s\n", FormatInt(c.Unique))
	fmt.Fprintf(&b, "Most Common: %s\n\n", c.Top)
	fmt.Fprintf(&b, "Top %d Values:\n", len(c.Frequencies))
	for _, f := range c.Frequencies {
		fmt.Fprintf(&b, "%-20s %6d\n", f.Value, f.Count)
	}
	return b.String()
}
