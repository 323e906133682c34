package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"datastudio/src/dataset"
)

// StrongThreshold is the fixed |r| cutoff above which a pair of numeric
// columns is reported as strongly correlated.
const StrongThreshold = 0.7

// Matrix is a square Pearson correlation matrix over the numeric columns of
// a dataset. Symmetric, with exactly 1 on the diagonal; entries are NaN when
// a pair has fewer than two complete observations or zero variance.
type Matrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the coefficient for (i, j).
func (m *Matrix) At(i, j int) float64 { return m.Values[i][j] }

// Dim returns the number of numeric columns.
func (m *Matrix) Dim() int { return len(m.Columns) }

// Correlation computes the pairwise Pearson correlation matrix over the
// numeric columns, using pairwise-complete observations (rows where both
// values are present).
func Correlation(ds *dataset.Dataset) (*Matrix, error) {
	names := ds.NumericColumns()
	if len(names) == 0 {
		return nil, ErrNoNumericColumns
	}
	cols := make([][]float64, len(names))
	for i, name := range names {
		full, err := ds.NumericFull(name)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		cols[i] = full
	}
	m := &Matrix{Columns: names, Values: make([][]float64, len(names))}
	for i := range names {
		m.Values[i] = make([]float64, len(names))
		m.Values[i][i] = 1
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			r := pairwisePearson(cols[i], cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

// PairwiseCorrelation computes the Pearson coefficient between two numeric
// columns over their complete rows, returning the coefficient and the number
// of rows used.
func PairwiseCorrelation(ds *dataset.Dataset, x, y string) (float64, int, error) {
	xs, err := ds.NumericFull(x)
	if err != nil {
		return 0, 0, err
	}
	ys, err := ds.NumericFull(y)
	if err != nil {
		return 0, 0, err
	}
	cx, cy := completePairs(xs, ys)
	if len(cx) < 2 {
		return math.NaN(), len(cx), nil
	}
	return stat.Correlation(cx, cy, nil), len(cx), nil
}

// StrongPair is an unordered pair of distinct numeric columns whose absolute
// correlation exceeds the threshold. A < B by column order, each pair once.
type StrongPair struct {
	A, B string
	R    float64
}

// StrongPairs reports all strong correlations in the matrix. Self-pairs are
// excluded and each unordered pair appears at most once.
func StrongPairs(m *Matrix, threshold float64) []StrongPair {
	var out []StrongPair
	for i := 0; i < m.Dim(); i++ {
		for j := i + 1; j < m.Dim(); j++ {
			r := m.At(i, j)
			if math.IsNaN(r) {
				continue
			}
			if math.Abs(r) > threshold {
				out = append(out, StrongPair{A: m.Columns[i], B: m.Columns[j], R: r})
			}
		}
	}
	return out
}

func pairwisePearson(xs, ys []float64) float64 {
	cx, cy := completePairs(xs, ys)
	if len(cx) < 2 {
		return math.NaN()
	}
	return stat.Correlation(cx, cy, nil)
}

func completePairs(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	cx := make([]float64, 0, n)
	cy := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		cx = append(cx, xs[i])
		cy = append(cy, ys[i])
	}
	return cx, cy
}
