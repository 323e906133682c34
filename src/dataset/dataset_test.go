package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericDropsMissing(t *testing.T) {
	path := writeFile(t, "gaps.csv", "Score\n1.5\nNaN\n3.5\n")
	ds, err := Load(path)
	require.NoError(t, err)

	full, err := ds.NumericFull("Score")
	require.NoError(t, err)
	require.Len(t, full, 3)

	values, err := ds.Numeric("Score")
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 3.5}, values)
}

func TestNumericOnCategoricalColumn(t *testing.T) {
	path := writeFile(t, "cats.csv", "City\nChicago\nHouston\n")
	ds, err := Load(path)
	require.NoError(t, err)
	_, err = ds.Numeric("City")
	require.ErrorIs(t, err, ErrNotNumeric)
}

func TestColumnNotFound(t *testing.T) {
	path := writeFile(t, "one.csv", "A\n1\n")
	ds, err := Load(path)
	require.NoError(t, err)
	_, err = ds.Numeric("B")
	require.ErrorIs(t, err, ErrColumnNotFound)
	_, err = ds.Records("B")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestMissingReport(t *testing.T) {
	path := writeFile(t, "gaps.csv", "Score,City\n1.5,Chicago\nNaN,\n3.5,Houston\n4.5,Chicago\n")
	ds, err := Load(path)
	require.NoError(t, err)

	rep := ds.Missing()
	require.Equal(t, 2, rep.Total)
	byName := map[string]MissingColumn{}
	for _, c := range rep.Columns {
		byName[c.Name] = c
	}
	require.Equal(t, 1, byName["Score"].Count)
	require.InDelta(t, 25.0, byName["Score"].Percent, 1e-9)
	require.Equal(t, 1, byName["City"].Count)
}

func TestRecordsDropMissing(t *testing.T) {
	path := writeFile(t, "gaps.csv", "City\nChicago\n\nHouston\n")
	ds, err := Load(path)
	require.NoError(t, err)
	recs, err := ds.Records("City")
	require.NoError(t, err)
	require.Equal(t, []string{"Chicago", "Houston"}, recs)
}

func TestHeadRecordsFormatting(t *testing.T) {
	path := writeFile(t, "gaps.csv", "Score,City\n1.5,Chicago\nNaN,Houston\n")
	ds, err := Load(path)
	require.NoError(t, err)

	head := ds.HeadRecords(10)
	require.Len(t, head, 2)
	require.Equal(t, "1.500", head[0][0])
	require.Equal(t, "Chicago", head[0][1])
	require.Equal(t, "NaN", head[1][0])
}
