package dataset

import (
	"errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleOptions controls the synthetic demo dataset.
type SampleOptions struct {
	Rows int
	Seed uint64
}

// DefaultSampleOptions returns the demo defaults. The fixed seed keeps the
// generated table bit-identical between runs.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{Rows: 1000, Seed: 42}
}

var departments = []string{"IT", "Sales", "Marketing", "HR", "Finance"}
var cities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"}

// Sample generates the synthetic employee dataset: five numeric columns drawn
// from normal/uniform distributions clipped to realistic ranges, plus two
// categorical columns over fixed label sets. Column generation order is fixed
// so a given seed always yields the same table.
func Sample(opts SampleOptions) (*Dataset, error) {
	if opts.Rows <= 0 {
		return nil, errors.New("sample rows must be positive")
	}
	src := rand.NewSource(opts.Seed)
	rnd := rand.New(src)

	age := clipInts(normals(src, 35, 12, opts.Rows), 18, 65)
	income := clipFloats(normals(src, 50000, 20000, opts.Rows), 25000, 150000)
	education := clipInts(normals(src, 14, 3, opts.Rows), 8, 20)
	experience := clipInts(normals(src, 10, 8, opts.Rows), 0, 40)
	satisfaction := uniforms(src, 1, 10, opts.Rows)
	department := choices(rnd, departments, opts.Rows)
	performance := clipFloats(normals(src, 75, 15, opts.Rows), 0, 100)
	city := choices(rnd, cities, opts.Rows)

	df := dataframe.New(
		series.New(age, series.Int, "Age"),
		series.New(income, series.Float, "Income"),
		series.New(education, series.Int, "Education_Years"),
		series.New(experience, series.Int, "Experience"),
		series.New(satisfaction, series.Float, "Satisfaction"),
		series.New(department, series.String, "Department"),
		series.New(performance, series.Float, "Performance_Score"),
		series.New(city, series.String, "City"),
	)
	return New(df, "")
}

func normals(src rand.Source, mu, sigma float64, n int) []float64 {
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

func uniforms(src rand.Source, lo, hi float64, n int) []float64 {
	d := distuv.Uniform{Min: lo, Max: hi, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

func choices(rnd *rand.Rand, labels []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = labels[rnd.Intn(len(labels))]
	}
	return out
}

func clipFloats(vs []float64, lo, hi float64) []float64 {
	for i, v := range vs {
		if v < lo {
			vs[i] = lo
		} else if v > hi {
			vs[i] = hi
		}
	}
	return vs
}

func clipInts(vs []float64, lo, hi int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		n := int(v)
		if n < lo {
			n = lo
		} else if n > hi {
			n = hi
		}
		out[i] = n
	}
	return out
}
