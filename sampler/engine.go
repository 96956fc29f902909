package sampler

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/resample/dataset"
)

// newRand builds the single random stream every draw of a call flows
// through: the Src override when set, a PCG seeded from Options.Seed
// otherwise.
func newRand(opts Options) *rand.Rand {
	if opts.Src != nil {
		return rand.New(opts.Src)
	}

	return rand.New(rand.NewPCG(opts.Seed, opts.Seed))
}

// indexByClass splits row indices by class code. The returned class list is
// ascending; each row list is ascending by construction.
func indexByClass(y []int) ([]int, map[int][]int) {
	rows := make(map[int][]int)
	for i, c := range y {
		rows[c] = append(rows[c], i)
	}
	classes := make([]int, 0, len(rows))
	for c := range rows {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	return classes, rows
}

// silverman returns the bandwidth constant of Silverman's rule of thumb
// for a class with the given feature count and row count:
// (4 / ((f + 2) · rows))^(1 / (f + 4)).
func silverman(features, classRows int) float64 {
	f := float64(features)

	return math.Pow(4/((f+2)*float64(classRows)), 1/(f+4))
}

// finalize applies the output permutation atomically to features, labels,
// weights and provenance, then optionally densifies the feature matrix.
// The permutation is the last consumption of the random stream.
func finalize(x dataset.Storage, y []int, w []float64, idx []int, rnd *rand.Rand, sparseOutput bool) (*Result, error) {
	perm := rnd.Perm(len(y))
	px, err := x.Gather(perm)
	if err != nil {
		return nil, err
	}
	py := make([]int, len(perm))
	pidx := make([]int, len(perm))
	var pw []float64
	if w != nil {
		pw = make([]float64, len(perm))
	}
	for i, p := range perm {
		py[i] = y[p]
		pidx[i] = idx[p]
		if w != nil {
			pw[i] = w[p]
		}
	}
	px, err = maybeDensify(px, sparseOutput)
	if err != nil {
		return nil, err
	}

	return &Result{X: px, Y: py, W: pw, Indices: pidx}, nil
}

// maybeDensify converts a numeric storage to dense when the caller asked
// for dense output.
func maybeDensify(s dataset.Storage, sparseOutput bool) (dataset.Storage, error) {
	if sparseOutput || s.Kind() == dataset.KindDense {
		return s, nil
	}
	d, err := dataset.Densify(s)
	if err != nil {
		return nil, err
	}

	return dataset.WrapDense(d), nil
}
