package sampler_test

import (
	"testing"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/sampler"
	"github.com/katalvlaran/resample/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// sameRow reports exact element-wise equality of two feature rows.
func sameRow(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// sparseImbalanced builds a CSR dataset with 4 rows of class 0 and 2 rows
// of class 1.
func sparseImbalanced(t *testing.T) dataset.Dataset {
	t.Helper()
	x, err := dataset.NewCSR(6, 3,
		[]int{0, 1, 2, 3, 4, 6, 7},
		[]int{0, 1, 2, 0, 0, 2, 1},
		[]float64{1, 2, 3, 4, 5, 6, 7},
	)
	require.NoError(t, err)
	d, err := dataset.New(x, []int{0, 0, 0, 0, 1, 1}, nil)
	require.NoError(t, err)

	return d
}

// TestOverSample_SmoothedPerturbs verifies that the smoothed bootstrap
// actually moves synthesized rows off their donors when the class has
// spread, while originals pass through untouched.
func TestOverSample_SmoothedPerturbs(t *testing.T) {
	d := imbalancedDataset(t, false)
	opts := sampler.DefaultOptions()
	opts.Seed = 9
	opts.SmoothedBootstrap = true

	res, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assert.Equal(t, 200, res.Rows())

	orig, err := dataset.Densify(d.X)
	require.NoError(t, err)
	got, err := dataset.Densify(res.X)
	require.NoError(t, err)

	perturbed := 0
	for i, src := range res.Indices {
		assert.Equal(t, d.Y[src], res.Y[i], "labels are copied unperturbed")
		if !sameRow(orig.RawRowView(src), got.RawRowView(i)) {
			perturbed++
		}
	}
	assert.Equal(t, 130, res.Rows()-perturbed, "every original row survives verbatim")
	assert.Equal(t, 70, perturbed, "every synthesized row carries noise")
}

// TestOverSample_SmoothedZeroShrinkage verifies that shrinkage 0 collapses
// the smoothed bootstrap to plain duplication.
func TestOverSample_SmoothedZeroShrinkage(t *testing.T) {
	d := imbalancedDataset(t, true)
	opts := sampler.DefaultOptions()
	opts.Seed = 9
	opts.SmoothedBootstrap = true
	opts.Shrinkage = 0

	res, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assertRowsMatchProvenance(t, d, res)
}

// TestOverSample_SingleRowClassDegenerates verifies the documented edge
// case: one donor row means zero std, so smoothed duplicates are exact.
func TestOverSample_SingleRowClassDegenerates(t *testing.T) {
	x, err := dataset.NewDense(4, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		9, 5,
	})
	require.NoError(t, err)
	d, err := dataset.New(x, []int{0, 0, 0, 1}, nil)
	require.NoError(t, err)

	opts := sampler.DefaultOptions()
	opts.Seed = 4
	opts.SmoothedBootstrap = true

	res, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Rows(), "class 1 grows from 1 to 3 rows")
	assertRowsMatchProvenance(t, d, res)

	got, err := dataset.Densify(res.X)
	require.NoError(t, err)
	clones := 0
	for i, src := range res.Indices {
		if src == 3 {
			assert.Equal(t, []float64{9, 5}, got.RawRowView(i), "single-row class duplicates exactly")
			clones++
		}
	}
	assert.Equal(t, 3, clones)
}

// TestOverSample_SparseRoundTrip verifies format preservation: CSR in,
// CSR out, and an identical dense rendition when densification is asked
// for instead.
func TestOverSample_SparseRoundTrip(t *testing.T) {
	d := sparseImbalanced(t)

	opts := sampler.DefaultOptions()
	opts.Seed = 5
	opts.SmoothedBootstrap = true

	res, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assert.Equal(t, dataset.KindCSR, res.X.Kind(), "sparse input stays sparse")
	assert.Equal(t, 8, res.Rows(), "class 1 grows from 2 to 4 rows")

	opts.SparseOutput = false
	dense, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assert.Equal(t, dataset.KindDense, dense.X.Kind(), "densification changes the kind")

	sd, err := dataset.Densify(res.X)
	require.NoError(t, err)
	dd, err := dataset.Densify(dense.X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(sd, dd), "same seed, same values, regardless of output format")
	assert.Equal(t, res.Indices, dense.Indices)
}

// TestOverSample_CSCPreserved verifies the column-major format survives.
func TestOverSample_CSCPreserved(t *testing.T) {
	x, err := dataset.NewCSC(4, 2,
		[]int{0, 2, 4},
		[]int{0, 1, 2, 3},
		[]float64{1, 2, 3, 4},
	)
	require.NoError(t, err)
	d, err := dataset.New(x, []int{0, 0, 0, 1}, nil)
	require.NoError(t, err)

	opts := sampler.DefaultOptions()
	opts.Seed = 6
	res, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assert.Equal(t, dataset.KindCSC, res.X.Kind())
	assertRowsMatchProvenance(t, d, res)
}

// TestOverSample_TableDuplication verifies that heterogeneous tables
// support plain duplication but refuse the numeric-only paths.
func TestOverSample_TableDuplication(t *testing.T) {
	x, err := dataset.NewTable(
		dataset.FloatColumn{Label: "age", Values: []float64{30, 40, 50, 25}},
		dataset.StringColumn{Label: "city", Values: []string{"riga", "oslo", "bern", "kyiv"}},
	)
	require.NoError(t, err)
	d, err := dataset.New(x, []int{0, 0, 0, 1}, nil)
	require.NoError(t, err)

	opts := sampler.DefaultOptions()
	opts.Seed = 8
	res, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Rows())
	assert.Equal(t, dataset.KindTable, res.X.Kind(), "tables pass through duplication")
	counts := strategy.CountClasses(res.Y)
	assert.Equal(t, 3, counts[1])

	smoothed := opts
	smoothed.SmoothedBootstrap = true
	_, err = sampler.OverSample(d, smoothed)
	assert.ErrorIs(t, err, dataset.ErrNonNumeric, "no Gaussian noise on string columns")

	densified := opts
	densified.SparseOutput = false
	_, err = sampler.OverSample(d, densified)
	assert.ErrorIs(t, err, dataset.ErrNonNumeric, "tables cannot densify")
}

// TestOverSample_ShrinkageValidation verifies the per-class shrinkage
// checks run before any sampling.
func TestOverSample_ShrinkageValidation(t *testing.T) {
	d := imbalancedDataset(t, false)

	opts := sampler.DefaultOptions()
	opts.SmoothedBootstrap = true
	opts.ShrinkageByClass = map[int]float64{0: 1}
	_, err := sampler.OverSample(d, opts)
	assert.ErrorIs(t, err, sampler.ErrMissingShrinkage, "targeted class 1 is uncovered")

	opts.ShrinkageByClass = map[int]float64{1: -0.5}
	_, err = sampler.OverSample(d, opts)
	assert.ErrorIs(t, err, sampler.ErrBadShrinkage, "negative shrinkage is rejected")

	opts.ShrinkageByClass = nil
	opts.Shrinkage = -1
	_, err = sampler.OverSample(d, opts)
	assert.ErrorIs(t, err, sampler.ErrBadShrinkage, "negative scalar shrinkage is rejected")
}

// TestOverSample_PerClassShrinkage verifies that a covering map is
// accepted and 0-valued entries fall back to exact duplication.
func TestOverSample_PerClassShrinkage(t *testing.T) {
	d := imbalancedDataset(t, false)

	opts := sampler.DefaultOptions()
	opts.Seed = 12
	opts.SmoothedBootstrap = true
	opts.ShrinkageByClass = map[int]float64{1: 0}

	res, err := sampler.OverSample(d, opts)
	require.NoError(t, err)
	assertRowsMatchProvenance(t, d, res)
}

// TestOverSample_BadStrategySurfaces verifies that resolver failures pass
// through with their identity intact.
func TestOverSample_BadStrategySurfaces(t *testing.T) {
	d := imbalancedDataset(t, false)

	opts := sampler.DefaultOptions()
	opts.Strategy = strategy.ByKeyword(strategy.Majority)
	_, err := sampler.OverSample(d, opts)
	assert.ErrorIs(t, err, strategy.ErrInvalidStrategy)
}
