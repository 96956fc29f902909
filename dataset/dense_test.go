package dataset_test

import (
	"testing"

	"github.com/katalvlaran/resample/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Validation verifies shape and data-length checks.
func TestNewDense_Validation(t *testing.T) {
	_, err := dataset.NewDense(0, 3, nil)
	assert.ErrorIs(t, err, dataset.ErrBadShape, "zero rows must error")

	_, err = dataset.NewDense(2, -1, nil)
	assert.ErrorIs(t, err, dataset.ErrBadShape, "negative cols must error")

	_, err = dataset.NewDense(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, dataset.ErrShapeMismatch, "data length must equal rows*cols")

	d, err := dataset.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 2, d.Cols())
	assert.Equal(t, dataset.KindDense, d.Kind())
}

// TestDense_At checks element access and bounds errors.
func TestDense_At(t *testing.T) {
	d, err := dataset.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	v, err := d.At(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, dataset.ErrRowIndex, "row out of range must error")
	_, err = d.At(0, 3)
	assert.ErrorIs(t, err, dataset.ErrColIndex, "column out of range must error")
}

// TestDense_Gather verifies row selection order, duplication and errors.
func TestDense_Gather(t *testing.T) {
	d, err := dataset.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	g, err := d.Gather([]int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows(), "one output row per selected index")

	gd := g.(dataset.Numeric).Densify()
	assert.Equal(t, []float64{5, 6}, gd.RawRowView(0), "first selected row")
	assert.Equal(t, []float64{1, 2}, gd.RawRowView(1), "second selected row")
	assert.Equal(t, []float64{5, 6}, gd.RawRowView(2), "duplicated row copied again")

	_, err = d.Gather(nil)
	assert.ErrorIs(t, err, dataset.ErrEmptySelection, "empty selection must error")
	_, err = d.Gather([]int{3})
	assert.ErrorIs(t, err, dataset.ErrRowIndex, "out-of-range selection must error")
}

// TestDense_Append verifies stacking and kind/width checks.
func TestDense_Append(t *testing.T) {
	a, err := dataset.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := dataset.NewDense(1, 2, []float64{5, 6})
	require.NoError(t, err)

	out, err := a.Append(b)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Rows())
	od := out.(dataset.Numeric).Densify()
	assert.Equal(t, []float64{5, 6}, od.RawRowView(2), "appended block comes last")

	wide, err := dataset.NewDense(1, 3, []float64{7, 8, 9})
	require.NoError(t, err)
	_, err = a.Append(wide)
	assert.ErrorIs(t, err, dataset.ErrShapeMismatch, "column counts must agree")

	csr, err := dataset.NewCSR(1, 2, []int{0, 1}, []int{0}, []float64{9})
	require.NoError(t, err)
	_, err = a.Append(csr)
	assert.ErrorIs(t, err, dataset.ErrKindMismatch, "mixed kinds must error")
}

// TestDense_ColumnVariance checks population variance, including the
// single-row degenerate case.
func TestDense_ColumnVariance(t *testing.T) {
	d, err := dataset.NewDense(3, 2, []float64{
		1, 10,
		3, 10,
		5, 10,
	})
	require.NoError(t, err)

	v, err := d.ColumnVariance([]int{0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, v[0], 1e-12, "population variance of {1,3,5}")
	assert.InDelta(t, 0.0, v[1], 1e-12, "constant column has zero variance")

	v, err = d.ColumnVariance([]int{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, v, "single row yields zero variance, not NaN")

	sub, err := d.ColumnVariance([]int{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sub[0], 1e-12, "variance over a row subset")
}

// TestDense_DensifyIsolation verifies that Densify returns a copy detached
// from the storage.
func TestDense_DensifyIsolation(t *testing.T) {
	d, err := dataset.NewDense(1, 2, []float64{1, 2})
	require.NoError(t, err)

	m := d.Densify()
	m.Set(0, 0, 99)

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the densified copy must not touch the storage")
}
