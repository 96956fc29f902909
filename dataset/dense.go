package dataset

import "gonum.org/v1/gonum/mat"

// Dense is a row-major dense feature matrix backed by gonum's mat.Dense.
type Dense struct {
	m *mat.Dense
}

// NewDense builds a dense storage of r×c values. data is row-major and must
// hold r·c values, or be nil for an all-zero matrix.
// Complexity: O(r·c).
func NewDense(r, c int, data []float64) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	if data != nil && len(data) != r*c {
		return nil, ErrShapeMismatch
	}

	return &Dense{m: mat.NewDense(r, c, data)}, nil
}

// WrapDense adopts an existing non-nil mat.Dense without copying.
// The caller must not mutate m afterwards.
func WrapDense(m *mat.Dense) *Dense {
	return &Dense{m: m}
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int {
	r, _ := d.m.Dims()
	return r
}

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int {
	_, c := d.m.Dims()
	return c
}

// Kind returns KindDense.
func (d *Dense) Kind() Kind { return KindDense }

// At returns the element at (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	r, c := d.m.Dims()
	if i < 0 || i >= r {
		return 0, ErrRowIndex
	}
	if j < 0 || j >= c {
		return 0, ErrColIndex
	}

	return d.m.At(i, j), nil
}

// Gather returns a new dense storage holding the listed rows in order.
// Complexity: O(len(rows)·c).
func (d *Dense) Gather(rows []int) (Storage, error) {
	r, c := d.m.Dims()
	if err := checkRows(rows, r); err != nil {
		return nil, err
	}
	out := mat.NewDense(len(rows), c, nil)
	for k, src := range rows {
		out.SetRow(k, d.m.RawRowView(src))
	}

	return &Dense{m: out}, nil
}

// Append returns a new dense storage with the receiver's rows followed by
// every block's rows. Complexity: O(total rows·c).
func (d *Dense) Append(blocks ...Storage) (Storage, error) {
	r, c := d.m.Dims()
	total := r
	for _, b := range blocks {
		if b.Kind() != KindDense {
			return nil, ErrKindMismatch
		}
		if b.Cols() != c {
			return nil, ErrShapeMismatch
		}
		total += b.Rows()
	}
	out := mat.NewDense(total, c, nil)
	for i := 0; i < r; i++ {
		out.SetRow(i, d.m.RawRowView(i))
	}
	at := r
	for _, b := range blocks {
		bd := b.(*Dense)
		for i := 0; i < bd.Rows(); i++ {
			out.SetRow(at, bd.m.RawRowView(i))
			at++
		}
	}

	return &Dense{m: out}, nil
}

// Densify returns a fresh dense copy of the matrix.
func (d *Dense) Densify() *mat.Dense {
	return mat.DenseCopyOf(d.m)
}

// FromDense adopts a dense block as-is; Dense is already the target format.
func (d *Dense) FromDense(block *mat.Dense) Numeric {
	return &Dense{m: block}
}

// ColumnVariance returns the population variance of every column over the
// given row subset. Complexity: O(len(rows)·c).
func (d *Dense) ColumnVariance(rows []int) ([]float64, error) {
	r, c := d.m.Dims()
	if err := checkRows(rows, r); err != nil {
		return nil, err
	}
	sum := make([]float64, c)
	sumsq := make([]float64, c)
	for _, i := range rows {
		row := d.m.RawRowView(i)
		for j, v := range row {
			sum[j] += v
			sumsq[j] += v * v
		}
	}

	return finishVariance(sum, sumsq, len(rows)), nil
}
