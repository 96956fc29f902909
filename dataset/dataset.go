package dataset

import "gonum.org/v1/gonum/mat"

// Dataset bundles a feature storage with an aligned class-label vector and
// an optional per-row weight vector. The zero value is not usable; build
// one with New.
type Dataset struct {
	X Storage
	Y []int
	W []float64
}

// New builds a Dataset after checking that Y, and W when given, carry
// exactly one entry per storage row. The slices are shared, not copied.
func New(x Storage, y []int, w []float64) (Dataset, error) {
	if x == nil {
		return Dataset{}, ErrBadShape
	}
	if len(y) != x.Rows() {
		return Dataset{}, ErrShapeMismatch
	}
	if w != nil && len(w) != x.Rows() {
		return Dataset{}, ErrShapeMismatch
	}

	return Dataset{X: x, Y: y, W: w}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d Dataset) Rows() int { return d.X.Rows() }

// Weighted reports whether the dataset carries per-row weights.
func (d Dataset) Weighted() bool { return d.W != nil }

// Gather returns a new Dataset holding the listed rows in order; labels and
// weights follow the same selection. Complexity: that of the storage's
// Gather plus O(len(rows)).
func (d Dataset) Gather(rows []int) (Dataset, error) {
	x, err := d.X.Gather(rows)
	if err != nil {
		return Dataset{}, err
	}
	y := make([]int, len(rows))
	for k, r := range rows {
		y[k] = d.Y[r]
	}
	var w []float64
	if d.W != nil {
		w = make([]float64, len(rows))
		for k, r := range rows {
			w[k] = d.W[r]
		}
	}

	return Dataset{X: x, Y: y, W: w}, nil
}

// AsNumeric asserts the numeric capability of a storage. Table storages
// report ErrNonNumeric.
func AsNumeric(s Storage) (Numeric, error) {
	n, ok := s.(Numeric)
	if !ok {
		return nil, ErrNonNumeric
	}

	return n, nil
}

// Densify returns a fresh dense copy of a numeric storage's feature matrix.
// Table storages report ErrNonNumeric.
func Densify(s Storage) (*mat.Dense, error) {
	n, err := AsNumeric(s)
	if err != nil {
		return nil, err
	}

	return n.Densify(), nil
}
