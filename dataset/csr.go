package dataset

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSR is a compressed sparse row feature matrix: indptr has rows+1 entries,
// and row i owns indices[indptr[i]:indptr[i+1]] (sorted, unique column
// indices) with the matching values in data.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

// NewCSR builds a CSR storage after validating the compressed structure:
// indptr must start at 0, be non-decreasing and end at len(data); column
// indices must be strictly increasing within each row and inside [0, cols).
// The slices are copied. Complexity: O(nnz).
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if err := checkCompressed(rows, cols, indptr, indices, data); err != nil {
		return nil, err
	}

	return &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}, nil
}

// checkCompressed validates a compressed-major structure with major axis
// length major and minor indices bounded by minor.
func checkCompressed(major, minor int, indptr, indices []int, data []float64) error {
	if len(indptr) != major+1 || indptr[0] != 0 || indptr[major] != len(indices) || len(indices) != len(data) {
		return ErrSparseStructure
	}
	for i := 0; i < major; i++ {
		lo, hi := indptr[i], indptr[i+1]
		if lo > hi {
			return ErrSparseStructure
		}
		for k := lo; k < hi; k++ {
			if indices[k] < 0 || indices[k] >= minor {
				return ErrSparseStructure
			}
			if k > lo && indices[k] <= indices[k-1] {
				return ErrSparseStructure
			}
		}
	}

	return nil
}

// Rows returns the number of rows. Complexity: O(1).
func (s *CSR) Rows() int { return s.rows }

// Cols returns the number of columns. Complexity: O(1).
func (s *CSR) Cols() int { return s.cols }

// Kind returns KindCSR.
func (s *CSR) Kind() Kind { return KindCSR }

// NNZ returns the number of stored entries.
func (s *CSR) NNZ() int { return len(s.data) }

// At returns the element at (i, j), zero when the entry is not stored.
// Complexity: O(log nnz(row i)).
func (s *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= s.rows {
		return 0, ErrRowIndex
	}
	if j < 0 || j >= s.cols {
		return 0, ErrColIndex
	}
	lo, hi := s.indptr[i], s.indptr[i+1]
	k := lo + sort.SearchInts(s.indices[lo:hi], j)
	if k < hi && s.indices[k] == j {
		return s.data[k], nil
	}

	return 0, nil
}

// Gather returns a new CSR holding the listed rows in order; each selected
// row's entries are copied verbatim. Complexity: O(nnz of the selection).
func (s *CSR) Gather(rows []int) (Storage, error) {
	if err := checkRows(rows, s.rows); err != nil {
		return nil, err
	}
	nnz := 0
	for _, r := range rows {
		nnz += s.indptr[r+1] - s.indptr[r]
	}
	indptr := make([]int, len(rows)+1)
	indices := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	for k, r := range rows {
		lo, hi := s.indptr[r], s.indptr[r+1]
		indices = append(indices, s.indices[lo:hi]...)
		data = append(data, s.data[lo:hi]...)
		indptr[k+1] = len(indices)
	}

	return &CSR{rows: len(rows), cols: s.cols, indptr: indptr, indices: indices, data: data}, nil
}

// Append returns a new CSR with the receiver's rows followed by every
// block's rows. Complexity: O(total nnz).
func (s *CSR) Append(blocks ...Storage) (Storage, error) {
	total := s.rows
	nnz := len(s.data)
	for _, b := range blocks {
		if b.Kind() != KindCSR {
			return nil, ErrKindMismatch
		}
		if b.Cols() != s.cols {
			return nil, ErrShapeMismatch
		}
		bs := b.(*CSR)
		total += bs.rows
		nnz += len(bs.data)
	}
	indptr := make([]int, 1, total+1)
	indices := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	appendRows := func(src *CSR) {
		for i := 0; i < src.rows; i++ {
			lo, hi := src.indptr[i], src.indptr[i+1]
			indices = append(indices, src.indices[lo:hi]...)
			data = append(data, src.data[lo:hi]...)
			indptr = append(indptr, len(indices))
		}
	}
	appendRows(s)
	for _, b := range blocks {
		appendRows(b.(*CSR))
	}

	return &CSR{rows: total, cols: s.cols, indptr: indptr, indices: indices, data: data}, nil
}

// Densify returns a fresh dense copy of the matrix. Complexity: O(r·c).
func (s *CSR) Densify() *mat.Dense {
	out := mat.NewDense(s.rows, s.cols, nil)
	for i := 0; i < s.rows; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			out.Set(i, s.indices[k], s.data[k])
		}
	}

	return out
}

// FromDense re-encodes a dense block as CSR, dropping exact zeros.
// Complexity: O(r·c).
func (s *CSR) FromDense(block *mat.Dense) Numeric {
	r, c := block.Dims()
	indptr := make([]int, 1, r+1)
	var indices []int
	var data []float64
	for i := 0; i < r; i++ {
		row := block.RawRowView(i)
		for j := 0; j < c; j++ {
			if row[j] != 0 {
				indices = append(indices, j)
				data = append(data, row[j])
			}
		}
		indptr = append(indptr, len(indices))
	}

	return &CSR{rows: r, cols: c, indptr: indptr, indices: indices, data: data}
}

// ColumnVariance returns the population variance of every column over the
// given row subset, touching stored entries only: implicit zeros contribute
// through the divisor. Complexity: O(nnz of the selection + c).
func (s *CSR) ColumnVariance(rows []int) ([]float64, error) {
	if err := checkRows(rows, s.rows); err != nil {
		return nil, err
	}
	sum := make([]float64, s.cols)
	sumsq := make([]float64, s.cols)
	for _, i := range rows {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			v := s.data[k]
			sum[s.indices[k]] += v
			sumsq[s.indices[k]] += v * v
		}
	}

	return finishVariance(sum, sumsq, len(rows)), nil
}

// finishVariance turns per-column sums and squared sums over n rows into
// population variances, clamping tiny negative cancellation noise to zero.
func finishVariance(sum, sumsq []float64, n int) []float64 {
	inv := 1.0 / float64(n)
	out := make([]float64, len(sum))
	for j := range sum {
		mean := sum[j] * inv
		v := sumsq[j]*inv - mean*mean
		if v < 0 {
			v = 0
		}
		out[j] = v
	}

	return out
}
