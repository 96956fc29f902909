package dataset

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSC is a compressed sparse column feature matrix: indptr has cols+1
// entries, and column j owns indices[indptr[j]:indptr[j+1]] (sorted, unique
// row indices) with the matching values in data.
type CSC struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

// NewCSC builds a CSC storage after validating the compressed structure:
// indptr must start at 0, be non-decreasing and end at len(data); row
// indices must be strictly increasing within each column and inside
// [0, rows). The slices are copied. Complexity: O(nnz).
func NewCSC(rows, cols int, indptr, indices []int, data []float64) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if err := checkCompressed(cols, rows, indptr, indices, data); err != nil {
		return nil, err
	}

	return &CSC{
		rows:    rows,
		cols:    cols,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (s *CSC) Rows() int { return s.rows }

// Cols returns the number of columns. Complexity: O(1).
func (s *CSC) Cols() int { return s.cols }

// Kind returns KindCSC.
func (s *CSC) Kind() Kind { return KindCSC }

// NNZ returns the number of stored entries.
func (s *CSC) NNZ() int { return len(s.data) }

// At returns the element at (i, j), zero when the entry is not stored.
// Complexity: O(log nnz(column j)).
func (s *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= s.rows {
		return 0, ErrRowIndex
	}
	if j < 0 || j >= s.cols {
		return 0, ErrColIndex
	}
	lo, hi := s.indptr[j], s.indptr[j+1]
	k := lo + sort.SearchInts(s.indices[lo:hi], i)
	if k < hi && s.indices[k] == i {
		return s.data[k], nil
	}

	return 0, nil
}

// Gather returns a new CSC holding the listed rows in order. A source row
// may appear several times; each occurrence becomes its own output row, so
// the per-column row lists are rebuilt and re-sorted. Complexity:
// O(nnz of the selection · log k) where k is the largest duplication count.
func (s *CSC) Gather(rows []int) (Storage, error) {
	if err := checkRows(rows, s.rows); err != nil {
		return nil, err
	}
	// Output positions of every source row, in ascending output order.
	outPos := make([][]int, s.rows)
	for k, r := range rows {
		outPos[r] = append(outPos[r], k)
	}
	indptr := make([]int, 1, s.cols+1)
	var indices []int
	var data []float64
	type entry struct {
		row int
		val float64
	}
	col := make([]entry, 0)
	for j := 0; j < s.cols; j++ {
		col = col[:0]
		for k := s.indptr[j]; k < s.indptr[j+1]; k++ {
			for _, p := range outPos[s.indices[k]] {
				col = append(col, entry{row: p, val: s.data[k]})
			}
		}
		sort.Slice(col, func(a, b int) bool { return col[a].row < col[b].row })
		for _, e := range col {
			indices = append(indices, e.row)
			data = append(data, e.val)
		}
		indptr = append(indptr, len(indices))
	}

	return &CSC{rows: len(rows), cols: s.cols, indptr: indptr, indices: indices, data: data}, nil
}

// Append returns a new CSC with the receiver's rows followed by every
// block's rows; row indices of later blocks are shifted by the rows that
// precede them. Complexity: O(total nnz).
func (s *CSC) Append(blocks ...Storage) (Storage, error) {
	total := s.rows
	nnz := len(s.data)
	parts := make([]*CSC, 0, len(blocks)+1)
	parts = append(parts, s)
	for _, b := range blocks {
		if b.Kind() != KindCSC {
			return nil, ErrKindMismatch
		}
		if b.Cols() != s.cols {
			return nil, ErrShapeMismatch
		}
		bs := b.(*CSC)
		total += bs.rows
		nnz += len(bs.data)
		parts = append(parts, bs)
	}
	indptr := make([]int, 1, s.cols+1)
	indices := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	for j := 0; j < s.cols; j++ {
		offset := 0
		for _, p := range parts {
			for k := p.indptr[j]; k < p.indptr[j+1]; k++ {
				indices = append(indices, p.indices[k]+offset)
				data = append(data, p.data[k])
			}
			offset += p.rows
		}
		indptr = append(indptr, len(indices))
	}

	return &CSC{rows: total, cols: s.cols, indptr: indptr, indices: indices, data: data}, nil
}

// Densify returns a fresh dense copy of the matrix. Complexity: O(r·c).
func (s *CSC) Densify() *mat.Dense {
	out := mat.NewDense(s.rows, s.cols, nil)
	for j := 0; j < s.cols; j++ {
		for k := s.indptr[j]; k < s.indptr[j+1]; k++ {
			out.Set(s.indices[k], j, s.data[k])
		}
	}

	return out
}

// FromDense re-encodes a dense block as CSC, dropping exact zeros.
// Complexity: O(r·c).
func (s *CSC) FromDense(block *mat.Dense) Numeric {
	r, c := block.Dims()
	indptr := make([]int, 1, c+1)
	var indices []int
	var data []float64
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := block.At(i, j); v != 0 {
				indices = append(indices, i)
				data = append(data, v)
			}
		}
		indptr = append(indptr, len(indices))
	}

	return &CSC{rows: r, cols: c, indptr: indptr, indices: indices, data: data}
}

// ColumnVariance returns the population variance of every column over the
// given row subset, touching stored entries only. Duplicate rows in the
// selection are weighted by their multiplicity. Complexity:
// O(nnz + r + c).
func (s *CSC) ColumnVariance(rows []int) ([]float64, error) {
	if err := checkRows(rows, s.rows); err != nil {
		return nil, err
	}
	mult := make([]float64, s.rows)
	for _, r := range rows {
		mult[r]++
	}
	sum := make([]float64, s.cols)
	sumsq := make([]float64, s.cols)
	for j := 0; j < s.cols; j++ {
		for k := s.indptr[j]; k < s.indptr[j+1]; k++ {
			m := mult[s.indices[k]]
			if m == 0 {
				continue
			}
			v := s.data[k]
			sum[j] += m * v
			sumsq[j] += m * v * v
		}
	}

	return finishVariance(sum, sumsq, len(rows)), nil
}
