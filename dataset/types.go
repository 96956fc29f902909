package dataset

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for dataset construction and storage operations.
var (
	// ErrBadShape indicates a requested shape with non-positive dimensions.
	ErrBadShape = errors.New("dataset: invalid shape")

	// ErrShapeMismatch indicates row-aligned inputs whose lengths disagree,
	// or an Append across storages of different widths.
	ErrShapeMismatch = errors.New("dataset: shape mismatch between aligned arrays")

	// ErrRowIndex indicates a row index outside [0, Rows).
	ErrRowIndex = errors.New("dataset: row index out of range")

	// ErrColIndex indicates a column index outside [0, Cols).
	ErrColIndex = errors.New("dataset: column index out of range")

	// ErrEmptySelection indicates Gather was called with an empty index list.
	ErrEmptySelection = errors.New("dataset: empty row selection")

	// ErrKindMismatch indicates an Append across different storage kinds.
	ErrKindMismatch = errors.New("dataset: storage kinds differ")

	// ErrSchemaMismatch indicates an Append across tables whose column
	// schemas (arity or column types) differ.
	ErrSchemaMismatch = errors.New("dataset: table schemas differ")

	// ErrSparseStructure indicates malformed compressed sparse structure:
	// a broken index pointer, unsorted or duplicated minor indices, or
	// entries outside the declared shape.
	ErrSparseStructure = errors.New("dataset: malformed sparse structure")

	// ErrNonNumeric indicates a numeric capability was requested from a
	// storage kind that does not provide one (Table).
	ErrNonNumeric = errors.New("dataset: storage kind does not support numeric operations")
)

// Kind tags the storage representation of a feature matrix.
type Kind int

const (
	// KindDense is a row-major dense matrix backed by gonum's mat.Dense.
	KindDense Kind = iota
	// KindCSR is a compressed sparse row matrix.
	KindCSR
	// KindCSC is a compressed sparse column matrix.
	KindCSC
	// KindTable is an ordered collection of typed columns, allowing a mix of
	// numeric and categorical (string) features.
	KindTable
)

// String returns the canonical name of the storage kind.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindCSR:
		return "csr"
	case KindCSC:
		return "csc"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Storage is the capability surface shared by every feature-matrix
// representation. Implementations are immutable: Gather and Append return
// fresh values and never alias the receiver.
type Storage interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of feature columns.
	Cols() int

	// Kind returns the representation tag.
	Kind() Kind

	// Gather returns a new storage holding the listed rows in order.
	// Indices may repeat (donor duplication) and may permute (shuffling).
	// Returns ErrEmptySelection for an empty list, ErrRowIndex for an
	// index outside [0, Rows).
	Gather(rows []int) (Storage, error)

	// Append returns a new storage holding the receiver's rows followed by
	// every block's rows. All operands must share the receiver's Kind
	// (ErrKindMismatch) and width (ErrShapeMismatch).
	Append(blocks ...Storage) (Storage, error)
}

// Numeric extends Storage with the capabilities the smoothed bootstrap and
// batch densification require. Dense, CSR and CSC implement it; Table does
// not.
type Numeric interface {
	Storage

	// At returns the element at (i, j), or ErrRowIndex/ErrColIndex.
	At(i, j int) (float64, error)

	// Densify returns a fresh dense copy of the full matrix.
	Densify() *mat.Dense

	// FromDense re-encodes a dense block into the receiver's storage
	// format. The receiver's own data is not involved; it acts as a
	// format factory so synthesized blocks can be appended to the input.
	FromDense(d *mat.Dense) Numeric

	// ColumnVariance returns the population variance of every column over
	// the given row subset, without densifying the full matrix. A one-row
	// subset yields all zeros.
	ColumnVariance(rows []int) ([]float64, error)
}

// checkRows validates a Gather selection against the row count n.
func checkRows(rows []int, n int) error {
	if len(rows) == 0 {
		return ErrEmptySelection
	}
	for _, r := range rows {
		if r < 0 || r >= n {
			return ErrRowIndex
		}
	}

	return nil
}
