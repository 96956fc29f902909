// Package dataset provides the row-oriented feature storage used by every
// resampling component: dense matrices, compressed sparse rows/columns, and
// mixed numeric/categorical tables, all behind one capability interface.
//
// What:
//
//   - Storage: the common surface (Rows, Cols, Kind, Gather, Append) shared by
//     every storage kind. Gather selects a row multiset (duplicates allowed),
//     which is how donor duplication, under-sampling and output permutation
//     are all expressed.
//   - Numeric: Storage plus the numeric capabilities the smoothed bootstrap
//     needs (At, Densify, FromDense, ColumnVariance). Implemented by Dense,
//     CSR and CSC; not by Table.
//   - Dataset: a validated {X, Y, W} bundle (features, integer class codes,
//     optional per-row weights), guaranteed row-aligned at construction.
//
// Why:
//
//   - Resampling must preserve the caller's storage representation: sparse in,
//     sparse out, same format. Tagging each storage with a Kind and selecting
//     behavior through the interface keeps the samplers free of type switches.
//   - Per-class scale estimation must not densify a large sparse matrix;
//     ColumnVariance works on stored entries only.
//
// Complexity:
//
//   - Gather: O(k) rows copied for Dense, O(nnz of the selection) for CSR,
//     O(nnz of the selection · log k) for CSC (per-column re-sorting).
//   - Append: linear in the total size of the operands.
//   - ColumnVariance: one pass over the selected rows' stored entries.
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions at construction.
//   - ErrShapeMismatch: misaligned rows/columns between sibling arrays.
//   - ErrRowIndex, ErrColIndex: index outside the valid range.
//   - ErrEmptySelection: Gather called with no indices.
//   - ErrKindMismatch: Append across different storage kinds.
//   - ErrSchemaMismatch: Append across tables with different column schemas.
//   - ErrSparseStructure: malformed CSR/CSC structure at construction.
//   - ErrNonNumeric: a numeric capability requested from a Table.
//
// All storages are immutable once constructed; Gather and Append return new
// values and never alias the receiver's backing slices.
package dataset
