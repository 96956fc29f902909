// Package batch adapts one resampling pass into a deterministic sequence
// of fixed-size, class-balanced batches for external training loops.
//
// What:
//
//   - New runs a sampler once over the input dataset (balanced
//     under-sampling with the Auto policy unless Options.Sampler plugs in
//     another), takes the resulting provenance indices, and shuffles them
//     once.
//   - Generator.Len reports floor(resampled rows / batch size); rows beyond
//     the last full batch are dropped, never padded.
//   - Generator.Batch(i) slices the precomputed index order at
//     [i·size, (i+1)·size) and gathers the ORIGINAL dataset's rows at those
//     indices, so batches carry the caller's real rows selected by
//     provenance. Sparse feature slices are densified unless Options.Sparse
//     asks to keep them; tables pass through as they are.
//
// Why:
//
//   - One seed governs everything: the generator hands its own random
//     stream to the sampler, then continues the same stream for the
//     shuffle. Equal seeds reproduce the exact batch sequence.
//   - Indexing is stateless and idempotent: the order is fixed at
//     construction, so Batch(i) returns identical content every time it is
//     asked, in any order, from any number of goroutines.
//   - A batch omits the weight component exactly when the dataset carries
//     no weights, preserving the caller-visible two-against-three component
//     shape difference.
//
// Complexity: construction costs one resampling pass plus one shuffle;
// each Batch call is O(size·f) dense or O(nnz of the slice) sparse.
//
// Errors:
//
//   - ErrBatchSize: a batch size below 1.
//   - ErrBatchIndex: an index at or beyond Len.
//   - Sampler and shape failures surface unchanged from New.
package batch
