// Package sampler implements the resampling engine: random over-sampling
// with an optional smoothed bootstrap, random under-sampling, and a
// cleaning pass, all with per-row provenance.
//
// What:
//
//   - OverSample: per targeted class, draws donor rows uniformly with
//     replacement and appends them, verbatim or perturbed by
//     class-conditional Gaussian noise when Options.SmoothedBootstrap is
//     set. Original rows always survive.
//   - UnderSample: per targeted class, keeps a uniform subset drawn without
//     replacement; untargeted classes pass through.
//   - CleanSample: the under-sampling engine restricted to keyword
//     policies.
//   - Result: resampled features, labels, optional weights, and Indices,
//     the original row index every output row derives from (synthesized
//     rows carry their donor's index).
//
// The smoothed bootstrap perturbs each duplicated row with a diagonal
// Gaussian: scale per feature = shrinkage[class] × silverman(f, rows(class))
// × population std of the class's rows. A single-row class has zero scale,
// so its duplicates degenerate to exact copies. Sparse inputs stay sparse:
// only the synthesized block is materialized densely, then re-encoded into
// the input storage format before concatenation.
//
// Why:
//
//   - All randomness flows through one seeded stream in a fixed order
//     (classes ascending, donor draws before noise draws, one final
//     permutation last), so a fixed seed reproduces the output arrays and
//     Indices exactly.
//   - The final permutation shuffles assembled class blocks into the rest
//     of the data; features, labels, weights and Indices are permuted
//     identically, never independently.
//   - Every validation (strategy resolution, shrinkage coverage, donor
//     availability, shape alignment) happens before the first draw, so a
//     failure never yields a partially resampled result.
//
// Complexity: O(out·f) for dense data, O(nnz of the output) for sparse
// pass-through blocks; the smoothed path adds O(k·f) per class for k
// synthesized rows.
//
// Errors:
//
//   - strategy.ErrInvalidStrategy: the policy cannot be resolved.
//   - ErrEmptyClass: a targeted class has no donors (over) or fewer rows
//     than it should keep (under).
//   - ErrMissingShrinkage: ShrinkageByClass omits a targeted class.
//   - ErrBadShrinkage: a negative or non-finite shrinkage value.
//   - ErrSmoothedUnderSample: smoothing options on the under/clean engine.
//   - dataset.ErrShapeMismatch: misaligned feature/label/weight inputs.
//   - dataset.ErrNonNumeric: smoothed bootstrap or densification on a
//     Table storage.
//
// All functions are pure: no state survives a call, and the returned
// Result is owned by the caller. Concurrent calls need no synchronization.
package sampler
