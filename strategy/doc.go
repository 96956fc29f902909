// Package strategy resolves a user-facing sampling policy into concrete
// per-class sample counts.
//
// What:
//
//   - Spec: one of three policy forms, built by constructor:
//     ByKeyword (named equalization), ByRatio (target relative to the
//     reference class), ByCounts (explicit per-class counts).
//   - Mode: OverSampling, UnderSampling or CleanSampling; the same keyword
//     resolves differently per mode.
//   - Resolve: pure function from (Spec, observed counts, Mode) to an
//     immutable Resolved mapping. For over-sampling the resolved values are
//     samples to ADD per class; for under- and clean-sampling they are
//     samples to KEEP.
//   - CountClasses: observed per-class counts of a code vector.
//
// Why:
//
//   - Keyword semantics pivot on a reference class: the majority count for
//     over-sampling, the minority count for under- and clean-sampling.
//     Auto means NotMajority when over-sampling and NotMinority otherwise.
//   - Minority selects the single smallest class and Majority the single
//     largest; when that extreme count is shared by several classes the
//     selection is ambiguous and resolution fails rather than picking one
//     arbitrarily. The Not* keywords instead exclude every class sitting at
//     the extreme count, which stays well defined under ties.
//   - Ratio and explicit-count forms are rejected for clean-sampling; a
//     cleaning pass decides which rows to drop on its own terms, so only
//     class selection via keyword is meaningful.
//
// Complexity: all resolutions are O(k log k) in the number of classes.
//
// Errors: every failure is ErrInvalidStrategy: empty observed counts, a
// keyword invalid for the mode, an ambiguous extreme, a non-finite or
// non-positive ratio, a ratio demanding removal from an over-sampler or
// growth from an under-sampler, an explicit count for an unobserved class,
// or a negative explicit count.
package strategy
