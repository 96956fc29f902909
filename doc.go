// Package resample rebalances class-imbalanced tabular datasets by
// duplicating, synthesizing or discarding rows until each class carries
// the share you asked for.
//
// 🚀 What is resample?
//
//	A deterministic resampling toolkit that brings together:
//		• Storage layer: dense matrices, CSR/CSC sparse encodings, mixed-column tables
//		• Target normalization: int, string or one-hot indicator labels to class codes
//		• Strategy resolution: keywords, ratios or explicit per-class counts
//		• Random over-sampling: exact duplication or smoothed-bootstrap synthesis
//		• Random under-sampling and cleaning: subset selection without replacement
//		• Balanced batches: fixed-size batch views for external training loops
//
// ✨ Why choose resample?
//
//   - Reproducible by contract: one seeded stream, fixed draw order, so
//     equal seeds give byte-equal outputs
//   - Format-preserving: sparse in, sparse out, unless you ask otherwise
//   - Provenance built in: every output row names the original row it
//     derives from
//   - Pure functions: no hidden state, safe for concurrent use
//
// Under the hood, everything is organized under five subpackages:
//
//	dataset/  -- feature storages plus the aligned {X, Y, W} bundle
//	strategy/ -- per-class target-count resolution
//	target/   -- label normalization to integer class codes and back
//	sampler/  -- over-, under- and clean-sampling engines
//	batch/    -- balanced batch sequences over one resampling pass
//
// Quick example:
//
//	x, _ := dataset.NewDense(rows, cols, values)
//	d, _ := dataset.New(x, labels, nil)
//
//	opts := sampler.DefaultOptions()
//	opts.Seed = 42
//	opts.SmoothedBootstrap = true
//
//	res, _ := sampler.OverSample(d, opts)
//	// res.X, res.Y hold the balanced rows; res.Indices names each donor.
//
// Dive into each subpackage's doc.go for contracts, complexity notes and
// error semantics.
//
//	go get github.com/katalvlaran/resample
package resample
