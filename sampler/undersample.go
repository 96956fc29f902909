package sampler

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/strategy"
)

// UnderSample shrinks the targeted classes of d to their resolved keep
// counts, drawing without replacement; untargeted classes pass through
// unchanged. Result.Indices is the set of kept original row indices, no
// repeats, permuted identically to the rows. Smoothing options are
// rejected.
//
// Complexity: O(out·f) dense, O(nnz of the output) sparse.
func UnderSample(d dataset.Dataset, opts Options) (*Result, error) {
	return underEngine(d, opts, strategy.UnderSampling)
}

// CleanSample runs the under-sampling engine with clean-mode strategy
// resolution, which accepts keyword policies only.
func CleanSample(d dataset.Dataset, opts Options) (*Result, error) {
	return underEngine(d, opts, strategy.CleanSampling)
}

func underEngine(d dataset.Dataset, opts Options, mode strategy.Mode) (*Result, error) {
	if _, err := dataset.New(d.X, d.Y, d.W); err != nil {
		return nil, err
	}
	if opts.SmoothedBootstrap || opts.ShrinkageByClass != nil {
		return nil, ErrSmoothedUnderSample
	}
	if !opts.SparseOutput {
		if _, err := dataset.AsNumeric(d.X); err != nil {
			return nil, err
		}
	}
	resolved, err := strategy.Resolve(opts.Strategy, strategy.CountClasses(d.Y), mode)
	if err != nil {
		return nil, err
	}

	classes, rowsByClass := indexByClass(d.Y)
	kept := 0
	for _, c := range classes {
		if keep, ok := resolved.Target(c); ok {
			if keep > len(rowsByClass[c]) {
				return nil, fmt.Errorf("%w: class %d has %d rows, %d requested to keep",
					ErrEmptyClass, c, len(rowsByClass[c]), keep)
			}
			kept += keep
		} else {
			kept += len(rowsByClass[c])
		}
	}
	if kept == 0 {
		return nil, fmt.Errorf("%w: policy keeps no rows", ErrEmptyClass)
	}

	rnd := newRand(opts)
	order := make([]int, 0, kept)
	for _, c := range classes {
		rows := rowsByClass[c]
		if keep, ok := resolved.Target(c); ok {
			order = append(order, drawWithoutReplacement(rnd, rows, keep)...)
		} else {
			order = append(order, rows...)
		}
	}

	// One final permutation, composed with the selection so features,
	// labels, weights and provenance move together.
	perm := rnd.Perm(len(order))
	composed := make([]int, len(order))
	for i, p := range perm {
		composed[i] = order[p]
	}

	sub, err := d.Gather(composed)
	if err != nil {
		return nil, err
	}
	x, err := maybeDensify(sub.X, opts.SparseOutput)
	if err != nil {
		return nil, err
	}

	return &Result{X: x, Y: sub.Y, W: sub.W, Indices: composed}, nil
}

// drawWithoutReplacement returns k distinct values drawn uniformly from
// pool via a partial Fisher-Yates pass. pool is not mutated.
func drawWithoutReplacement(rnd *rand.Rand, pool []int, k int) []int {
	p := append([]int(nil), pool...)
	for i := 0; i < k; i++ {
		j := i + rnd.IntN(len(p)-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k]
}
