package sampler

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/strategy"
)

var (
	// ErrEmptyClass is returned when a targeted class has no donor rows to
	// over-sample from, or fewer rows than an under-sampling policy keeps.
	ErrEmptyClass = errors.New("sampler: class has too few rows for the requested operation")

	// ErrMissingShrinkage is returned when ShrinkageByClass omits a class
	// named by the resolved strategy. A missing entry is never defaulted.
	ErrMissingShrinkage = errors.New("sampler: shrinkage map does not cover a targeted class")

	// ErrBadShrinkage is returned for a negative or non-finite shrinkage.
	ErrBadShrinkage = errors.New("sampler: shrinkage must be non-negative and finite")

	// ErrSmoothedUnderSample is returned when smoothing options are set on
	// the under- or clean-sampling engine.
	ErrSmoothedUnderSample = errors.New("sampler: smoothed bootstrap applies to over-sampling only")
)

// Options configures one resampling call. Build with DefaultOptions and
// override fields as needed; the zero value disables smoothing but also
// densifies sparse results (SparseOutput false).
type Options struct {
	// Strategy is the per-class target policy. The zero value is
	// strategy.ByKeyword(strategy.Auto).
	Strategy strategy.Spec

	// Seed initializes the random stream. Two calls with equal inputs and
	// equal seeds produce identical results, Indices included.
	Seed uint64

	// Src, when non-nil, overrides Seed as the random source.
	Src rand.Source

	// SmoothedBootstrap perturbs duplicated rows with class-conditional
	// Gaussian noise instead of copying them verbatim (over-sampling only).
	SmoothedBootstrap bool

	// Shrinkage scales the smoothed-bootstrap perturbation for every class.
	// Zero collapses the noise to exact duplication.
	Shrinkage float64

	// ShrinkageByClass overrides Shrinkage per class. When set, it must
	// cover every class the strategy resolves, else ErrMissingShrinkage.
	ShrinkageByClass map[int]float64

	// SparseOutput preserves the input storage format. When false, numeric
	// results are densified; Table inputs cannot be.
	SparseOutput bool
}

// DefaultOptions returns the canonical configuration: Auto strategy,
// seed 0, no smoothing, unit shrinkage, storage format preserved.
func DefaultOptions() Options {
	return Options{
		Strategy:     strategy.ByKeyword(strategy.Auto),
		Shrinkage:    1.0,
		SparseOutput: true,
	}
}

// Result is one resampling outcome. Indices records, for every output row,
// the original row index it derives from: donors for synthesized rows,
// kept rows for under-sampling. len(Indices) always equals the output row
// count, and W is nil exactly when the input was unweighted.
type Result struct {
	X       dataset.Storage
	Y       []int
	W       []float64
	Indices []int
}

// Rows returns the number of resampled rows.
func (r *Result) Rows() int { return len(r.Y) }
