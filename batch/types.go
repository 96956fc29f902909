package batch

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/sampler"
)

var (
	// ErrBatchSize is returned by New for a batch size below 1.
	ErrBatchSize = errors.New("batch: batch size must be at least 1")

	// ErrBatchIndex is returned by Batch for an index at or beyond Len.
	ErrBatchIndex = errors.New("batch: batch index out of range")
)

// SamplerFunc runs one resampling pass over d, drawing every random value
// from src. The generator passes its own stream, so a single seed governs
// both the resampling draws and the batch shuffle.
type SamplerFunc func(d dataset.Dataset, src rand.Source) (*sampler.Result, error)

// Options configures a Generator. Build with DefaultOptions and override
// fields as needed.
type Options struct {
	// Sampler produces the row selection to batch over. Nil means balanced
	// under-sampling with the Auto policy.
	Sampler SamplerFunc

	// BatchSize is the fixed number of rows per batch.
	BatchSize int

	// Sparse keeps sparse feature slices in their storage format instead
	// of densifying them per batch.
	Sparse bool

	// Seed initializes the stream shared by the sampler and the shuffle.
	Seed uint64
}

// DefaultOptions returns the canonical configuration: default sampler,
// batches of 32, densified slices, seed 0.
func DefaultOptions() Options {
	return Options{BatchSize: 32}
}

// Batch is one fixed-size slice of the balanced selection. W is nil
// exactly when the generator's dataset carries no weights.
type Batch struct {
	X dataset.Storage
	Y []int
	W []float64
}
