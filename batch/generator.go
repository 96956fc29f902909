package batch

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/sampler"
)

// Generator is an immutable, restartable sequence of balanced batches.
// All state is fixed at construction, so concurrent Batch calls need no
// synchronization.
type Generator struct {
	d       dataset.Dataset
	indices []int
	size    int
	sparse  bool
}

// New builds a Generator over d: it runs the sampler once, claims the
// provenance indices of the result, and shuffles them with the same stream
// the sampler drew from. Sampler and validation errors surface unchanged.
func New(d dataset.Dataset, opts Options) (*Generator, error) {
	if _, err := dataset.New(d.X, d.Y, d.W); err != nil {
		return nil, err
	}
	if opts.BatchSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBatchSize, opts.BatchSize)
	}

	rnd := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	sample := opts.Sampler
	if sample == nil {
		sample = balancedUnderSampler
	}
	res, err := sample(d, rnd)
	if err != nil {
		return nil, err
	}

	indices := append([]int(nil), res.Indices...)
	rnd.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	return &Generator{d: d, indices: indices, size: opts.BatchSize, sparse: opts.Sparse}, nil
}

// balancedUnderSampler is the default selection: under-sampling with the
// Auto policy, fed by the generator's stream.
func balancedUnderSampler(d dataset.Dataset, src rand.Source) (*sampler.Result, error) {
	opts := sampler.DefaultOptions()
	opts.Src = src

	return sampler.UnderSample(d, opts)
}

// Len returns the number of full batches; trailing rows beyond the last
// full batch are dropped.
func (g *Generator) Len() int { return len(g.indices) / g.size }

// Batch returns the i-th batch: the original dataset's rows at the
// precomputed index window [i·size, (i+1)·size). Calls are stateless and
// idempotent.
func (g *Generator) Batch(i int) (Batch, error) {
	if i < 0 || i >= g.Len() {
		return Batch{}, fmt.Errorf("%w: %d of %d", ErrBatchIndex, i, g.Len())
	}
	window := g.indices[i*g.size : (i+1)*g.size]
	sub, err := g.d.Gather(window)
	if err != nil {
		return Batch{}, err
	}
	x, err := densifySlice(sub.X, g.sparse)
	if err != nil {
		return Batch{}, err
	}

	return Batch{X: x, Y: sub.Y, W: sub.W}, nil
}

// densifySlice converts sparse batch features to dense unless sparsity is
// requested; dense matrices and tables pass through.
func densifySlice(s dataset.Storage, sparse bool) (dataset.Storage, error) {
	if sparse {
		return s, nil
	}
	switch s.Kind() {
	case dataset.KindCSR, dataset.KindCSC:
		m, err := dataset.Densify(s)
		if err != nil {
			return nil, err
		}

		return dataset.WrapDense(m), nil
	default:
		return s, nil
	}
}
