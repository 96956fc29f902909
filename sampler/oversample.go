package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/strategy"
)

// OverSample grows the targeted classes of d by duplicating donor rows
// drawn uniformly with replacement, optionally perturbed by the smoothed
// bootstrap. Every original row passes through unchanged; synthesized rows
// are appended per class in ascending class-code order and the whole
// output is then permuted once. Result.Indices records each output row's
// original row index, donors included.
//
// Complexity: O(n·f + add·f) dense, O(nnz + add·f) sparse.
func OverSample(d dataset.Dataset, opts Options) (*Result, error) {
	if _, err := dataset.New(d.X, d.Y, d.W); err != nil {
		return nil, err
	}
	resolved, err := strategy.Resolve(opts.Strategy, strategy.CountClasses(d.Y), strategy.OverSampling)
	if err != nil {
		return nil, err
	}
	targeted := resolved.Classes()

	shrink, err := shrinkagePerClass(opts, targeted)
	if err != nil {
		return nil, err
	}
	var num dataset.Numeric
	if opts.SmoothedBootstrap {
		if num, err = dataset.AsNumeric(d.X); err != nil {
			return nil, err
		}
	} else if !opts.SparseOutput {
		if _, err = dataset.AsNumeric(d.X); err != nil {
			return nil, err
		}
	}

	_, rowsByClass := indexByClass(d.Y)
	totalAdd := 0
	for _, c := range targeted {
		k, _ := resolved.Target(c)
		if k > 0 && len(rowsByClass[c]) == 0 {
			return nil, fmt.Errorf("%w: class %d has no donor rows", ErrEmptyClass, c)
		}
		totalAdd += k
	}

	// Validation is complete; from here on the stream is consumed in the
	// documented order.
	rnd := newRand(opts)
	n := d.Rows()
	indices := make([]int, n, n+totalAdd)
	for i := range indices {
		indices[i] = i
	}
	y := append(make([]int, 0, n+totalAdd), d.Y...)
	var w []float64
	if d.W != nil {
		w = append(make([]float64, 0, n+totalAdd), d.W...)
	}

	blocks := make([]dataset.Storage, 0, len(targeted))
	for _, c := range targeted {
		k, _ := resolved.Target(c)
		if k == 0 {
			continue
		}
		classRows := rowsByClass[c]
		donors := make([]int, k)
		for i := range donors {
			donors[i] = classRows[rnd.IntN(len(classRows))]
		}

		var block dataset.Storage
		if opts.SmoothedBootstrap {
			block, err = smoothedBlock(num, classRows, donors, shrink[c], rnd)
		} else {
			block, err = d.X.Gather(donors)
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)

		for _, donor := range donors {
			y = append(y, c)
			if w != nil {
				w = append(w, d.W[donor])
			}
			indices = append(indices, donor)
		}
	}

	assembled := d.X
	if len(blocks) > 0 {
		if assembled, err = d.X.Append(blocks...); err != nil {
			return nil, err
		}
	}

	return finalize(assembled, y, w, indices, rnd, opts.SparseOutput)
}

// shrinkagePerClass resolves the effective shrinkage of every targeted
// class before any sampling happens. Returns nil when smoothing is off.
func shrinkagePerClass(opts Options, classes []int) (map[int]float64, error) {
	if !opts.SmoothedBootstrap {
		return nil, nil
	}
	shrink := make(map[int]float64, len(classes))
	for _, c := range classes {
		s := opts.Shrinkage
		if opts.ShrinkageByClass != nil {
			v, ok := opts.ShrinkageByClass[c]
			if !ok {
				return nil, fmt.Errorf("%w: class %d", ErrMissingShrinkage, c)
			}
			s = v
		}
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: class %d has shrinkage %v", ErrBadShrinkage, c, s)
		}
		shrink[c] = s
	}

	return shrink, nil
}

// smoothedBlock synthesizes the perturbed donor block of one class: donor
// row + z ∘ (shrinkage × silverman(f, class rows) × per-feature std), with
// z drawn feature-wise from the standard normal. The block is materialized
// densely and re-encoded into the input storage format. A single-row class
// has zero std in every feature, so the block degenerates to exact copies.
func smoothedBlock(num dataset.Numeric, classRows, donors []int, shrink float64, rnd *rand.Rand) (dataset.Storage, error) {
	f := num.Cols()
	variance, err := num.ColumnVariance(classRows)
	if err != nil {
		return nil, err
	}
	factor := shrink * silverman(f, len(classRows))
	scale := make([]float64, f)
	for j, v := range variance {
		scale[j] = factor * math.Sqrt(v)
	}

	donorBlock, err := num.Gather(donors)
	if err != nil {
		return nil, err
	}
	donorDense := donorBlock.(dataset.Numeric).Densify()

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}
	noise := make([]float64, f)
	out := mat.NewDense(len(donors), f, nil)
	for i := range donors {
		for j := range noise {
			noise[j] = normal.Rand()
		}
		floats.Mul(noise, scale)
		floats.AddTo(out.RawRowView(i), donorDense.RawRowView(i), noise)
	}

	return num.FromDense(out), nil
}
