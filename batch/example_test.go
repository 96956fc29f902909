package batch_test

import (
	"fmt"

	"github.com/katalvlaran/resample/batch"
	"github.com/katalvlaran/resample/dataset"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Twelve rows with an 8:4 class imbalance, streamed as balanced batches
//	of four. The default sampler under-samples class 0 to four rows, so
//	eight balanced rows remain: two full batches.
//
// Options:
//   - BatchSize = 4
//   - Seed = 42   (fixes the selection and the batch order)
//
// Use case:
//
//	Feeding a training loop that expects fixed-size, class-balanced
//	mini-batches.
//
// Complexity: one resampling pass at construction, O(size·f) per batch
func ExampleNew() {
	x, _ := dataset.NewDense(12, 1, []float64{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
	})
	y := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1}
	d, _ := dataset.New(x, y, nil)

	opts := batch.DefaultOptions()
	opts.BatchSize = 4
	opts.Seed = 42

	g, err := batch.New(d, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("batches=%d\n", g.Len())
	for i := 0; i < g.Len(); i++ {
		b, _ := g.Batch(i)
		fmt.Printf("batch %d: %d rows\n", i, len(b.Y))
	}
	// Output:
	// batches=2
	// batch 0: 4 rows
	// batch 1: 4 rows
}
