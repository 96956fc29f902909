package sampler_test

import (
	"testing"

	"github.com/katalvlaran/resample/dataset"
	"github.com/katalvlaran/resample/sampler"
)

// benchDataset builds an n-row, f-feature dense dataset where the last
// tenth of the rows forms the minority class.
func benchDataset(b *testing.B, n, f int) dataset.Dataset {
	b.Helper()
	data := make([]float64, n*f)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < f; j++ {
			data[i*f+j] = float64((i*f + j) % 13)
		}
		if i >= n*9/10 {
			y[i] = 1
		}
	}
	x, err := dataset.NewDense(n, f, data)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	d, err := dataset.New(x, y, nil)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return d
}

// benchmarkOverSample runs OverSample on an n×f dataset using opts.
// It resets the timer before entering the loop and fails on errors.
func benchmarkOverSample(b *testing.B, n, f int, opts sampler.Options) {
	d := benchDataset(b, n, f)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampler.OverSample(d, opts); err != nil {
			b.Fatalf("OverSample failed: %v", err)
		}
	}
}

// benchmarkUnderSample runs UnderSample on an n×f dataset using opts.
func benchmarkUnderSample(b *testing.B, n, f int, opts sampler.Options) {
	d := benchDataset(b, n, f)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampler.UnderSample(d, opts); err != nil {
			b.Fatalf("UnderSample failed: %v", err)
		}
	}
}

// BenchmarkOverSample_PlainSmall benchmarks verbatim duplication on 1k×20.
func BenchmarkOverSample_PlainSmall(b *testing.B) {
	benchmarkOverSample(b, 1_000, 20, sampler.DefaultOptions())
}

// BenchmarkOverSample_PlainLarge benchmarks verbatim duplication on 50k×20.
func BenchmarkOverSample_PlainLarge(b *testing.B) {
	benchmarkOverSample(b, 50_000, 20, sampler.DefaultOptions())
}

// BenchmarkOverSample_SmoothedSmall benchmarks the Gaussian path on 1k×20.
func BenchmarkOverSample_SmoothedSmall(b *testing.B) {
	opts := sampler.DefaultOptions()
	opts.SmoothedBootstrap = true
	benchmarkOverSample(b, 1_000, 20, opts)
}

// BenchmarkOverSample_SmoothedLarge benchmarks the Gaussian path on 50k×20.
func BenchmarkOverSample_SmoothedLarge(b *testing.B) {
	opts := sampler.DefaultOptions()
	opts.SmoothedBootstrap = true
	benchmarkOverSample(b, 50_000, 20, opts)
}

// BenchmarkUnderSample_Small benchmarks subset selection on 1k×20.
func BenchmarkUnderSample_Small(b *testing.B) {
	benchmarkUnderSample(b, 1_000, 20, sampler.DefaultOptions())
}

// BenchmarkUnderSample_Large benchmarks subset selection on 50k×20.
func BenchmarkUnderSample_Large(b *testing.B) {
	benchmarkUnderSample(b, 50_000, 20, sampler.DefaultOptions())
}
