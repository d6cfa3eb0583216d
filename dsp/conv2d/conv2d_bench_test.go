package conv2d

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-conv2d/dsp/core"
	"github.com/cwbudde/algo-conv2d/internal/testutil"
)

// Benchmark direct evaluation with various sizes.
func BenchmarkDirect(b *testing.B) {
	sizes := []struct {
		side   int
		kernel int
	}{
		{64, 3},
		{64, 7},
		{256, 3},
		{256, 7},
		{256, 15},
	}

	for _, size := range sizes {
		image := testutil.DeterministicNoise(1, 1.0, size.side, size.side)
		kernel := testutil.DeterministicNoise(2, 1.0, size.kernel, size.kernel)

		b.Run(fmt.Sprintf("side=%d_kernel=%d", size.side, size.kernel), func(b *testing.B) {
			benchmarkConvolve(b, image, kernel, WithStrategy(StrategyDirect))
		})
	}
}

// Benchmark frequency-domain evaluation with various sizes.
func BenchmarkFFT(b *testing.B) {
	sizes := []struct {
		side   int
		kernel int
	}{
		{64, 7},
		{256, 7},
		{256, 15},
		{256, 31},
	}

	for _, size := range sizes {
		image := testutil.DeterministicNoise(1, 1.0, size.side, size.side)
		kernel := testutil.DeterministicNoise(2, 1.0, size.kernel, size.kernel)

		b.Run(fmt.Sprintf("side=%d_kernel=%d", size.side, size.kernel), func(b *testing.B) {
			benchmarkConvolve(b, image, kernel, WithStrategy(StrategyFFT))
		})
	}
}

// Benchmark row-parallel direct evaluation on a color image.
func BenchmarkDirectWorkers(b *testing.B) {
	image := testutil.DeterministicNoise(1, 1.0, 256, 256, 3)
	kernel := testutil.DeterministicNoise(2, 1.0, 5, 5)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			benchmarkConvolve(b, image, kernel, WithStrategy(StrategyDirect), WithWorkers(workers))
		})
	}
}

func benchmarkConvolve(b *testing.B, image, kernel *core.Array, opts ...Option) {
	b.Helper()

	c, err := New(image, kernel, opts...)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	dst := core.NewArray(c.OutputShape()...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.ConvolveTo(dst); err != nil {
			b.Fatal(err)
		}
	}
}
