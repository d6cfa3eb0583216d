package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-conv2d/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireArrayNearlyEqual fails t if the arrays differ in shape or if any
// element pair exceeds eps. Failures report the multi-dimensional index.
func RequireArrayNearlyEqual(t *testing.T, got, want *core.Array, eps float64) {
	t.Helper()
	RequireShape(t, got, want.Shape...)
	for i := range got.Data {
		diff := math.Abs(got.Data[i] - want.Data[i])
		if diff > eps {
			t.Fatalf("index %v: got %v, want %v (diff %v > eps %v)",
				unravel(i, got.Shape), got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireArrayEqual fails t unless got and want are bit-identical.
func RequireArrayEqual(t *testing.T, got, want *core.Array) {
	t.Helper()
	RequireShape(t, got, want.Shape...)
	for i := range got.Data {
		if math.Float64bits(got.Data[i]) != math.Float64bits(want.Data[i]) {
			t.Fatalf("index %v: got %v, want %v", unravel(i, got.Shape), got.Data[i], want.Data[i])
		}
	}
}

// RequireShape fails t if a is nil or its shape differs from shape.
func RequireShape(t *testing.T, a *core.Array, shape ...int) {
	t.Helper()
	if a == nil {
		t.Fatalf("array is nil, want shape %v", shape)
	}
	if !core.SameShape(a.Shape, shape) {
		t.Fatalf("shape = %v, want %v", a.Shape, shape)
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("invalid array: %v", err)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func unravel(i int, shape []int) []int {
	idx := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] == 0 {
			continue
		}
		idx[d] = i % shape[d]
		i /= shape[d]
	}
	return idx
}
