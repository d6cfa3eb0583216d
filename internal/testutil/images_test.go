package testutil

import "testing"

func TestConstant(t *testing.T) {
	a := Constant(2.5, 2, 3)
	RequireShape(t, a, 2, 3)
	for i, v := range a.Data {
		if v != 2.5 {
			t.Fatalf("Data[%d] = %v, want 2.5", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	a := Ramp(2, 2, 3)
	if got := a.At(1, 1, 2); got != 11 {
		t.Fatalf("At(1,1,2) = %v, want 11", got)
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 8, 8)
	b := DeterministicNoise(42, 1.0, 8, 8)
	RequireArrayEqual(t, a, b)

	for i, v := range a.Data {
		if v < -1 || v >= 1 {
			t.Fatalf("Data[%d] = %v out of range", i, v)
		}
	}
}

func TestImpulse(t *testing.T) {
	a := Impulse(3, 1, 2)
	var sum float64
	for _, v := range a.Data {
		sum += v
	}
	if sum != 1 || a.At(1, 2) != 1 {
		t.Fatalf("unexpected impulse: %v", a.Data)
	}

	if out := Impulse(3, 5, 0); out.Data[0] != 0 {
		t.Fatal("out-of-range impulse should be all zero")
	}
}
