package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-conv2d/dsp/core"
)

// Constant returns an array of the given shape filled with value.
func Constant(value float64, shape ...int) *core.Array {
	a := core.NewArray(shape...)
	for i := range a.Data {
		a.Data[i] = value
	}
	return a
}

// Ones returns an array of the given shape filled with 1.0.
func Ones(shape ...int) *core.Array {
	return Constant(1.0, shape...)
}

// Ramp returns an array whose elements count up from 0 in storage order.
func Ramp(shape ...int) *core.Array {
	a := core.NewArray(shape...)
	for i := range a.Data {
		a.Data[i] = float64(i)
	}
	return a
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, shape ...int) *core.Array {
	a := core.NewArray(shape...)
	rng := rand.New(rand.NewSource(seed))
	for i := range a.Data {
		a.Data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return a
}

// Impulse returns a square side x side matrix that is zero except for a 1 at (row, col).
func Impulse(side, row, col int) *core.Array {
	a := core.NewArray(side, side)
	if row >= 0 && row < side && col >= 0 && col < side {
		a.Data[row*side+col] = 1
	}
	return a
}
