package core

import (
	"errors"
	"fmt"
)

// Errors returned by Array constructors and validation.
var (
	ErrShapeMismatch = errors.New("core: data length does not match shape")
	ErrRagged        = errors.New("core: ragged input")
)

// Array is a dense, row-major array of float64 values.
//
// The last axis varies fastest, so a height x width x channel image stores
// the channels of one pixel next to each other.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray returns a zero-filled array with the given shape.
// It panics if any dimension is negative.
func NewArray(shape ...int) *Array {
	return &Array{
		Shape: append([]int(nil), shape...),
		Data:  make([]float64, volume(shape)),
	}
}

// FromMatrix builds a 2-D array from rows. All rows must have equal length.
func FromMatrix(rows [][]float64) (*Array, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	a := NewArray(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, r, len(row), cols)
		}
		copy(a.Data[r*cols:], row)
	}

	return a, nil
}

// FromImage builds a 3-D array from pixels indexed as [row][col][channel].
// Every pixel must carry the same number of channels.
func FromImage(pixels [][][]float64) (*Array, error) {
	rows := len(pixels)
	cols, channels := 0, 0
	if rows > 0 {
		cols = len(pixels[0])
		if cols > 0 {
			channels = len(pixels[0][0])
		}
	}

	a := NewArray(rows, cols, channels)
	for r, row := range pixels {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrRagged, r, len(row), cols)
		}
		for c, px := range row {
			if len(px) != channels {
				return nil, fmt.Errorf("%w: pixel (%d,%d) has %d channels, want %d",
					ErrRagged, r, c, len(px), channels)
			}
			copy(a.Data[(r*cols+c)*channels:], px)
		}
	}

	return a, nil
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.Shape)
}

// Len returns the number of elements implied by Shape.
func (a *Array) Len() int {
	return volume(a.Shape)
}

// Validate reports whether Shape is non-negative and matches len(Data).
func (a *Array) Validate() error {
	n := 1
	for i, d := range a.Shape {
		if d < 0 {
			return fmt.Errorf("%w: dimension %d is negative (%d)", ErrShapeMismatch, i, d)
		}
		n *= d
	}
	if n != len(a.Data) {
		return fmt.Errorf("%w: shape %v holds %d values, data has %d", ErrShapeMismatch, a.Shape, n, len(a.Data))
	}
	return nil
}

// Offset returns the position of idx in Data.
// It panics if idx has the wrong rank or is out of range.
func (a *Array) Offset(idx ...int) int {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf("core: index rank %d, array rank %d", len(idx), len(a.Shape)))
	}

	off := 0
	for i, v := range idx {
		if v < 0 || v >= a.Shape[i] {
			panic(fmt.Sprintf("core: index %d out of range [0,%d) on axis %d", v, a.Shape[i], i))
		}
		off = off*a.Shape[i] + v
	}
	return off
}

// At returns the element at idx.
func (a *Array) At(idx ...int) float64 {
	return a.Data[a.Offset(idx...)]
}

// Set stores v at idx.
func (a *Array) Set(v float64, idx ...int) {
	a.Data[a.Offset(idx...)] = v
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	return &Array{
		Shape: append([]int(nil), a.Shape...),
		Data:  append([]float64(nil), a.Data...),
	}
}

// SameShape reports whether a and b have identical shapes.
func (a *Array) SameShape(b *Array) bool {
	return SameShape(a.Shape, b.Shape)
}

// Matrix returns a 2-D array as rows. The rows alias Data.
// It returns nil if a is not 2-D.
func (a *Array) Matrix() [][]float64 {
	if len(a.Shape) != 2 {
		return nil
	}

	rows, cols := a.Shape[0], a.Shape[1]
	out := make([][]float64, rows)
	for r := range out {
		out[r] = a.Data[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return out
}

// SameShape reports whether two shapes are identical.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func volume(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			panic(fmt.Sprintf("core: negative dimension %d in shape %v", d, shape))
		}
		n *= d
	}
	return n
}
