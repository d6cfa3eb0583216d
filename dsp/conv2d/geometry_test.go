package conv2d

import (
	"errors"
	"math"
	"testing"
)

func TestOutputSize(t *testing.T) {
	tests := []struct {
		side, kernel, stride int
		expected             int
	}{
		{4, 2, 1, 3},
		{3, 2, 1, 2},
		{4, 2, 2, 2},
		{5, 3, 2, 2},
		{6, 3, 2, 2},
		{28, 5, 1, 24},
		{32, 4, 3, 10},
		{4, 1, 1, 4},
		{2, 3, 1, 0},
		{4, 2, 0, 0},
		{4, 2, math.MaxInt, 1},
		{math.MaxInt, 1, math.MaxInt, 1},
		{math.MaxInt, 1, 1, math.MaxInt},
	}

	for _, tt := range tests {
		if got := OutputSize(tt.side, tt.kernel, tt.stride); got != tt.expected {
			t.Errorf("OutputSize(%d, %d, %d) = %d, want %d", tt.side, tt.kernel, tt.stride, got, tt.expected)
		}
	}
}

func TestCheckGeometry(t *testing.T) {
	tests := []struct {
		name                 string
		side, kernel, stride int
		want                 error
	}{
		{name: "fits", side: 4, kernel: 2, stride: 1},
		{name: "kernel 1", side: 5, kernel: 1, stride: 1},
		{name: "tight fit", side: 5, kernel: 4, stride: 1},
		{name: "odd side mixed parity", side: 5, kernel: 3, stride: 2},
		{name: "odd side stride 3 even kernel", side: 7, kernel: 2, stride: 3},
		{name: "even side same parity", side: 6, kernel: 2, stride: 2},
		{name: "kernel too large", side: 4, kernel: 5, stride: 1, want: ErrKernelTooLarge},
		{name: "kernel equals side", side: 3, kernel: 3, stride: 1, want: ErrStrideTooLarge},
		{name: "stride too large", side: 8, kernel: 3, stride: 6, want: ErrStrideTooLarge},
		{name: "parity odd/odd", side: 7, kernel: 3, stride: 3, want: ErrStrideParity},
		{name: "parity even/even", side: 5, kernel: 2, stride: 2, want: ErrStrideParity},
		{name: "max stride", side: 4, kernel: 2, stride: math.MaxInt, want: ErrStrideTooLarge},
		{name: "max stride unit kernel", side: 9, kernel: 1, stride: math.MaxInt, want: ErrStrideTooLarge},
		{name: "zero stride", side: 4, kernel: 2, stride: 0, want: ErrInvalidStride},
		{name: "negative stride", side: 4, kernel: 2, stride: -1, want: ErrInvalidStride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGeometry(tt.side, tt.kernel, tt.stride)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrValue) || errors.Is(err, ErrShape) {
				t.Fatalf("err = %v, want a value error", err)
			}
		})
	}
}

func TestCheckGeometryAcceptsEveryEvenSide(t *testing.T) {
	for side := 4; side <= 32; side += 2 {
		for kernel := 1; kernel < side; kernel++ {
			for stride := 1; kernel+stride <= side; stride++ {
				if err := CheckGeometry(side, kernel, stride); err != nil {
					t.Fatalf("CheckGeometry(%d, %d, %d) = %v", side, kernel, stride, err)
				}
			}
		}
	}
}
