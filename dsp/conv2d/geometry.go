package conv2d

import "fmt"

// OutputSize returns the side length of the correlation of a side x side input
// with a kernelSize x kernelSize kernel at the given stride:
//
//	ceil((side - (kernelSize - 1)) / stride)
//
// It returns 0 when the kernel does not fit or stride is not positive.
func OutputSize(side, kernelSize, stride int) int {
	n := side - (kernelSize - 1)
	if n <= 0 || stride <= 0 {
		return 0
	}
	return (n-1)/stride + 1
}

// CheckGeometry reports whether a kernelSize kernel moving with stride is
// compatible with a (padded) input of the given side.
//
// The parity rule rejects an odd side when stride != 1 and stride and
// kernelSize have the same parity. It is conservative and refuses some
// combinations that would tile correctly.
func CheckGeometry(side, kernelSize, stride int) error {
	switch {
	case stride < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidStride, stride)
	case kernelSize > side:
		return fmt.Errorf("%w: kernel size %d, input size %d", ErrKernelTooLarge, kernelSize, side)
	case stride > side-kernelSize:
		return fmt.Errorf("%w: kernel size %d, stride %d, input size %d",
			ErrStrideTooLarge, kernelSize, stride, side)
	case stride != 1 && side%2 != 0 && stride%2 == kernelSize%2:
		return fmt.Errorf("%w: stride %d, kernel size %d, input size %d",
			ErrStrideParity, stride, kernelSize, side)
	}
	return nil
}
