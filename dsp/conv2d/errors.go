package conv2d

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package matches exactly one of
// them under errors.Is.
var (
	// ErrShape reports an image, kernel or destination with an unsupported shape.
	ErrShape = errors.New("conv2d: shape error")

	// ErrValue reports an invalid stride or padding, or a kernel/stride
	// combination that does not fit the input.
	ErrValue = errors.New("conv2d: value error")
)

// Errors returned by New, Pad and Convolve.
var (
	ErrTooManyDims     = fmt.Errorf("%w: image has more than 3 dimensions", ErrShape)
	ErrTooFewDims      = fmt.Errorf("%w: image has fewer than 2 dimensions", ErrShape)
	ErrTooManyChannels = fmt.Errorf("%w: image has more than 3 channels", ErrShape)
	ErrNoChannels      = fmt.Errorf("%w: image has no channels", ErrShape)
	ErrNotSquare       = fmt.Errorf("%w: image is not square", ErrShape)
	ErrEmptyImage      = fmt.Errorf("%w: image is empty", ErrShape)
	ErrBadKernel       = fmt.Errorf("%w: kernel must be a non-empty square 2-D array", ErrShape)
	ErrDestination     = fmt.Errorf("%w: destination shape mismatch", ErrShape)

	ErrNegativePadding = fmt.Errorf("%w: padding can't be negative", ErrValue)
	ErrInvalidStride   = fmt.Errorf("%w: stride must be positive", ErrValue)
	ErrInvalidStrategy = fmt.Errorf("%w: unknown strategy", ErrValue)
	ErrKernelTooLarge  = fmt.Errorf("%w: kernel larger than input", ErrValue)
	ErrStrideTooLarge  = fmt.Errorf("%w: kernel and stride incompatible with input", ErrValue)
	ErrStrideParity    = fmt.Errorf("%w: stride not compatible with kernel/input parity", ErrValue)
)
