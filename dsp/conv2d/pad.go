package conv2d

import (
	"fmt"

	"github.com/cwbudde/algo-conv2d/dsp/core"
)

// Pad returns image with padding zero rows and columns added on every side.
// The original values occupy [padding, padding+side) along both spatial axes;
// the channel axis, if present, is copied in full.
//
// For padding == 0 the image itself is returned, not a copy.
func Pad(image *core.Array, padding int) (*core.Array, error) {
	if err := checkImage(image); err != nil {
		return nil, err
	}
	if padding < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativePadding, padding)
	}
	if padding == 0 {
		return image, nil
	}
	return pad(image, padding), nil
}

// pad assumes image passed checkImage and padding > 0.
func pad(image *core.Array, padding int) *core.Array {
	side := image.Shape[0]
	channels := pixelWidth(image)
	newSide := side + 2*padding

	shape := []int{newSide, newSide}
	if image.NDim() == 3 {
		shape = append(shape, channels)
	}
	out := core.NewArray(shape...)

	rowLen := side * channels
	for r := 0; r < side; r++ {
		dst := ((r+padding)*newSide + padding) * channels
		copy(out.Data[dst:dst+rowLen], image.Data[r*rowLen:(r+1)*rowLen])
	}
	return out
}

// pixelWidth returns the number of values stored per pixel.
func pixelWidth(image *core.Array) int {
	if image.NDim() == 3 {
		return image.Shape[2]
	}
	return 1
}

func checkImage(image *core.Array) error {
	if image == nil {
		return fmt.Errorf("%w: nil image", ErrEmptyImage)
	}

	ndim := image.NDim()
	switch {
	case ndim > 3:
		return fmt.Errorf("%w: got %d", ErrTooManyDims, ndim)
	case ndim == 3 && image.Shape[2] > 3:
		return fmt.Errorf("%w: got %d", ErrTooManyChannels, image.Shape[2])
	case ndim < 2:
		return fmt.Errorf("%w: got %d", ErrTooFewDims, ndim)
	}

	if err := image.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrShape, err)
	}

	switch {
	case ndim == 3 && image.Shape[2] == 0:
		return ErrNoChannels
	case image.Shape[0] != image.Shape[1]:
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, image.Shape[0], image.Shape[1])
	case image.Shape[0] == 0:
		return ErrEmptyImage
	}
	return nil
}

func checkKernel(kernel *core.Array) error {
	if kernel == nil {
		return fmt.Errorf("%w: nil kernel", ErrBadKernel)
	}
	if kernel.NDim() != 2 {
		return fmt.Errorf("%w: got %d dimensions", ErrBadKernel, kernel.NDim())
	}
	if err := kernel.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrShape, err)
	}
	if kernel.Shape[0] != kernel.Shape[1] || kernel.Shape[0] == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBadKernel, kernel.Shape[0], kernel.Shape[1])
	}
	return nil
}
