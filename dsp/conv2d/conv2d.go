package conv2d

import (
	"fmt"

	"github.com/cwbudde/algo-conv2d/dsp/core"
)

// Convolver cross-correlates one image with one square kernel.
//
// A Convolver never modifies the arrays it was built from and keeps no state
// between calls, so Convolve may be called from several goroutines at once.
type Convolver struct {
	image      *core.Array // padded image, or the caller's image when padding is 0
	kernel     *core.Array
	side       int
	kernelSize int
	color      bool
	cfg        config
}

// New validates image and kernel and pads the image.
//
// image must be side x side (grayscale) or side x side x c with c in 1..3.
// kernel must be a non-empty square 2-D array; it is shared across channels.
// Kernel/stride compatibility with the image is checked by Convolve.
func New(image, kernel *core.Array, opts ...Option) (*Convolver, error) {
	cfg := applyOptions(opts...)

	if err := checkImage(image); err != nil {
		return nil, err
	}
	if cfg.padding < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativePadding, cfg.padding)
	}
	if cfg.stride < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStride, cfg.stride)
	}
	if !cfg.strategy.valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStrategy, int(cfg.strategy))
	}
	if err := checkKernel(kernel); err != nil {
		return nil, err
	}

	padded := image
	if cfg.padding > 0 {
		padded = pad(image, cfg.padding)
	}

	return &Convolver{
		image:      padded,
		kernel:     kernel,
		side:       padded.Shape[0],
		kernelSize: kernel.Shape[0],
		color:      image.NDim() == 3,
		cfg:        cfg,
	}, nil
}

// Correlate is a convenience wrapper around New followed by Convolve.
func Correlate(image, kernel *core.Array, opts ...Option) (*core.Array, error) {
	c, err := New(image, kernel, opts...)
	if err != nil {
		return nil, err
	}
	return c.Convolve()
}

// Convolve slides the kernel over the padded image and returns a new array
// of shape OutputShape(). Each output value is the sum of the element-wise
// product of the kernel and the window under it. For color images every
// output pixel has 3 channels; channels the image does not have are 0.
func (c *Convolver) Convolve() (*core.Array, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	out := core.NewArray(c.OutputShape()...)
	if err := c.run(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvolveTo performs Convolve, writing to a pre-allocated destination.
// dst must have shape OutputShape(); its previous contents are discarded.
func (c *Convolver) ConvolveTo(dst *core.Array) error {
	if err := c.check(); err != nil {
		return err
	}

	want := c.OutputShape()
	if dst == nil {
		return fmt.Errorf("%w: nil destination, want %v", ErrDestination, want)
	}
	if !core.SameShape(dst.Shape, want) || len(dst.Data) != dst.Len() {
		return fmt.Errorf("%w: got %v with %d values, want %v", ErrDestination, dst.Shape, len(dst.Data), want)
	}

	core.Zero(dst.Data)
	return c.run(dst)
}

// OutputSize returns the side length of the result.
func (c *Convolver) OutputSize() int {
	return OutputSize(c.side, c.kernelSize, c.cfg.stride)
}

// OutputShape returns the shape of the result: (n, n) for grayscale images
// and (n, n, 3) for color images.
func (c *Convolver) OutputShape() []int {
	n := c.OutputSize()
	if c.color {
		return []int{n, n, 3}
	}
	return []int{n, n}
}

// Padded returns the image the kernel slides over. It is the caller's image
// when padding is 0. Callers must not modify it.
func (c *Convolver) Padded() *core.Array {
	return c.image
}

// KernelSize returns the kernel side length.
func (c *Convolver) KernelSize() int {
	return c.kernelSize
}

// Stride returns the window step.
func (c *Convolver) Stride() int {
	return c.cfg.stride
}

// Padding returns the border width added on each side.
func (c *Convolver) Padding() int {
	return c.cfg.padding
}

// Strategy returns the evaluation strategy Convolve will use.
// StrategyAuto is resolved against the kernel size.
func (c *Convolver) Strategy() Strategy {
	if c.cfg.strategy != StrategyAuto {
		return c.cfg.strategy
	}
	if c.kernelSize >= fftThreshold {
		return StrategyFFT
	}
	return StrategyDirect
}

func (c *Convolver) check() error {
	return CheckGeometry(c.side, c.kernelSize, c.cfg.stride)
}

// run expects a zeroed dst of shape OutputShape().
func (c *Convolver) run(dst *core.Array) error {
	if c.Strategy() == StrategyFFT {
		return c.correlateFFT(dst)
	}
	c.correlateDirect(dst)
	return nil
}
