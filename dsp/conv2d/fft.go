package conv2d

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-conv2d/dsp/core"
)

// minFFTSize is the smallest transform length used for a plane.
const minFFTSize = 16

// correlateFFT computes each channel plane with a frequency-domain
// correlator and scatters the samples into dst.
func (c *Convolver) correlateFFT(dst *core.Array) error {
	n := c.OutputSize()

	pc, err := newPlaneCorrelator(c.kernel, max(nextPowerOf2(c.side), minFFTSize))
	if err != nil {
		return err
	}

	if !c.color {
		return pc.correlate(dst.Data, c.image.Data, c.side, n, c.cfg.stride)
	}

	pw := pixelWidth(c.image)
	pc.plane = core.EnsureLen(pc.plane, c.side*c.side)
	pc.out = core.EnsureLen(pc.out, n*n)
	plane, out := pc.plane, pc.out

	for ch := 0; ch < pw; ch++ {
		for p := range plane {
			plane[p] = c.image.Data[p*pw+ch]
		}

		err := pc.correlate(out, plane, c.side, n, c.cfg.stride)
		if err != nil {
			return err
		}

		for p, v := range out {
			dst.Data[p*3+ch] = v
		}
	}
	return nil
}

// planeCorrelator cross-correlates square planes with a fixed kernel using a
// 2-D FFT of size x size built from 1-D row and column transforms.
//
// For a window starting at (r, s) every touched index r+u, s+v is below the
// plane side, which is at most size, so circular wrap never reaches a
// sampled position.
type planeCorrelator struct {
	size int

	plan *algofft.Plan[complex128]

	// Conjugated kernel spectrum
	kernelSpec []complex128

	// Scratch buffers
	buf  []complex128
	line []complex128

	// Channel plane and its sampled result, used for color images
	plane []float64
	out   []float64
}

func newPlaneCorrelator(kernel *core.Array, size int) (*planeCorrelator, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv2d: failed to create FFT plan: %w", err)
	}

	pc := &planeCorrelator{
		size:       size,
		plan:       plan,
		kernelSpec: make([]complex128, size*size),
		buf:        make([]complex128, size*size),
		line:       make([]complex128, size),
	}

	k := kernel.Shape[0]
	for u := 0; u < k; u++ {
		for v := 0; v < k; v++ {
			pc.kernelSpec[u*size+v] = complex(kernel.Data[u*k+v], 0)
		}
	}

	if err := pc.transform(pc.kernelSpec, false); err != nil {
		return nil, fmt.Errorf("conv2d: failed to compute kernel FFT: %w", err)
	}

	// corr(x, k) = IFFT(FFT(x) * conj(FFT(k)))
	for i, v := range pc.kernelSpec {
		pc.kernelSpec[i] = cmplx.Conj(v)
	}

	return pc, nil
}

// correlate writes the n x n correlation of a side x side plane, sampled
// every stride positions, into dst.
func (pc *planeCorrelator) correlate(dst, plane []float64, side, n, stride int) error {
	size := pc.size

	for i := range pc.buf {
		pc.buf[i] = 0
	}
	for r := 0; r < side; r++ {
		for s := 0; s < side; s++ {
			pc.buf[r*size+s] = complex(plane[r*side+s], 0)
		}
	}

	if err := pc.transform(pc.buf, false); err != nil {
		return fmt.Errorf("conv2d: forward FFT failed: %w", err)
	}

	for i := range pc.buf {
		pc.buf[i] *= pc.kernelSpec[i]
	}

	if err := pc.transform(pc.buf, true); err != nil {
		return fmt.Errorf("conv2d: inverse FFT failed: %w", err)
	}

	for i := 0; i < n; i++ {
		row := i * stride * size
		for j := 0; j < n; j++ {
			dst[i*n+j] = real(pc.buf[row+j*stride])
		}
	}
	return nil
}

// transform runs an in-place 2-D FFT over data (size x size, row-major).
// The inverse is normalized.
func (pc *planeCorrelator) transform(data []complex128, inverse bool) error {
	size := pc.size
	step := pc.plan.Forward
	if inverse {
		step = pc.plan.Inverse
	}

	for r := 0; r < size; r++ {
		row := data[r*size : (r+1)*size]
		if err := step(row, row); err != nil {
			return err
		}
	}

	for col := 0; col < size; col++ {
		for r := 0; r < size; r++ {
			pc.line[r] = data[r*size+col]
		}
		if err := step(pc.line, pc.line); err != nil {
			return err
		}
		for r := 0; r < size; r++ {
			data[r*size+col] = pc.line[r]
		}
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
