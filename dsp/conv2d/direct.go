package conv2d

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-conv2d/dsp/core"
	"github.com/cwbudde/algo-conv2d/internal/parallel"
)

// minRowsPerWorker keeps goroutines from being started for a handful of rows.
const minRowsPerWorker = 4

// correlateDirect evaluates every window in the spatial domain.
// Rows of the output are independent, so they are split across workers.
func (c *Convolver) correlateDirect(dst *core.Array) {
	n := c.OutputSize()
	cfg := parallel.Config{
		NumWorkers:   c.cfg.workers,
		MinChunkSize: minRowsPerWorker,
	}

	if c.color {
		parallel.ForRange(n, func(start, end int) {
			c.directColorRows(dst.Data, n, start, end)
		}, cfg)
		return
	}

	parallel.ForRange(n, func(start, end int) {
		c.directGrayRows(dst.Data, n, start, end)
	}, cfg)
}

// directGrayRows fills output rows [start, end) of a grayscale result.
// Each kernel row is multiplied against the image row under it in one block.
func (c *Convolver) directGrayRows(dst []float64, n, start, end int) {
	k := c.kernelSize
	side := c.side
	stride := c.cfg.stride
	img := c.image.Data
	ker := c.kernel.Data

	prod := make([]float64, k)

	for i := start; i < end; i++ {
		rowStart := i * stride
		for j := 0; j < n; j++ {
			colStart := j * stride

			var sum float64
			for u := 0; u < k; u++ {
				off := (rowStart+u)*side + colStart
				vecmath.MulBlock(prod, img[off:off+k], ker[u*k:(u+1)*k])
				sum += core.Sum(prod)
			}
			dst[i*n+j] = sum
		}
	}
}

// directColorRows fills output rows [start, end) of a color result.
// Pixels are interleaved, so the kernel weight is applied to each channel of
// a pixel in turn. Slots beyond the image's channel count keep their zero.
func (c *Convolver) directColorRows(dst []float64, n, start, end int) {
	k := c.kernelSize
	side := c.side
	stride := c.cfg.stride
	pw := pixelWidth(c.image)
	img := c.image.Data
	ker := c.kernel.Data

	for i := start; i < end; i++ {
		rowStart := i * stride
		for j := 0; j < n; j++ {
			colStart := j * stride

			var acc [3]float64
			for u := 0; u < k; u++ {
				base := ((rowStart+u)*side + colStart) * pw
				for v := 0; v < k; v++ {
					w := ker[u*k+v]
					px := img[base+v*pw : base+(v+1)*pw]
					for ch, x := range px {
						acc[ch] += x * w
					}
				}
			}
			copy(dst[(i*n+j)*3:(i*n+j+1)*3], acc[:])
		}
	}
}
