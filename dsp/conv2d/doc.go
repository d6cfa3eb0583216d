// Package conv2d computes the 2-D cross-correlation of a square image with a
// square kernel, with configurable stride and zero padding.
//
// The operation is what image-processing and neural-network code usually
// calls "convolution": the kernel is not flipped. For each output position
// (i, j) the kernel is laid over rows [i*stride, i*stride+k) and columns
// [j*stride, j*stride+k) of the padded image, multiplied element-wise and
// summed.
//
// # Usage
//
// Images and kernels are core.Array values holding float64 data:
//
//	image, _ := core.FromMatrix(pixels)        // side x side grayscale
//	kernel, _ := core.FromMatrix(weights)      // k x k
//	c, err := conv2d.New(image, kernel, conv2d.WithStride(2), conv2d.WithPadding(1))
//	out, err := c.Convolve()
//
// For a one-shot call:
//
//	out, err := conv2d.Correlate(image, kernel)
//
// Color images are side x side x c arrays with c in 1..3. The kernel is
// shared across channels and the result always has 3 channels; channels
// missing from the input produce zeros.
//
// # Output Size
//
// For a padded side S, kernel size K and stride T the result is n x n (or
// n x n x 3) with
//
//	n = ceil((S - (K - 1)) / T)
//
// [OutputSize] computes n without building a Convolver.
//
// # Validation
//
// [New] rejects images with more than 3 dimensions or more than 3 channels,
// non-square images, malformed kernels, negative padding, strides below 1
// and unknown strategies.
// [Convolver.Convolve] then checks the kernel and stride against the padded side:
//
//   - K > S fails with [ErrKernelTooLarge]
//   - K + T > S fails with [ErrStrideTooLarge]
//   - T != 1, S odd and T, K of equal parity fails with [ErrStrideParity]
//
// Every error matches either [ErrShape] or [ErrValue] under errors.Is.
//
// # Algorithm Selection
//
// [StrategyDirect] evaluates each window in the spatial domain and can split
// output rows across goroutines with [WithWorkers]; the parallel result is
// bit-identical to the sequential one. [StrategyFFT] correlates whole channel
// planes in the frequency domain and samples the result at the stride
// positions; it agrees with direct evaluation to within rounding.
// [StrategyAuto] picks direct evaluation for kernels smaller than 16.
package conv2d
