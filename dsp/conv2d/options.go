package conv2d

// Strategy selects how Convolve evaluates the sliding window.
type Strategy int

const (
	// StrategyAuto uses direct evaluation for small kernels and the FFT otherwise.
	StrategyAuto Strategy = iota

	// StrategyDirect multiplies and sums every window in the spatial domain.
	StrategyDirect

	// StrategyFFT correlates whole planes in the frequency domain and samples
	// the result at stride positions.
	StrategyFFT
)

// fftThreshold is the smallest kernel size StrategyAuto hands to the FFT.
const fftThreshold = 16

func (s Strategy) valid() bool {
	return s >= StrategyAuto && s <= StrategyFFT
}

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDirect:
		return "direct"
	case StrategyFFT:
		return "fft"
	default:
		return "unknown"
	}
}

type config struct {
	stride   int
	padding  int
	strategy Strategy
	workers  int
}

// Option configures a Convolver.
type Option func(*config)

func defaultConfig() config {
	return config{
		stride:   1,
		padding:  0,
		strategy: StrategyAuto,
		workers:  1,
	}
}

// WithStride sets the step of the sliding window in both dimensions.
// Default 1. Values below 1 make New fail with ErrInvalidStride.
func WithStride(stride int) Option {
	return func(cfg *config) {
		cfg.stride = stride
	}
}

// WithPadding sets the number of zero rows and columns added on each side of
// the image. Default 0. Negative values make New fail with ErrNegativePadding.
func WithPadding(padding int) Option {
	return func(cfg *config) {
		cfg.padding = padding
	}
}

// WithStrategy selects the evaluation strategy. Default StrategyAuto.
// Values other than the declared strategies make New fail with ErrInvalidStrategy.
func WithStrategy(s Strategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}

// WithWorkers spreads direct evaluation across n goroutines, one contiguous
// band of output rows each. n <= 1 evaluates on the calling goroutine.
// Results are bit-identical to sequential evaluation.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
