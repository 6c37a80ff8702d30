package basis

import "io"

// DefaultGridSize is the advisory minimum grid resolution used when
// WithGridSize is not given.
const DefaultGridSize = 1000

// Option configures basis set construction.
type Option func(*config)

type config struct {
	gridSize int
	scaling  bool
	dump     io.Writer
}

func defaultConfig() config {
	return config{gridSize: DefaultGridSize}
}

// WithGridSize requests a minimum number of tabulated grid points. The true
// size is rounded up to the next (2N-1)*2^n and reported by GridSize.
func WithGridSize(n int) Option {
	return func(c *config) {
		c.gridSize = n
	}
}

// WithScalingFunction tabulates the scaling function instead of the wavelet
// function.
func WithScalingFunction() Option {
	return func(c *config) {
		c.scaling = true
	}
}

// WithGridDump writes the tabulated grid to w once during construction, one
// "position value derivative" row per grid point.
func WithGridDump(w io.Writer) Option {
	return func(c *config) {
		c.dump = w
	}
}
