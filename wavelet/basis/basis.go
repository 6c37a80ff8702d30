// Package basis exposes integer translates of a tabulated Daubechies
// function as a basis set over a bounded interval, suitable for expanding a
// continuous scalar field such as a free-energy surface.
//
// A set of order N holds 3N-1 basis functions: one constant function and
// 3N-2 translates of the same tabulated curve. Construction tabulates the
// curve once; evaluation is allocation-free and read-only, so a single Set
// may be queried from multiple goroutines as long as each caller brings its
// own output slices.
package basis

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-wavelets/wavelet/cascade"
	"github.com/cwbudde/algo-wavelets/wavelet/grid"
)

// ErrInvalidInterval is returned when the interval is empty or inverted.
var ErrInvalidInterval = errors.New("basis: interval max must exceed min")

// Set is an immutable basis set over [min, max].
type Set struct {
	order   int
	n       int // 3N-1 basis functions
	min     float64
	max     float64
	scale   float64 // intrinsic units per argument unit, (3N-2)/(max-min)
	support float64 // translate support width in intrinsic units, 2N-1
	table   *grid.Table
}

// New builds a basis set of the given order over [min, max]. The underlying
// function is tabulated once during construction; see the package options
// for grid resolution, function kind and diagnostic dump.
func New(order int, min, max float64, opts ...Option) (*Set, error) {
	if max <= min {
		return nil, ErrInvalidInterval
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	kind := cascade.Wavelet
	if cfg.scaling {
		kind = cascade.Scaling
	}

	table, err := cascade.Tabulate(order, cfg.gridSize, kind)
	if err != nil {
		return nil, fmt.Errorf("basis: %w", err)
	}

	if cfg.dump != nil {
		if _, err := table.WriteTo(cfg.dump); err != nil {
			return nil, fmt.Errorf("basis: dump grid: %w", err)
		}
	}

	n := 3*order - 1

	return &Set{
		order:   order,
		n:       n,
		min:     min,
		max:     max,
		scale:   float64(n-1) / (max - min),
		support: float64(2*order - 1),
		table:   table,
	}, nil
}

// Len returns the number of basis functions, 3N-1.
func (s *Set) Len() int { return s.n }

// Order returns the order N of the underlying Daubechies family.
func (s *Set) Order() int { return s.order }

// Interval returns the argument domain [min, max].
func (s *Set) Interval() (min, max float64) { return s.min, s.max }

// GridSize returns the true number of tabulated grid points, which is the
// requested size rounded up to the next (2N-1)*2^n.
func (s *Set) GridSize() int { return s.table.Len() }

// EvalAll evaluates every basis function and its derivative at arg. values
// and derivs must be pre-sized to Len(); a mismatch is a contract violation
// and panics.
//
// The returned argT is arg clamped to [min, max]; inside reports whether
// clamping was needed. For arguments outside the interval all derivatives
// are zeroed while the values keep their computed magnitudes. Index 0 is
// the constant function; translate i covers local coordinates [0, 2N-1)
// and contributes zero outside its support.
func (s *Set) EvalAll(arg float64, values, derivs []float64) (argT float64, inside bool) {
	if len(values) != s.n || len(derivs) != s.n {
		panic("basis: output slices must be pre-sized to Len()")
	}

	argT = arg
	inside = true

	switch {
	case arg < s.min:
		argT = s.min
		inside = false
	case arg > s.max:
		argT = s.max
		inside = false
	}

	values[0] = 1.0
	derivs[0] = 0.0

	for i := 1; i < s.n; i++ {
		k := i - s.order

		// Shift and scale the argument into the translate's own frame.
		x := (arg-s.min)*s.scale - float64(k)

		if x < 0 || x > s.support {
			values[i] = 0.0
			derivs[i] = 0.0

			continue
		}

		v, d := s.table.Lookup(x)
		values[i] = v
		derivs[i] = d * s.scale
	}

	if !inside {
		for i := range derivs {
			derivs[i] = 0.0
		}
	}

	return argT, inside
}

// Label returns a human-readable identifier for basis function i: "const"
// for the constant function, otherwise the approximate center position of
// the translate in the argument domain.
func (s *Set) Label(i int) string {
	if i == 0 {
		return "const"
	}

	pos := s.min + float64(i-1)/s.scale

	return "i = " + strconv.FormatFloat(pos, 'g', -1, 64)
}
