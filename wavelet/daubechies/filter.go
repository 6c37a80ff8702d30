package daubechies

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/cwbudde/algo-wavelets/internal/polyroot"
)

// Errors returned by filter derivation.
var (
	ErrInvalidOrder = errors.New("daubechies: order must be >= 1")
)

// Filter holds the derived two-scale filter pair of one family member.
// Immutable after construction.
type Filter struct {
	order   int
	lowpass []float64
}

// New derives the filter of the given order (number of vanishing moments).
// Returns ErrInvalidOrder for orders below 1 and a wrapped
// polyroot.ErrDegeneratePolynomial when the factorization has no solution.
func New(order int) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}

	h, err := lowpass(order)
	if err != nil {
		return nil, fmt.Errorf("daubechies: order %d: %w", order, err)
	}

	return &Filter{order: order, lowpass: h}, nil
}

// Order returns the number of vanishing moments.
func (f *Filter) Order() int { return f.order }

// Len returns the number of filter taps, 2N.
func (f *Filter) Len() int { return 2 * f.order }

// SupportWidth returns the support width of the scaling function, 2N-1.
func (f *Filter) SupportWidth() int { return 2*f.order - 1 }

// LowPass returns a copy of the low-pass coefficients h[0..2N-1],
// normalized so that sum(h) = 2.
func (f *Filter) LowPass() []float64 {
	out := make([]float64, len(f.lowpass))
	copy(out, f.lowpass)

	return out
}

// HighPass returns the quadrature mirror high-pass coefficients
// g[k] = (-1)^k h[2N-1-k]. Their sum is 0.
func (f *Filter) HighPass() []float64 {
	n := len(f.lowpass)
	out := make([]float64, n)

	for k := range out {
		if k%2 == 0 {
			out[k] = f.lowpass[n-1-k]
		} else {
			out[k] = -f.lowpass[n-1-k]
		}
	}

	return out
}

// lowpass performs the spectral factorization. The squared magnitude of the
// low-pass filter is cos(w/2)^2N * P(sin(w/2)^2) with the binomial
// polynomial P(y) = sum_{k<N} C(N-1+k,k) y^k. Each root y of P contributes
// a quadratic z^2 - (2-4y)z + 1 whose roots come in reciprocal pairs;
// keeping the root inside the unit circle selects the maximum phase member
// of the family.
func lowpass(order int) ([]float64, error) {
	if order == 1 {
		// Haar
		return []float64{1, 1}, nil
	}

	// P(y) in descending power order for the root solver.
	poly := make([]float64, order)
	for k := 0; k < order; k++ {
		poly[order-1-k] = float64(combin.Binomial(order-1+k, k))
	}

	yRoots, err := polyroot.RootsReal(poly)
	if err != nil {
		return nil, err
	}

	// Build (1+z)^N * prod_j (z - z_j) in ascending power order.
	coeffs := []complex128{1}
	for range order {
		coeffs = polyroot.MulAscending(coeffs, []complex128{1, 1})
	}

	for _, y := range yRoots {
		b := 2 - 4*y
		d := cmplx.Sqrt(b*b - 4)

		z := (b + d) / 2
		if alt := (b - d) / 2; cmplx.Abs(alt) < cmplx.Abs(z) {
			z = alt
		}

		if math.Abs(cmplx.Abs(z)-1) < 1e-12 {
			return nil, polyroot.ErrDegeneratePolynomial
		}

		coeffs = polyroot.MulAscending(coeffs, []complex128{-z, 1})
	}

	out := make([]float64, len(coeffs))
	sum := 0.0

	for i, c := range coeffs {
		if math.Abs(imag(c)) > 1e-7*(1+math.Abs(real(c))) {
			return nil, polyroot.ErrDegeneratePolynomial
		}

		out[i] = real(c)
		sum += out[i]
	}

	if math.Abs(sum) < 1e-12 {
		return nil, polyroot.ErrDegeneratePolynomial
	}

	// Two-scale normalization: sum(h) = 2.
	for i := range out {
		out[i] *= 2 / sum
	}

	return out, nil
}
