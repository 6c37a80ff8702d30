package daubechies

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum analysis.
var (
	ErrEmptyFilter    = errors.New("daubechies: empty filter")
	ErrInvalidFFTSize = errors.New("daubechies: fft size smaller than filter")
)

// Response computes the magnitude frequency response of a filter on
// size/2+1 bins from DC to Nyquist. size must be a power of two no smaller
// than the filter length.
//
// With the sum(h) = 2 normalization the low-pass response is 2 at DC and
// has a vanishing-moment zero at Nyquist; the high-pass counterpart is the
// mirror image.
func Response(coeffs []float64, size int) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyFilter
	}

	if size < len(coeffs) {
		return nil, ErrInvalidFFTSize
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("daubechies: response: %w", err)
	}

	in := make([]complex128, size)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("daubechies: response: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
