// Package daubechies derives the two-scale filter coefficients of the
// Daubechies wavelet family (maximum phase type) and analyzes their spectra.
//
// A family member of order N has N vanishing moments, 2N filter taps and a
// scaling function supported on [0, 2N-1). Coefficients are derived by
// spectral factorization of the Daubechies binomial polynomial rather than
// read from tables, so any order the root solver can handle is available:
//
//	filt, err := daubechies.New(8)
//	h := filt.LowPass()  // 16 taps, sum normalized to 2
//	g := filt.HighPass() // quadrature mirror counterpart
//
// The coefficients follow the two-scale normalization sum(h) = 2, the
// convention used directly by the cascade refinement in package cascade.
package daubechies
