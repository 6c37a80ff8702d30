// Package cascade tabulates Daubechies scaling and wavelet functions by the
// vector cascade algorithm (Strang-Nguyen, Daubechies-Lagarias).
//
// The scaling function has no closed form. Its values at the integer
// abscissae of the support are an eigenvector of the downsampled filter
// matrix for eigenvalue 1 (the derivative takes eigenvalue 1/2); from that
// seed the two-scale relation
//
//	phi(x) = sum_k h[k] phi(2x - k)
//
// fills in one dyadic refinement level per iteration, doubling the grid,
// until the requested resolution is reached. The wavelet counterpart is
// obtained from the refined scaling function through the quadrature mirror
// high-pass combination psi(x) = sum_k g[k] phi(2x - k).
package cascade
