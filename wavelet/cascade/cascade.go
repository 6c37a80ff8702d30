package cascade

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-wavelets/wavelet/daubechies"
	"github.com/cwbudde/algo-wavelets/wavelet/grid"
)

// Kind selects which branch of the two-scale relation is tabulated.
type Kind int

const (
	// Scaling tabulates the scaling function, the low-pass fixed point.
	Scaling Kind = iota

	// Wavelet tabulates the orthogonal wavelet counterpart.
	Wavelet
)

// Errors returned by Tabulate.
var (
	ErrInvalidGridSize = errors.New("cascade: grid size must be positive")
	ErrInvalidKind     = errors.New("cascade: unknown function kind")
	ErrNoFixedPoint    = errors.New("cascade: filter matrix has no fixed point")
)

// Tabulate builds the scaling or wavelet function of the given order on a
// dyadic grid over its support [0, 2N-1). The grid has the smallest
// (2N-1)*2^n points that is at least minPoints; the true size is reported
// by Len() of the returned table. The result is deterministic for equal
// inputs.
func Tabulate(order, minPoints int, kind Kind) (*grid.Table, error) {
	if minPoints <= 0 {
		return nil, ErrInvalidGridSize
	}

	if kind != Scaling && kind != Wavelet {
		return nil, ErrInvalidKind
	}

	filt, err := daubechies.New(order)
	if err != nil {
		return nil, fmt.Errorf("cascade: %w", err)
	}

	width := filt.SupportWidth()

	levels := 0
	for width<<levels < minPoints {
		levels++
	}

	values, derivs, err := seed(filt)
	if err != nil {
		return nil, err
	}

	// The wavelet combination halves the resolution, so refine one level
	// further in that case.
	refineLevels := levels
	if kind == Wavelet {
		refineLevels++
	}

	h := filt.LowPass()
	for range refineLevels {
		values, derivs = refine(values, derivs, h, width)
	}

	if kind == Wavelet {
		values, derivs = highPassCombine(values, derivs, filt.HighPass(), width)
	}

	return grid.New(float64(width), values, derivs)
}

// seed computes the function and derivative values at the integer abscissae
// 0..2N-2, normalized so that sum(phi(k)) = 1 and sum(k*phi'(k)) = -1.
func seed(filt *daubechies.Filter) ([]float64, []float64, error) {
	width := filt.SupportWidth()

	if filt.Order() == 1 {
		// Haar: the right-continuous unit box.
		return []float64{1}, []float64{0}, nil
	}

	h := filt.LowPass()

	vals, err := fixedPointVector(h, width, 1)
	if err != nil {
		return nil, nil, err
	}

	sum := floats.Sum(vals)
	if math.Abs(sum) < 1e-12 {
		return nil, nil, ErrNoFixedPoint
	}

	vecmath.ScaleBlock(vals, vals, 1/sum)

	drvs, err := fixedPointVector(h, width, 0.5)
	if err != nil {
		return nil, nil, err
	}

	moment := 0.0
	for i, d := range drvs {
		moment += float64(i+1) * d
	}

	if math.Abs(moment) < 1e-12 {
		return nil, nil, ErrNoFixedPoint
	}

	vecmath.ScaleBlock(drvs, drvs, -1/moment)

	// The function vanishes at the support boundaries, so only the
	// interior integers carry seed values.
	values := make([]float64, width)
	derivs := make([]float64, width)
	copy(values[1:], vals)
	copy(derivs[1:], drvs)

	return values, derivs, nil
}

// fixedPointVector extracts the eigenvector of the downsampled filter matrix
// M[r][c] = h[2r-c] (interior integer indices) for the given eigenvalue.
func fixedPointVector(h []float64, width int, eigenvalue float64) ([]float64, error) {
	m := width - 1

	a := mat.NewDense(m, m, nil)
	for r := 1; r <= m; r++ {
		for c := 1; c <= m; c++ {
			if k := 2*r - c; k >= 0 && k < len(h) {
				a.Set(r-1, c-1, h[k])
			}
		}
	}

	var eig mat.Eigen
	if !eig.Factorize(a, mat.EigenRight) {
		return nil, ErrNoFixedPoint
	}

	evs := eig.Values(nil)

	best := -1
	bestDist := math.Inf(1)

	for i, ev := range evs {
		if d := cmplx.Abs(ev - complex(eigenvalue, 0)); d < bestDist {
			bestDist = d
			best = i
		}
	}

	if best < 0 || bestDist > 1e-6 {
		return nil, ErrNoFixedPoint
	}

	var vecs mat.CDense

	eig.VectorsTo(&vecs)

	out := make([]float64, m)
	for i := range out {
		out[i] = real(vecs.At(i, best))
	}

	return out, nil
}

// refine applies one dyadic refinement level of the two-scale relation,
// doubling the grid. Existing points carry over; the new midpoints are
// phi(x) = sum_k h[k] phi(2x-k), with the derivative picking up the inner
// factor 2 of the chain rule.
func refine(cur, curD, h []float64, width int) ([]float64, []float64) {
	n := len(cur)
	pow := n / width // 2^level, integer abscissa stride at the current level

	next := make([]float64, 2*n)
	nextD := make([]float64, 2*n)

	for i := range cur {
		next[2*i] = cur[i]
		nextD[2*i] = curD[i]
	}

	for j := 1; j < 2*n; j += 2 {
		var v, d float64

		for k, hk := range h {
			if idx := j - k*pow; idx >= 0 && idx < n {
				v += hk * cur[idx]
				d += hk * curD[idx]
			}
		}

		next[j] = v
		nextD[j] = 2 * d
	}

	return next, nextD
}

// highPassCombine folds a scaling function tabulated at double resolution
// into the wavelet function at the target resolution via
// psi(x) = sum_k g[k] phi(2x-k).
func highPassCombine(fine, fineD, g []float64, width int) ([]float64, []float64) {
	n := len(fine) / 2
	pow := len(fine) / width // 2^(level+1)

	out := make([]float64, n)
	outD := make([]float64, n)

	for i := range out {
		var v, d float64

		for k, gk := range g {
			if idx := 4*i - k*pow; idx >= 0 && idx < len(fine) {
				v += gk * fine[idx]
				d += gk * fineD[idx]
			}
		}

		out[i] = v
		outD[i] = d
	}

	vecmath.ScaleBlock(outD, outD, 2)

	return out, outD
}
