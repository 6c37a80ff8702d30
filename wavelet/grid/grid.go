// Package grid stores a compactly supported function tabulated on a uniform
// dyadic grid, with interpolated value and derivative lookup.
package grid

import (
	"errors"
	"fmt"
	"io"
)

// Errors returned by table construction.
var (
	ErrEmptyTable     = errors.New("grid: table must have at least one point")
	ErrLengthMismatch = errors.New("grid: values and derivatives length mismatch")
	ErrInvalidWidth   = errors.New("grid: width must be positive")
)

// Table holds samples of a function and its first derivative at
// x_i = i * Spacing() over [0, Width()). The function is identically zero at
// and beyond Width() (compact support). Immutable after construction; safe
// for concurrent lookups.
type Table struct {
	width   float64
	spacing float64
	values  []float64
	derivs  []float64
}

// New builds a table from equally many value and derivative samples spread
// uniformly over [0, width). The input slices are copied.
func New(width float64, values, derivs []float64) (*Table, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	if len(values) == 0 {
		return nil, ErrEmptyTable
	}

	if len(values) != len(derivs) {
		return nil, ErrLengthMismatch
	}

	t := &Table{
		width:   width,
		spacing: width / float64(len(values)),
		values:  make([]float64, len(values)),
		derivs:  make([]float64, len(derivs)),
	}
	copy(t.values, values)
	copy(t.derivs, derivs)

	return t, nil
}

// Len returns the number of grid points.
func (t *Table) Len() int { return len(t.values) }

// Spacing returns the distance between adjacent grid points.
func (t *Table) Spacing() float64 { return t.spacing }

// Width returns the support width; the function is zero outside [0, Width()).
func (t *Table) Width() float64 { return t.width }

// At returns the i-th grid point as (position, value, derivative).
// i must be in [0, Len()).
func (t *Table) At(i int) (pos, value, deriv float64) {
	return float64(i) * t.spacing, t.values[i], t.derivs[i]
}

// Lookup returns the linearly interpolated value and derivative at x.
// Outside [0, Width()) both are zero.
func (t *Table) Lookup(x float64) (value, deriv float64) {
	if x < 0 || x >= t.width {
		return 0, 0
	}

	pos := x / t.spacing
	i := int(pos)

	if i >= len(t.values) { // guards rounding at the upper edge
		return 0, 0
	}

	frac := pos - float64(i)

	// The sample one past the last grid point is the support boundary,
	// where the function vanishes.
	var v1, d1 float64
	if i+1 < len(t.values) {
		v1 = t.values[i+1]
		d1 = t.derivs[i+1]
	}

	v0 := t.values[i]
	d0 := t.derivs[i]

	return v0 + frac*(v1-v0), d0 + frac*(d1-d0)
}

// WriteTo writes all grid points as "position value derivative" rows.
// It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for i := range t.values {
		pos, v, d := t.At(i)

		n, err := fmt.Fprintf(w, "%.12e %.12e %.12e\n", pos, v, d)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("grid: write point %d: %w", i, err)
		}
	}

	return total, nil
}
