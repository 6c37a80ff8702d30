package daubechies

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wavelets/internal/testutil"
)

func TestResponseLowPass(t *testing.T) {
	filt, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	mag, err := Response(filt.LowPass(), 256)
	if err != nil {
		t.Fatal(err)
	}

	if len(mag) != 129 {
		t.Fatalf("bins = %d, want 129", len(mag))
	}

	testutil.RequireFinite(t, mag)
	testutil.RequireNear(t, mag[0], 2, 1e-9)          // DC gain
	testutil.RequireNear(t, mag[len(mag)-1], 0, 1e-6) // Nyquist zero
}

func TestResponseHighPass(t *testing.T) {
	filt, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	mag, err := Response(filt.HighPass(), 256)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, mag[0], 0, 1e-9)          // DC zero
	testutil.RequireNear(t, mag[len(mag)-1], 2, 1e-6) // full gain at Nyquist
}

func TestResponseErrors(t *testing.T) {
	if _, err := Response(nil, 64); !errors.Is(err, ErrEmptyFilter) {
		t.Errorf("expected ErrEmptyFilter, got %v", err)
	}

	if _, err := Response([]float64{1, 1, 1, 1}, 2); !errors.Is(err, ErrInvalidFFTSize) {
		t.Errorf("expected ErrInvalidFFTSize, got %v", err)
	}
}
