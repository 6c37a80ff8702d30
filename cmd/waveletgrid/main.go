// Command waveletgrid tabulates a Daubechies scaling or wavelet function
// and writes the grid as "position value derivative" rows.
//
// Usage:
//
//	waveletgrid -order N [flags]
//
// Examples:
//
//	waveletgrid -order 4
//	waveletgrid -order 8 -grid 4096 -scaling -o db8.dat
//	waveletgrid -order 4 -response
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-wavelets/wavelet/cascade"
	"github.com/cwbudde/algo-wavelets/wavelet/daubechies"
)

func main() {
	var (
		order    = flag.Int("order", 0, "wavelet order (number of vanishing moments, required)")
		gridSize = flag.Int("grid", 1000, "minimum number of grid points")
		scaling  = flag.Bool("scaling", false, "tabulate the scaling function instead of the wavelet function")
		output   = flag.String("o", "", "output file (default stdout)")
		response = flag.Bool("response", false, "print the filter magnitude response instead of the grid")
		fftSize  = flag.Int("fft", 512, "fft size for -response")
	)

	flag.Parse()

	if *order < 1 {
		fmt.Fprintln(os.Stderr, "waveletgrid: -order must be a positive integer")
		flag.Usage()
		os.Exit(2)
	}

	out := io.Writer(os.Stdout)

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatal(err)
		}
		defer f.Close()

		out = f
	}

	if *response {
		if err := printResponse(out, *order, *scaling, *fftSize); err != nil {
			fatal(err)
		}

		return
	}

	kind := cascade.Wavelet
	if *scaling {
		kind = cascade.Scaling
	}

	table, err := cascade.Tabulate(*order, *gridSize, kind)
	if err != nil {
		fatal(err)
	}

	if table.Len() != *gridSize {
		fmt.Fprintf(os.Stderr, "waveletgrid: using %d grid points (requested %d)\n",
			table.Len(), *gridSize)
	}

	if _, err := table.WriteTo(out); err != nil {
		fatal(err)
	}
}

func printResponse(out io.Writer, order int, scaling bool, fftSize int) error {
	filt, err := daubechies.New(order)
	if err != nil {
		return err
	}

	coeffs := filt.HighPass()
	if scaling {
		coeffs = filt.LowPass()
	}

	mag, err := daubechies.Response(coeffs, fftSize)
	if err != nil {
		return err
	}

	for i, m := range mag {
		freq := float64(i) / float64(fftSize)
		if _, err := fmt.Fprintf(out, "%.6f %.12e\n", freq, m); err != nil {
			return err
		}
	}

	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "waveletgrid:", err)
	os.Exit(1)
}
