package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/harmonic/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrTooShort   = errors.New("analysis: trajectory too short")
	ErrNoCrossing = errors.New("analysis: fewer than two upward zero crossings")
	ErrNonFinite  = errors.New("analysis: trajectory contains non-finite samples")
	ErrFlat       = errors.New("analysis: trajectory has constant position")
)

// MagnitudeSpectrum returns |X_k| for k = 0..n/2 of the mean-removed series.
func MagnitudeSpectrum(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}
	centered := make([]float64, n)
	copy(centered, data)
	floats.AddConst(-floats.Sum(data)/float64(n), centered)

	coeff := fft.FFTReal(centered)
	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(coeff[i])
	}
	return ps
}

// DominantFrequency returns the angular frequency of the largest non-DC bin
// of the position spectrum. Its resolution is 2π/(n·dt).
func DominantFrequency(tr dynamo.Trajectory, dt float64) (float64, error) {
	n := tr.Len()
	if n < 4 {
		return 0, ErrTooShort
	}
	xs := tr.Positions()
	if !finiteAll(xs) {
		return 0, ErrNonFinite
	}
	if floats.Max(xs) == floats.Min(xs) {
		return 0, ErrFlat
	}
	ps := MagnitudeSpectrum(xs)
	peak := 1 + floats.MaxIdx(ps[1:])
	if ps[peak] == 0 {
		return 0, ErrFlat
	}
	return 2 * math.Pi * float64(peak) / (float64(n) * dt), nil
}

func finiteAll(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
