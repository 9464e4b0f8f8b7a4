package analysis

import (
	"github.com/san-kum/harmonic/internal/dynamo"
)

// UpwardCrossings returns the fractional sample indices at which position
// goes from negative to non-negative, linearly interpolated.
func UpwardCrossings(tr dynamo.Trajectory) []float64 {
	var out []float64
	for i := 1; i < tr.Len(); i++ {
		a, b := tr.Samples[i-1].X, tr.Samples[i].X
		if a < 0 && b >= 0 {
			out = append(out, float64(i-1)+a/(a-b))
		}
	}
	return out
}

// CrossingPeriod is the mean spacing of upward zero crossings, in time units.
func CrossingPeriod(tr dynamo.Trajectory, dt float64) (float64, error) {
	if !finiteAll(tr.Positions()) {
		return 0, ErrNonFinite
	}
	c := UpwardCrossings(tr)
	if len(c) < 2 {
		return 0, ErrNoCrossing
	}
	return (c[len(c)-1] - c[0]) / float64(len(c)-1) * dt, nil
}
