// Package analysis estimates the oscillation frequency of a trajectory.
//
//   - [MagnitudeSpectrum]: magnitude spectrum of a sample series
//   - [DominantFrequency]: angular frequency of the spectral peak
//   - [UpwardCrossings] and [CrossingPeriod]: period from interpolated zero
//     crossings of the position
//
// Comparing these estimates with the exact angular frequency shows how far
// each integrator's discrete oscillation drifts from the continuous one:
//
//	w, _ := analysis.DominantFrequency(res.Verlet, res.Dt)
package analysis
