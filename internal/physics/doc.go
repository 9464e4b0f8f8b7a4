// Package physics models the one-dimensional harmonic oscillator.
//
// [Oscillator] carries the physical parameters; [Oscillator.Derived] yields
// the angular frequency, amplitude and phase of the closed-form solution,
// evaluated with [Derived.At]. [Force] is the linear restoring force shared
// by the numerical integrators.
//
// # Energy
//
// [Oscillator.Energy] returns ½mv² + ½kx² and is used to watch drift:
//
//	osc := physics.DefaultOscillator()
//	e0 := osc.Energy(osc.Initial())
package physics
