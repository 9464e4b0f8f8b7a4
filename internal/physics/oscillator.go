package physics

import (
	"math"

	"github.com/san-kum/harmonic/internal/dynamo"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 1.0
	DefaultDamping   = 1.0
	DefaultPosition  = 1.0
	DefaultVelocity  = 1.0
)

// Oscillator holds the physical parameters of a one-dimensional damped
// harmonic oscillator. Damping is a per-unit-time velocity multiplier used
// only by the Euler integrator; 1 means undamped.
type Oscillator struct {
	Mass           float64
	SpringConstant float64
	Damping        float64
	X0             float64
	V0             float64
}

func DefaultOscillator() Oscillator {
	return Oscillator{
		Mass:           DefaultMass,
		SpringConstant: DefaultStiffness,
		Damping:        DefaultDamping,
		X0:             DefaultPosition,
		V0:             DefaultVelocity,
	}
}

func (o Oscillator) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"mass", o.Mass},
		{"spring_constant", o.SpringConstant},
		{"damping", o.Damping},
	}
	for _, p := range positive {
		if !finite(p.value) || p.value <= 0 {
			return dynamo.InvalidParameter(p.name, p.value, "must be positive and finite")
		}
	}
	if !finite(o.X0) {
		return dynamo.InvalidParameter("x0", o.X0, "must be finite")
	}
	if !finite(o.V0) {
		return dynamo.InvalidParameter("v0", o.V0, "must be finite")
	}
	return nil
}

// Initial returns the seed state (X0, V0).
func (o Oscillator) Initial() dynamo.Sample {
	return dynamo.Sample{X: o.X0, V: o.V0}
}

func (o Oscillator) Omega() float64 {
	return math.Sqrt(o.SpringConstant / o.Mass)
}

// DefaultStep is the grid spacing π/(3ω), six samples per period. π is
// rounded to float64 before dividing, so the default oscillator gets
// 1.0471975511965976 rather than the nearest float64 to the exact π/3.
func (o Oscillator) DefaultStep() float64 {
	pi := math.Pi
	return pi / 3 / o.Omega()
}

// Energy is the total mechanical energy ½mv² + ½kx².
func (o Oscillator) Energy(s dynamo.Sample) float64 {
	return 0.5*o.Mass*s.V*s.V + 0.5*o.SpringConstant*s.X*s.X
}

// Derived returns the constants of the closed-form solution.
func (o Oscillator) Derived() Derived {
	omega := o.Omega()
	ratio := o.V0 / omega
	d := Derived{
		Omega:     omega,
		Amplitude: math.Sqrt(o.X0*o.X0 + ratio*ratio),
	}
	if o.X0 == 0 {
		d.Phase = math.Atan2(o.V0, 0)
	} else {
		d.Phase = math.Atan(o.V0 / omega / o.X0)
	}
	return d
}

// Derived holds ω, A and φ for x(t) = A·cos(ωt − φ).
type Derived struct {
	Omega     float64
	Amplitude float64
	Phase     float64
}

// At evaluates the analytical solution at absolute time t.
func (d Derived) At(t float64) dynamo.Sample {
	arg := d.Omega*t - d.Phase
	return dynamo.Sample{
		X: d.Amplitude * math.Cos(arg),
		V: -d.Amplitude * d.Omega * math.Sin(arg),
	}
}

// Force is Hooke's law, −k·displacement.
func Force(k, displacement float64) float64 {
	return -k * displacement
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
