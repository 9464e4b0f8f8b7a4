package integrators

import (
	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
)

// Verlet is the kick-drift-kick velocity-Verlet scheme. It carries no damping.
type Verlet struct {
	Mass           float64
	SpringConstant float64
}

func NewVerlet(osc physics.Oscillator) *Verlet {
	return &Verlet{
		Mass:           osc.Mass,
		SpringConstant: osc.SpringConstant,
	}
}

func (v *Verlet) Name() string { return dynamo.LabelVerlet }

func (v *Verlet) Step(prev dynamo.Sample, dt float64) dynamo.Sample {
	halfDt := 0.5 * dt

	vHalf := prev.V + halfDt*physics.Force(v.SpringConstant, prev.X)/v.Mass
	x := prev.X + dt*vHalf
	vNew := vHalf + halfDt*physics.Force(v.SpringConstant, x)/v.Mass

	return dynamo.Sample{X: x, V: vNew}
}
