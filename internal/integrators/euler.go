package integrators

import (
	"math"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
)

// Euler is the forward Euler scheme with multiplicative velocity damping.
// Position advances with the previous velocity; the force is then evaluated
// at the new position.
type Euler struct {
	Mass           float64
	SpringConstant float64
	Damping        float64
}

func NewEuler(osc physics.Oscillator) *Euler {
	return &Euler{
		Mass:           osc.Mass,
		SpringConstant: osc.SpringConstant,
		Damping:        osc.Damping,
	}
}

func (e *Euler) Name() string { return dynamo.LabelEuler }

func (e *Euler) Step(prev dynamo.Sample, dt float64) dynamo.Sample {
	x := prev.X + prev.V*dt
	v := prev.V + dt*physics.Force(e.SpringConstant, x)/e.Mass
	v *= math.Pow(e.Damping, dt)
	return dynamo.Sample{X: x, V: v}
}
