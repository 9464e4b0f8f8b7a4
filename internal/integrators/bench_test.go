package integrators

import (
	"testing"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
)

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler(physics.DefaultOscillator())
	s := dynamo.Sample{X: 1.0, V: 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = integrator.Step(s, 0.01)
	}
}

func BenchmarkEulerDamped(b *testing.B) {
	osc := physics.DefaultOscillator()
	osc.Damping = 0.9
	integrator := NewEuler(osc)
	s := dynamo.Sample{X: 1.0, V: 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = integrator.Step(s, 0.01)
	}
}

func BenchmarkVerlet(b *testing.B) {
	integrator := NewVerlet(physics.DefaultOscillator())
	s := dynamo.Sample{X: 1.0, V: 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = integrator.Step(s, 0.01)
	}
}
