package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
	"github.com/san-kum/harmonic/internal/sim"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestEnergy(t *testing.T) {
	m := NewEnergy(physics.DefaultOscillator())

	m.Observe(dynamo.Sample{X: 1, V: 1}, 0)
	if !scalar.EqualWithinAbs(m.Value(), 1.0, 1e-12) {
		t.Errorf("expected energy 1, got %f", m.Value())
	}

	m.Observe(dynamo.Sample{X: 0, V: 0}, 1)
	if !scalar.EqualWithinAbs(m.Value(), 0.5, 1e-12) {
		t.Errorf("expected mean energy 0.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift(physics.DefaultOscillator())

	m.Observe(dynamo.Sample{X: 1, V: 1}, 0)
	m.Observe(dynamo.Sample{X: 2, V: 0}, 1)
	m.Observe(dynamo.Sample{X: 1, V: 0}, 2)

	if !scalar.EqualWithinAbs(m.Value(), 1.0, 1e-12) {
		t.Errorf("expected max drift 1.0, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestEnergyDrift_ZeroInitialEnergy(t *testing.T) {
	m := NewEnergyDrift(physics.DefaultOscillator())
	m.Observe(dynamo.Sample{}, 0)
	m.Observe(dynamo.Sample{X: 1}, 1)
	if m.Value() != 0 {
		t.Errorf("expected drift 0 when initial energy is zero, got %f", m.Value())
	}
}

func TestObserve(t *testing.T) {
	osc := physics.DefaultOscillator()
	tr := dynamo.Trajectory{Label: "x", Samples: []dynamo.Sample{{X: 1, V: 1}, {X: 0, V: 0}}}

	values := Observe(tr, []float64{0, 1}, NewEnergy(osc), NewEnergyDrift(osc))

	if _, ok := values["energy"]; !ok {
		t.Error("energy metric missing")
	}
	if values["energy_drift"] != 1 {
		t.Errorf("expected drift 1, got %f", values["energy_drift"])
	}
}

func TestSummarize_DefaultRun(t *testing.T) {
	osc := physics.DefaultOscillator()
	grid, err := dynamo.NewTimeGrid(100, osc.DefaultStep())
	if err != nil {
		t.Fatal(err)
	}
	res, err := sim.Run(osc, grid)
	if err != nil {
		t.Fatal(err)
	}

	summaries, err := SummarizeAll(osc, res)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	analytical, euler, verlet := summaries[0], summaries[1], summaries[2]

	for _, s := range summaries {
		if s.Initial != 1 {
			t.Errorf("%s: initial energy %f, want 1", s.Label, s.Initial)
		}
		if s.Min > s.Mean || s.Mean > s.Max {
			t.Errorf("%s: inconsistent summary %+v", s.Label, s)
		}
	}

	if analytical.MaxDrift > 1e-9 {
		t.Errorf("analytical drift %e, want ~0", analytical.MaxDrift)
	}
	if verlet.MaxDrift > 0.25 {
		t.Errorf("verlet drift %f too large", verlet.MaxDrift)
	}
	if euler.MaxDrift <= verlet.MaxDrift {
		t.Errorf("euler drift %f should exceed verlet drift %f", euler.MaxDrift, verlet.MaxDrift)
	}
	if math.IsNaN(euler.Final) {
		t.Error("euler final energy is NaN")
	}
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(physics.DefaultOscillator(), dynamo.Trajectory{Label: "empty"}, nil)
	if !errors.Is(err, dynamo.ErrEmptyTrajectory) {
		t.Errorf("expected ErrEmptyTrajectory, got %v", err)
	}
}

func TestSummarize_UsesMetrics(t *testing.T) {
	osc := physics.DefaultOscillator()
	tr := dynamo.Trajectory{Label: "x", Samples: []dynamo.Sample{{X: 1, V: 1}, {X: 2, V: 0}, {X: 0, V: 0}}}

	s, err := Summarize(osc, tr, []float64{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(s.Mean, 1, 1e-12) {
		t.Errorf("mean energy = %f, want 1", s.Mean)
	}
	if !scalar.EqualWithinAbs(s.MaxDrift, 1, 1e-12) {
		t.Errorf("max drift = %f, want 1", s.MaxDrift)
	}
	if s.Min != 0 || s.Max != 2 || s.Initial != 1 || s.Final != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
}
