package dynamo

import (
	"fmt"
	"math"
)

// Sample is the oscillator state at one grid index.
type Sample struct {
	X float64
	V float64
}

func (s Sample) IsValid() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) && !math.IsNaN(s.V) && !math.IsInf(s.V, 0)
}

// Trajectory labels.
const (
	LabelAnalytical = "Analytical"
	LabelEuler      = "Euler"
	LabelVerlet     = "Verlet"
)

type Trajectory struct {
	Label   string
	Samples []Sample
}

func NewTrajectory(label string, n int) Trajectory {
	return Trajectory{Label: label, Samples: make([]Sample, n)}
}

func (t Trajectory) Len() int { return len(t.Samples) }

func (t Trajectory) Positions() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.X
	}
	return out
}

func (t Trajectory) Velocities() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.V
	}
	return out
}

// MaxGridPoints bounds the length of a TimeGrid.
const MaxGridPoints = 1 << 26

// TimeGrid is the uniform grid 0, Step, 2*Step, ... strictly below End.
type TimeGrid struct {
	End  float64
	Step float64
}

func NewTimeGrid(end, step float64) (TimeGrid, error) {
	g := TimeGrid{End: end, Step: step}
	if err := g.Validate(); err != nil {
		return TimeGrid{}, err
	}
	return g, nil
}

func (g TimeGrid) Validate() error {
	if math.IsNaN(g.Step) || math.IsInf(g.Step, 0) || g.Step <= 0 {
		return InvalidParameter("dt", g.Step, "must be positive and finite")
	}
	if math.IsNaN(g.End) || math.IsInf(g.End, 0) || g.End <= 0 {
		return InvalidParameter("end", g.End, "must be positive and finite")
	}
	if r := g.End / g.Step; r > MaxGridPoints || math.Ceil(r) < 1 {
		return InvalidParameter("dt", g.Step, fmt.Sprintf("gives %g grid points, want 1..%d", math.Ceil(r), MaxGridPoints))
	}
	return nil
}

// Len is ceil(End/Step), the number of grid points.
func (g TimeGrid) Len() int {
	if g.Step <= 0 || g.End <= 0 {
		return 0
	}
	return int(math.Ceil(g.End / g.Step))
}

func (g TimeGrid) At(i int) float64 {
	return float64(i) * g.Step
}

func (g TimeGrid) Times() []float64 {
	n := g.Len()
	times := make([]float64, n)
	for i := range times {
		times[i] = g.At(i)
	}
	return times
}

// Stepper advances a state by one step of size dt.
type Stepper interface {
	Name() string
	Step(prev Sample, dt float64) Sample
}

type Result struct {
	Times      []float64
	Dt         float64
	Analytical Trajectory
	Euler      Trajectory
	Verlet     Trajectory
}

// Trajectories returns the three trajectories in display order.
func (r *Result) Trajectories() []Trajectory {
	return []Trajectory{r.Analytical, r.Euler, r.Verlet}
}

func (r *Result) Len() int { return len(r.Times) }
