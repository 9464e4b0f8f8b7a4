package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/integrators"
	"github.com/san-kum/harmonic/internal/logging"
	"github.com/san-kum/harmonic/internal/physics"
)

// Simulator advances the analytical, Euler and Verlet trajectories of one
// oscillator over a shared time grid.
type Simulator struct {
	osc    physics.Oscillator
	euler  dynamo.Stepper
	verlet dynamo.Stepper
	log    *slog.Logger
}

type Option func(*Simulator)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

func New(osc physics.Oscillator, opts ...Option) *Simulator {
	s := &Simulator{
		osc:    osc,
		euler:  integrators.NewEuler(osc),
		verlet: integrators.NewVerlet(osc),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Oscillator() physics.Oscillator { return s.osc }

// Run validates its inputs, then fills all three trajectories. Index 0 of
// each trajectory is the seed (X0, V0). The analytical sample at index i is
// taken at t[i-1].
func (s *Simulator) Run(grid dynamo.TimeGrid) (*dynamo.Result, error) {
	if err := s.osc.Validate(); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	derived := s.osc.Derived()
	times := grid.Times()
	n := len(times)
	dt := grid.Step

	s.log.Debug("simulation start",
		"steps", n,
		"dt", dt,
		"omega", derived.Omega,
		"amplitude", derived.Amplitude,
		"phase", derived.Phase,
	)

	result := &dynamo.Result{
		Times:      times,
		Dt:         dt,
		Analytical: dynamo.NewTrajectory(dynamo.LabelAnalytical, n),
		Euler:      dynamo.NewTrajectory(s.euler.Name(), n),
		Verlet:     dynamo.NewTrajectory(s.verlet.Name(), n),
	}

	x0 := s.osc.Initial()
	analytical := result.Analytical.Samples
	euler := result.Euler.Samples
	verlet := result.Verlet.Samples

	analytical[0] = x0
	euler[0] = x0
	verlet[0] = x0

	for i := 1; i < n; i++ {
		analytical[i] = derived.At(times[i-1])
		euler[i] = s.euler.Step(euler[i-1], dt)
		verlet[i] = s.verlet.Step(verlet[i-1], dt)
	}

	last := n - 1
	if !euler[last].IsValid() || !verlet[last].IsValid() {
		s.log.Warn("non-finite state at end of run",
			"euler", fmt.Sprintf("%+v", euler[last]),
			"verlet", fmt.Sprintf("%+v", verlet[last]),
		)
	}

	s.log.Log(context.Background(), logging.LevelTrace, "final states",
		"analytical", fmt.Sprintf("%+v", analytical[last]),
		"euler", fmt.Sprintf("%+v", euler[last]),
		"verlet", fmt.Sprintf("%+v", verlet[last]),
	)
	s.log.Debug("simulation done", "steps", n)
	return result, nil
}

// Run is a convenience wrapper for New(osc).Run(grid).
func Run(osc physics.Oscillator, grid dynamo.TimeGrid) (*dynamo.Result, error) {
	return New(osc).Run(grid)
}
