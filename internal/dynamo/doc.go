// Package dynamo provides the core data types shared by the oscillator
// simulator and its presentation layer.
//
//   - [Sample]: one (position, velocity) pair
//   - [Trajectory]: a labelled sequence of samples, one per time-grid index
//   - [TimeGrid]: uniform grid starting at zero
//   - [Stepper]: single-step numerical integrator
//   - [Result]: the three trajectories of one run plus the step size
//
// # Example
//
//	grid, _ := dynamo.NewTimeGrid(100, math.Pi/3)
//	res, _ := sim.Run(physics.DefaultOscillator(), grid)
//	for _, tr := range res.Trajectories() {
//	    fmt.Println(tr.Label, tr.Len())
//	}
//
// A Result is never mutated after the driver returns it, so it can be shared
// freely between renderers.
package dynamo
