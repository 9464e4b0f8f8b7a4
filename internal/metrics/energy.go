package metrics

import (
	"math"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
	"gonum.org/v1/gonum/floats"
)

type Metric interface {
	Name() string
	Observe(s dynamo.Sample, t float64)
	Value() float64
	Reset()
}

// Energy reports the mean mechanical energy over the observed samples.
type Energy struct {
	name        string
	osc         physics.Oscillator
	samples     int
	totalEnergy float64
}

func NewEnergy(osc physics.Oscillator) *Energy {
	return &Energy{
		name: "energy",
		osc:  osc,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s dynamo.Sample, t float64) {
	e.totalEnergy += e.osc.Energy(s)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift reports the largest relative deviation from the first observed
// energy.
type EnergyDrift struct {
	name          string
	osc           physics.Oscillator
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(osc physics.Oscillator) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		osc:  osc,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s dynamo.Sample, t float64) {
	energy := e.osc.Energy(s)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// Observe feeds every sample of tr through the metrics and returns their
// values keyed by name.
func Observe(tr dynamo.Trajectory, times []float64, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for i, s := range tr.Samples {
		t := 0.0
		if i < len(times) {
			t = times[i]
		}
		for _, m := range ms {
			m.Observe(s, t)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// EnergySummary describes how the mechanical energy of one trajectory evolves.
type EnergySummary struct {
	Label    string  `json:"label"`
	Initial  float64 `json:"initial"`
	Final    float64 `json:"final"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	MaxDrift float64 `json:"max_drift"`
}

// Series returns the mechanical energy at every sample of tr.
func Series(osc physics.Oscillator, tr dynamo.Trajectory) []float64 {
	out := make([]float64, tr.Len())
	for i, s := range tr.Samples {
		out[i] = osc.Energy(s)
	}
	return out
}

// Summarize runs the Energy and EnergyDrift metrics over tr and adds the
// endpoints and extremes of its energy series.
func Summarize(osc physics.Oscillator, tr dynamo.Trajectory, times []float64) (EnergySummary, error) {
	if tr.Len() == 0 {
		return EnergySummary{}, dynamo.ErrEmptyTrajectory
	}

	series := Series(osc, tr)
	mean, drift := NewEnergy(osc), NewEnergyDrift(osc)
	values := Observe(tr, times, mean, drift)

	return EnergySummary{
		Label:    tr.Label,
		Initial:  series[0],
		Final:    series[len(series)-1],
		Min:      floats.Min(series),
		Max:      floats.Max(series),
		Mean:     values[mean.Name()],
		MaxDrift: values[drift.Name()],
	}, nil
}

// SummarizeAll summarizes every trajectory of res in display order.
func SummarizeAll(osc physics.Oscillator, res *dynamo.Result) ([]EnergySummary, error) {
	trs := res.Trajectories()
	out := make([]EnergySummary, 0, len(trs))
	for _, tr := range trs {
		s, err := Summarize(osc, tr, res.Times)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
