package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/metrics"
	"github.com/san-kum/harmonic/internal/physics"
)

type ExportData struct {
	Mass           float64                 `json:"mass"`
	SpringConstant float64                 `json:"spring_constant"`
	Damping        float64                 `json:"damping"`
	X0             float64                 `json:"x0"`
	V0             float64                 `json:"v0"`
	Omega          float64                 `json:"omega"`
	Amplitude      float64                 `json:"amplitude"`
	Phase          float64                 `json:"phase"`
	Dt             float64                 `json:"dt"`
	Steps          int                     `json:"steps"`
	Times          []float64               `json:"times"`
	Trajectories   []TrajectoryData        `json:"trajectories"`
	Energy         []metrics.EnergySummary `json:"energy"`
}

type TrajectoryData struct {
	Label      string    `json:"label"`
	Positions  []float64 `json:"x"`
	Velocities []float64 `json:"v"`
}

// JSON writes the run parameters, every trajectory and its energy summary as
// one indented JSON document. Non-finite samples are not representable in
// JSON; encoding fails if a trajectory diverged.
func JSON(w io.Writer, osc physics.Oscillator, res *dynamo.Result) error {
	summaries, err := metrics.SummarizeAll(osc, res)
	if err != nil {
		return err
	}
	d := osc.Derived()

	data := ExportData{
		Mass:           osc.Mass,
		SpringConstant: osc.SpringConstant,
		Damping:        osc.Damping,
		X0:             osc.X0,
		V0:             osc.V0,
		Omega:          d.Omega,
		Amplitude:      d.Amplitude,
		Phase:          d.Phase,
		Dt:             res.Dt,
		Steps:          res.Len(),
		Times:          res.Times,
		Energy:         summaries,
	}
	for _, tr := range res.Trajectories() {
		data.Trajectories = append(data.Trajectories, TrajectoryData{
			Label:      tr.Label,
			Positions:  tr.Positions(),
			Velocities: tr.Velocities(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
