package sim_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
	"github.com/san-kum/harmonic/internal/sim"
)

func defaultGrid() dynamo.TimeGrid {
	osc := physics.DefaultOscillator()
	grid, err := dynamo.NewTimeGrid(100, osc.DefaultStep())
	Expect(err).NotTo(HaveOccurred())
	return grid
}

var _ = Describe("Simulator", func() {
	var (
		osc    physics.Oscillator
		result *dynamo.Result
	)

	BeforeEach(func() {
		osc = physics.DefaultOscillator()
		var err error
		result, err = sim.Run(osc, defaultGrid())
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports the grid step as dt", func() {
		Expect(result.Dt).To(BeNumerically("~", math.Pi/3, 1e-15))
		Expect(result.Dt).To(Equal(result.Times[1] - result.Times[0]))
	})

	It("produces three equal-length labelled trajectories", func() {
		Expect(result.Len()).To(Equal(96))
		labels := []string{}
		for _, tr := range result.Trajectories() {
			Expect(tr.Len()).To(Equal(result.Len()))
			labels = append(labels, tr.Label)
		}
		Expect(labels).To(Equal([]string{"Analytical", "Euler", "Verlet"}))
	})

	It("seeds every trajectory with the initial conditions", func() {
		for _, tr := range result.Trajectories() {
			Expect(tr.Samples[0]).To(Equal(dynamo.Sample{X: 1, V: 1}), tr.Label)
		}
	})

	It("keeps the analytical amplitude invariant", func() {
		d := osc.Derived()
		for i, s := range result.Analytical.Samples {
			r := s.X*s.X + (s.V/d.Omega)*(s.V/d.Omega)
			Expect(r).To(BeNumerically("~", d.Amplitude*d.Amplitude, 1e-9), "sample %d", i)
		}
	})

	It("samples the analytical solution one grid point behind", func() {
		d := osc.Derived()
		Expect(result.Analytical.Samples[1]).To(Equal(d.At(result.Times[0])))
		Expect(result.Analytical.Samples[10]).To(Equal(d.At(result.Times[9])))
	})

	It("reproduces the hand-computed first Euler step", func() {
		dt := result.Dt
		x1 := 1 + 1*dt
		v1 := (1 + dt*physics.Force(1, x1)) * math.Pow(1, dt)
		Expect(result.Euler.Samples[1].X).To(BeNumerically("~", x1, 1e-9))
		Expect(result.Euler.Samples[1].V).To(BeNumerically("~", v1, 1e-9))
	})

	It("reproduces the hand-computed first Verlet step", func() {
		dt := result.Dt
		vHalf := 1 + (dt/2)*(-1*1)
		x1 := 1 + dt*vHalf
		v1 := vHalf + (dt/2)*(-1*x1)
		Expect(result.Verlet.Samples[1]).To(Equal(dynamo.Sample{X: x1, V: v1}))
	})

	It("keeps verlet energy in a narrow band while euler energy grows", func() {
		e0 := osc.Energy(osc.Initial())
		eulerMax, verletMax := 0.0, 0.0
		for i := range result.Times {
			ev := osc.Energy(result.Verlet.Samples[i])
			Expect(math.Abs(ev-e0)/e0).To(BeNumerically("<", 0.25), "verlet sample %d", i)
			verletMax = math.Max(verletMax, ev)
			eulerMax = math.Max(eulerMax, osc.Energy(result.Euler.Samples[i]))
		}
		Expect(eulerMax).To(BeNumerically(">", 2*e0))
		Expect(eulerMax).To(BeNumerically(">", verletMax))
	})

	It("is deterministic", func() {
		again, err := sim.Run(osc, defaultGrid())
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(result))
	})
})

var _ = Describe("Trajectory length", func() {
	DescribeTable("equals ceil(end/dt)",
		func(end, dt float64) {
			grid, err := dynamo.NewTimeGrid(end, dt)
			Expect(err).NotTo(HaveOccurred())
			res, err := sim.Run(physics.DefaultOscillator(), grid)
			Expect(err).NotTo(HaveOccurred())
			want := int(math.Ceil(end / dt))
			for _, tr := range res.Trajectories() {
				Expect(tr.Len()).To(Equal(want))
			}
		},
		Entry("default step", 100.0, math.Pi/3),
		Entry("fine step", 100.0, 0.01),
		Entry("uneven step", 10.0, 0.7),
		Entry("step larger than end", 1.0, 5.0),
	)

	It("returns only the seed when the grid has one point", func() {
		grid, err := dynamo.NewTimeGrid(1, 5)
		Expect(err).NotTo(HaveOccurred())
		res, err := sim.Run(physics.DefaultOscillator(), grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Euler.Samples).To(Equal([]dynamo.Sample{{X: 1, V: 1}}))
	})
})

var _ = Describe("Invalid setup", func() {
	DescribeTable("fails before any computation",
		func(osc physics.Oscillator, grid dynamo.TimeGrid) {
			res, err := sim.Run(osc, grid)
			Expect(res).To(BeNil())
			Expect(errors.Is(err, dynamo.ErrInvalidParameter)).To(BeTrue())
		},
		Entry("zero mass",
			physics.Oscillator{Mass: 0, SpringConstant: 1, Damping: 1, X0: 1, V0: 1},
			dynamo.TimeGrid{End: 100, Step: 0.1}),
		Entry("negative spring constant",
			physics.Oscillator{Mass: 1, SpringConstant: -1, Damping: 1, X0: 1, V0: 1},
			dynamo.TimeGrid{End: 100, Step: 0.1}),
		Entry("zero dt",
			physics.DefaultOscillator(),
			dynamo.TimeGrid{End: 100, Step: 0}),
		Entry("negative end",
			physics.DefaultOscillator(),
			dynamo.TimeGrid{End: -1, Step: 0.1}),
	)
})

var _ = Describe("Logging", func() {
	It("writes debug diagnostics to the injected logger", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		s := sim.New(physics.DefaultOscillator(), sim.WithLogger(logger))
		_, err := s.Run(defaultGrid())
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("simulation start"))
		Expect(buf.String()).To(ContainSubstring("steps=96"))
	})

	It("accepts a nil logger", func() {
		s := sim.New(physics.DefaultOscillator(), sim.WithLogger(nil))
		_, err := s.Run(defaultGrid())
		Expect(err).NotTo(HaveOccurred())
	})
})
