package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/profile"
	"github.com/san-kum/harmonic/internal/config"
	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/export"
	"github.com/san-kum/harmonic/internal/logging"
	"github.com/san-kum/harmonic/internal/physics"
	"github.com/san-kum/harmonic/internal/sim"
	"github.com/san-kum/harmonic/internal/tui"
	"github.com/san-kum/harmonic/internal/viz"
	"github.com/spf13/cobra"
)

// options holds the raw flag values shared by every command.
type options struct {
	configFile string
	preset     string
	mass       float64
	k          float64
	damping    float64
	x0         float64
	v0         float64
	end        float64
	dt         float64
	logLevel   string
	theme      string
	profile    bool

	chart     bool
	svgWidth  int
	svgHeight int
	savePath  string
}

// run is one resolved simulation: the effective config, the oscillator it
// describes and the finished result.
type run struct {
	cfg *config.Config
	osc physics.Oscillator
	res *dynamo.Result
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:          "harmonic",
		Short:        "damped harmonic oscillator: analytical vs euler vs verlet",
		SilenceUsage: true,
		RunE:         o.profiled(o.runPlot),
	}
	rootCmd.Flags().BoolVar(&o.chart, "chart", false, "also render position and velocity charts")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&o.preset, "preset", "", "use preset configuration")
	pf.Float64Var(&o.mass, "mass", physics.DefaultMass, "mass")
	pf.Float64Var(&o.k, "k", physics.DefaultStiffness, "spring constant")
	pf.Float64Var(&o.damping, "damping", physics.DefaultDamping, "euler velocity damping factor per unit time")
	pf.Float64Var(&o.x0, "x0", physics.DefaultPosition, "initial position")
	pf.Float64Var(&o.v0, "v0", physics.DefaultVelocity, "initial velocity")
	pf.Float64Var(&o.end, "end", config.DefaultDuration, "end time (exclusive)")
	pf.Float64Var(&o.dt, "dt", 0, "timestep, must be positive (default pi/(3*omega))")
	pf.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "log level (warn|info|debug|trace)")
	pf.StringVar(&o.theme, "theme", config.DefaultTheme, fmt.Sprintf("colour theme %v", viz.ThemeNames()))
	pf.BoolVar(&o.profile, "profile", false, "write a cpu profile to the working directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate and print the phase plot with diagnostics",
		Args:  cobra.NoArgs,
		RunE:  o.profiled(o.runPlot),
	}
	runCmd.Flags().BoolVar(&o.chart, "chart", false, "also render position and velocity charts")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive phase-plane viewer",
		Args:  cobra.NoArgs,
		RunE:  o.profiled(o.runView),
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "write the phase plot as SVG to stdout",
		Args:  cobra.NoArgs,
		RunE:  o.profiled(o.runSVG),
	}
	defaults := export.DefaultSVGOptions()
	svgCmd.Flags().IntVar(&o.svgWidth, "width", defaults.Width, "image width in pixels")
	svgCmd.Flags().IntVar(&o.svgHeight, "height", defaults.Height, "image height in pixels")

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "write every sample as CSV to stdout",
		Args:  cobra.NoArgs,
		RunE:  o.profiled(o.runCSV),
	}

	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "write parameters, samples and energy summary as JSON to stdout",
		Args:  cobra.NoArgs,
		RunE:  o.profiled(o.runJSON),
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  o.showConfig,
	}
	configCmd.Flags().StringVar(&o.savePath, "save", "", "write the configuration to this file")

	rootCmd.AddCommand(runCmd, viewCmd, svgCmd, csvCmd, jsonCmd, presetsCmd, configCmd)
	return rootCmd
}

// profiled wraps fn in a CPU profile when --profile is set.
func (o *options) profiled(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if o.profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		}
		return fn(cmd)
	}
}

// resolve builds the effective config: defaults, then preset, then config
// file, then any flag set on the command line.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if o.preset != "" {
		cfg = config.GetPreset(o.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
		}
	}

	if o.configFile != "" {
		loaded, err := config.LoadOver(cfg, o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Mass = o.mass
	}
	if flags.Changed("k") {
		cfg.SpringConstant = o.k
	}
	if flags.Changed("damping") {
		cfg.Damping = o.damping
	}
	if flags.Changed("x0") {
		cfg.InitState.Pos = o.x0
	}
	if flags.Changed("v0") {
		cfg.InitState.Vel = o.v0
	}
	if flags.Changed("end") {
		cfg.Duration = o.end
	}
	if flags.Changed("dt") {
		cfg.Dt = config.Step(o.dt)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("theme") {
		cfg.Plot.Theme = o.theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *options) simulate(cmd *cobra.Command) (*run, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, err
	}
	log := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	osc := cfg.Oscillator()
	res, err := sim.New(osc, sim.WithLogger(log)).Run(grid)
	if err != nil {
		return nil, err
	}
	log.Info("simulation complete", "steps", res.Len(), "dt", res.Dt)
	return &run{cfg: cfg, osc: osc, res: res}, nil
}

func (o *options) runPlot(cmd *cobra.Command) error {
	r, err := o.simulate(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	theme := viz.GetTheme(r.cfg.Plot.Theme)

	fmt.Fprintf(out, "dt = %v\n\n", r.res.Dt)

	opts := viz.DefaultPhaseOptions()
	opts.Width = r.cfg.Plot.Width
	opts.Height = r.cfg.Plot.Height
	opts.Theme = theme
	fmt.Fprintln(out, viz.PhasePlot(r.res.Trajectories(), opts))

	if o.chart {
		chart := viz.ChartOptions{Width: r.cfg.Plot.Width, Height: max(4, r.cfg.Plot.Height/2)}
		fmt.Fprintln(out, viz.TimeSeries(r.res.Trajectories(), chart))
		fmt.Fprintln(out)
		chart.Velocity = true
		fmt.Fprintln(out, viz.TimeSeries(r.res.Trajectories(), chart))
		fmt.Fprintln(out)
	}

	report, err := viz.Report(r.osc, r.res, theme)
	if err != nil {
		return err
	}
	fmt.Fprint(out, report)
	return nil
}

func (o *options) runView(cmd *cobra.Command) error {
	r, err := o.simulate(cmd)
	if err != nil {
		return err
	}
	return tui.Run(r.osc, r.res, viz.GetTheme(r.cfg.Plot.Theme))
}

func (o *options) runSVG(cmd *cobra.Command) error {
	r, err := o.simulate(cmd)
	if err != nil {
		return err
	}
	opts := export.SVGOptions{
		Width:  o.svgWidth,
		Height: o.svgHeight,
		Theme:  viz.GetTheme(r.cfg.Plot.Theme),
	}
	return export.PhaseSVG(cmd.OutOrStdout(), r.res.Trajectories(), opts)
}

func (o *options) runCSV(cmd *cobra.Command) error {
	r, err := o.simulate(cmd)
	if err != nil {
		return err
	}
	return export.CSV(cmd.OutOrStdout(), r.res)
}

func (o *options) runJSON(cmd *cobra.Command) error {
	r, err := o.simulate(cmd)
	if err != nil {
		return err
	}
	return export.JSON(cmd.OutOrStdout(), r.osc, r.res)
}

func (o *options) showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if o.savePath != "" {
		if err := config.Save(o.savePath, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", o.savePath)
		return nil
	}
	return config.Encode(cmd.OutOrStdout(), cfg)
}

func listPresets(cmd *cobra.Command, args []string) error {
	return writePresets(cmd.OutOrStdout())
}

func writePresets(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tK\tDAMPING\tX0\tV0\tEND\tDT")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		dt := "auto"
		if c.Dt != nil {
			dt = fmt.Sprintf("%g", *c.Dt)
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%g\t%s\n",
			name, c.Mass, c.SpringConstant, c.Damping, c.InitState.Pos, c.InitState.Vel, c.Duration, dt)
	}
	return w.Flush()
}
