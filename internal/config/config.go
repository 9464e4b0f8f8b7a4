package config

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDuration   = 100.0
	DefaultLogLevel   = "info"
	DefaultPlotWidth  = 72
	DefaultPlotHeight = 24
	DefaultTheme      = "minimal"
)

type Config struct {
	Mass           float64         `yaml:"mass"`
	SpringConstant float64         `yaml:"spring_constant"`
	Damping        float64         `yaml:"damping"`
	InitState      InitStateConfig `yaml:"init_state"`
	Duration       float64         `yaml:"duration"`
	// Dt is nil when the key is absent, selecting π/(3ω).
	Dt       *float64   `yaml:"dt,omitempty"`
	LogLevel string     `yaml:"log_level"`
	Plot     PlotConfig `yaml:"plot"`
}

type InitStateConfig struct {
	Pos float64 `yaml:"pos"`
	Vel float64 `yaml:"vel"`
}

type PlotConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Mass:           physics.DefaultMass,
		SpringConstant: physics.DefaultStiffness,
		Damping:        physics.DefaultDamping,
		InitState: InitStateConfig{
			Pos: physics.DefaultPosition,
			Vel: physics.DefaultVelocity,
		},
		Duration: DefaultDuration,
		LogLevel: DefaultLogLevel,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			Theme:  DefaultTheme,
		},
	}
}

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Dt != nil {
		cp.Dt = Step(*c.Dt)
	}
	return &cp
}

// Step returns a pointer suitable for Config.Dt.
func Step(dt float64) *float64 {
	return &dt
}

// LoadOver reads a YAML file over a copy of base. Keys missing from the file
// keep the value from base.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode writes cfg as YAML to w.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Oscillator() physics.Oscillator {
	return physics.Oscillator{
		Mass:           c.Mass,
		SpringConstant: c.SpringConstant,
		Damping:        c.Damping,
		X0:             c.InitState.Pos,
		V0:             c.InitState.Vel,
	}
}

// Grid builds the time grid, resolving a nil Dt to π/(3ω). An explicit
// Dt must be positive.
func (c *Config) Grid() (dynamo.TimeGrid, error) {
	osc := c.Oscillator()
	if err := osc.Validate(); err != nil {
		return dynamo.TimeGrid{}, err
	}
	step := osc.DefaultStep()
	if c.Dt != nil {
		step = *c.Dt
	}
	return dynamo.NewTimeGrid(c.Duration, step)
}

func (c *Config) Validate() error {
	if err := c.Oscillator().Validate(); err != nil {
		return err
	}
	if _, err := c.Grid(); err != nil {
		return err
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", c.Plot.Width, c.Plot.Height)
	}
	return nil
}
