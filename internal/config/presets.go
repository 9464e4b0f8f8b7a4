package config

import (
	"sort"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"damped": withConfig(func(c *Config) {
		c.Damping = 0.8
	}),
	"fine": withConfig(func(c *Config) {
		c.Dt = Step(0.01)
	}),
	"coarse": withConfig(func(c *Config) {
		c.Dt = Step(0.9)
	}),
	"stiff": withConfig(func(c *Config) {
		c.SpringConstant = 4.0
		c.Duration = 50.0
	}),
	"heavy": withConfig(func(c *Config) {
		c.Mass = 4.0
		c.Duration = 200.0
	}),
	"kick": withConfig(func(c *Config) {
		c.InitState = InitStateConfig{Pos: 0.0, Vel: 2.0}
	}),
	"release": withConfig(func(c *Config) {
		c.InitState = InitStateConfig{Pos: 2.0, Vel: 0.0}
	}),
}

func withConfig(mod func(*Config)) *Config {
	c := DefaultConfig()
	mod(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
