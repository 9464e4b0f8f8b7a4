package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/harmonic/internal/dynamo"
	"github.com/san-kum/harmonic/internal/physics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Oscillator() != physics.DefaultOscillator() {
		t.Errorf("default oscillator = %+v, want %+v", cfg.Oscillator(), physics.DefaultOscillator())
	}
	if cfg.Duration != 100 {
		t.Errorf("expected duration 100, got %f", cfg.Duration)
	}
	if cfg.Dt != nil {
		t.Errorf("expected derived dt, got %v", *cfg.Dt)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGrid_DerivedStep(t *testing.T) {
	grid, err := DefaultConfig().Grid()
	if err != nil {
		t.Fatal(err)
	}
	if grid.Step != physics.DefaultOscillator().DefaultStep() {
		t.Errorf("expected step pi/3, got %v", grid.Step)
	}
	if grid.Len() != 96 {
		t.Errorf("expected 96 points, got %d", grid.Len())
	}
}

func TestGrid_ExplicitStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = Step(0.5)
	cfg.Duration = 10

	grid, err := cfg.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if grid.Step != 0.5 || grid.Len() != 20 {
		t.Errorf("unexpected grid %+v (len %d)", grid, grid.Len())
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero mass", func(c *Config) { c.Mass = 0 }},
		{"negative spring", func(c *Config) { c.SpringConstant = -2 }},
		{"negative dt", func(c *Config) { c.Dt = Step(-0.1) }},
		{"zero dt", func(c *Config) { c.Dt = Step(0) }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if err := cfg.Validate(); !errors.Is(err, dynamo.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Plot.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero plot width")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "osc.yaml")
	data := "spring_constant: 4\ninit_state:\n  pos: 0\n  vel: 2\ndt: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOver(DefaultConfig(), path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SpringConstant != 4 || cfg.Dt == nil || *cfg.Dt != 0.25 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.InitState.Pos != 0 || cfg.InitState.Vel != 2 {
		t.Errorf("init state not applied: %+v", cfg.InitState)
	}
	if cfg.Mass != 1 || cfg.Duration != 100 {
		t.Errorf("defaults not kept for missing keys: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := LoadOver(DefaultConfig(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("mass: [1, 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOver(DefaultConfig(), path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadOver_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osc.yaml")
	if err := os.WriteFile(path, []byte("duration: 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("damped")
	cfg, err := LoadOver(base, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Damping != 0.8 || cfg.Duration != 20 {
		t.Errorf("unexpected merge result: %+v", cfg)
	}
	if base.Duration != 100 {
		t.Error("LoadOver mutated its base")
	}
}

func TestSaveLoad_OmitsDerivedStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "dt:") {
		t.Errorf("derived step should not be written:\n%s", data)
	}
	got, err := LoadOver(GetPreset("fine"), path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Dt == nil || *got.Dt != 0.01 {
		t.Error("file without dt should keep the base step")
	}
}

func TestClone_CopiesStep(t *testing.T) {
	a := GetPreset("coarse")
	b := a.Clone()
	*b.Dt = 5
	if *a.Dt != 0.9 {
		t.Error("Clone shares the step with its source")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	want := GetPreset("stiff")
	want.Plot.Theme = "ocean"

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadOver(DefaultConfig(), path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load(Save(cfg)) = %+v, want %+v", got, want)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, key := range []string{"mass: 1", "spring_constant: 1", "init_state:", "duration: 100"} {
		if !strings.Contains(out, key) {
			t.Errorf("encoded config missing %q:\n%s", key, out)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("kick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InitState.Pos != 0 || cfg.InitState.Vel != 2 {
		t.Errorf("unexpected kick init state %+v", cfg.InitState)
	}

	cfg.Mass = 99
	if Presets["kick"].Mass == 99 {
		t.Error("GetPreset returned shared config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
