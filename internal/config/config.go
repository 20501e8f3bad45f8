package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hydraulic-press-sim/internal/model"
	"hydraulic-press-sim/internal/simulation"

	"gopkg.in/yaml.v3"
)

// Preset is the on-disk press configuration (YAML).
type Preset struct {
	// Optional: start from another preset file (e.g. examples/presses/*.yaml).
	// Non-zero fields in this file override the base.
	BaseFile string `yaml:"base_file"`

	Name     string         `yaml:"name"`
	Motor    MotorConfig    `yaml:"motor"`
	Cylinder CylinderConfig `yaml:"cylinder"`
	Phases   PhasesConfig   `yaml:"phases"`
}

type MotorConfig struct {
	MotorRPM       float64 `yaml:"motor_rpm"`
	PumpEfficiency float64 `yaml:"pump_efficiency"`
	SystemLosses   float64 `yaml:"system_losses_bar"`
}

type CylinderConfig struct {
	BoreCM         float64 `yaml:"bore_cm"`
	RodMM          float64 `yaml:"rod_mm"`
	DeadLoadTon    float64 `yaml:"dead_load_ton"`
	HoldingLoadTon float64 `yaml:"holding_load_ton"`
}

type PhaseConfig struct {
	Speed  float64 `yaml:"speed_mms"`
	Stroke float64 `yaml:"stroke_mm"`
	Time   float64 `yaml:"time_s"`
}

type PhasesConfig struct {
	FastDown PhaseConfig `yaml:"fast_down"`
	Working  PhaseConfig `yaml:"working"`
	Holding  PhaseConfig `yaml:"holding"`
	FastUp   PhaseConfig `yaml:"fast_up"`
}

func Load(path string) (*Preset, error) {
	p, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadUnchecked loads and merges a preset, but does not validate it.
func LoadUnchecked(path string) (*Preset, error) {
	return loadPreset(path, 0)
}

// base files may chain, but not forever
const maxBaseDepth = 8

func loadPreset(path string, depth int) (*Preset, error) {
	if depth > maxBaseDepth {
		return nil, fmt.Errorf("base_file chain deeper than %d at %s", maxBaseDepth, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Preset
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if p.BaseFile == "" {
		return &p, nil
	}
	basePath := p.BaseFile
	if !filepath.IsAbs(basePath) {
		// Prefer interpreting relative paths as relative to the preset file directory,
		// but fall back to the provided path (relative to cwd) if that doesn't exist.
		cand := filepath.Join(filepath.Dir(path), basePath)
		if _, err := os.Stat(cand); err == nil {
			basePath = cand
		}
	}
	base, err := loadPreset(basePath, depth+1)
	if err != nil {
		return nil, err
	}
	merged := MergePreset(*base, p)
	merged.BaseFile = ""
	return &merged, nil
}

func (p *Preset) Validate() error {
	if p == nil {
		return errors.New("preset is nil")
	}
	in := p.ToModelInputs()
	if err := in.Validate(); err != nil {
		return fmt.Errorf("preset %q invalid: %w", p.Name, err)
	}
	if _, err := simulation.ResolveGeometry(in.Cylinder); err != nil {
		return fmt.Errorf("preset %q invalid: %w", p.Name, err)
	}
	return nil
}

// ToModelInputs converts the preset to the engine's value objects.
func (p Preset) ToModelInputs() model.Inputs {
	ph := func(c PhaseConfig) model.CyclePhaseParams {
		return model.CyclePhaseParams{Speed: c.Speed, Stroke: c.Stroke, Time: c.Time}
	}
	return model.Inputs{
		Motor: model.MotorSystemParams{
			MotorRPM:       p.Motor.MotorRPM,
			PumpEfficiency: p.Motor.PumpEfficiency,
			SystemLosses:   p.Motor.SystemLosses,
		},
		Cylinder: model.CylinderParams{
			Bore:        p.Cylinder.BoreCM,
			Rod:         p.Cylinder.RodMM,
			DeadLoad:    p.Cylinder.DeadLoadTon,
			HoldingLoad: p.Cylinder.HoldingLoadTon,
		},
		Phases: model.CyclePhases{
			FastDown: ph(p.Phases.FastDown),
			Working:  ph(p.Phases.Working),
			Holding:  model.HoldingParams{Time: p.Phases.Holding.Time},
			FastUp:   ph(p.Phases.FastUp),
		},
	}
}

// FromModelInputs is the inverse of ToModelInputs.
func FromModelInputs(name string, in model.Inputs) Preset {
	ph := func(c model.CyclePhaseParams) PhaseConfig {
		return PhaseConfig{Speed: c.Speed, Stroke: c.Stroke, Time: c.Time}
	}
	return Preset{
		Name: name,
		Motor: MotorConfig{
			MotorRPM:       in.Motor.MotorRPM,
			PumpEfficiency: in.Motor.PumpEfficiency,
			SystemLosses:   in.Motor.SystemLosses,
		},
		Cylinder: CylinderConfig{
			BoreCM:         in.Cylinder.Bore,
			RodMM:          in.Cylinder.Rod,
			DeadLoadTon:    in.Cylinder.DeadLoad,
			HoldingLoadTon: in.Cylinder.HoldingLoad,
		},
		Phases: PhasesConfig{
			FastDown: ph(in.Phases.FastDown),
			Working:  ph(in.Phases.Working),
			Holding:  PhaseConfig{Time: in.Phases.Holding.Time},
			FastUp:   ph(in.Phases.FastUp),
		},
	}
}

// MergePreset overlays non-zero fields from override onto base.
// Zero means "not set" here, so a preset cannot override a value back to zero;
// write the full preset instead.
func MergePreset(base, override Preset) Preset {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	setIf(&out.Motor.MotorRPM, override.Motor.MotorRPM)
	setIf(&out.Motor.PumpEfficiency, override.Motor.PumpEfficiency)
	setIf(&out.Motor.SystemLosses, override.Motor.SystemLosses)

	setIf(&out.Cylinder.BoreCM, override.Cylinder.BoreCM)
	setIf(&out.Cylinder.RodMM, override.Cylinder.RodMM)
	setIf(&out.Cylinder.DeadLoadTon, override.Cylinder.DeadLoadTon)
	setIf(&out.Cylinder.HoldingLoadTon, override.Cylinder.HoldingLoadTon)

	mergePhase(&out.Phases.FastDown, override.Phases.FastDown)
	mergePhase(&out.Phases.Working, override.Phases.Working)
	mergePhase(&out.Phases.Holding, override.Phases.Holding)
	mergePhase(&out.Phases.FastUp, override.Phases.FastUp)
	return out
}

func mergePhase(dst *PhaseConfig, o PhaseConfig) {
	setIf(&dst.Speed, o.Speed)
	setIf(&dst.Stroke, o.Stroke)
	setIf(&dst.Time, o.Time)
}

func setIf(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
