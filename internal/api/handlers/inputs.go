package handlers

import (
	"fmt"

	"hydraulic-press-sim/internal/api/models"
	"hydraulic-press-sim/internal/config"
	"hydraulic-press-sim/internal/model"
)

type presetNotFoundError struct {
	id string
}

func (e *presetNotFoundError) Error() string {
	return fmt.Sprintf("preset %q not found", e.id)
}

// basePreset returns the preset named by id, or the built-in reference press when id is empty.
func basePreset(dir, id string) (config.Preset, error) {
	if id == "" {
		return config.FromModelInputs("default", model.DefaultInputs()), nil
	}
	path, ok := config.ResolvePreset(dir, id)
	if !ok {
		return config.Preset{}, &presetNotFoundError{id: id}
	}
	p, err := config.LoadUnchecked(path)
	if err != nil {
		return config.Preset{}, fmt.Errorf("load preset %s: %w", id, err)
	}
	if p.Name == "" {
		p.Name = id
	}
	return *p, nil
}

// overlay applies the fields present in req onto base. Nil means "not sent"; zero is a value.
func overlay(base config.Preset, name string, req models.PressConfig) config.Preset {
	out := base
	if name != "" {
		out.Name = name
	}
	setIf(&out.Motor.MotorRPM, req.Motor.MotorRPM)
	setIf(&out.Motor.PumpEfficiency, req.Motor.PumpEfficiency)
	setIf(&out.Motor.SystemLosses, req.Motor.SystemLosses)

	setIf(&out.Cylinder.BoreCM, req.Cylinder.BoreCM)
	setIf(&out.Cylinder.RodMM, req.Cylinder.RodMM)
	setIf(&out.Cylinder.DeadLoadTon, req.Cylinder.DeadLoadTon)
	setIf(&out.Cylinder.HoldingLoadTon, req.Cylinder.HoldingLoadTon)

	overlayPhase(&out.Phases.FastDown, req.Phases.FastDown)
	overlayPhase(&out.Phases.Working, req.Phases.Working)
	overlayPhase(&out.Phases.Holding, req.Phases.Holding)
	overlayPhase(&out.Phases.FastUp, req.Phases.FastUp)
	return out
}

func overlayPhase(dst *config.PhaseConfig, req models.PhaseConfig) {
	setIf(&dst.Speed, req.Speed)
	setIf(&dst.Stroke, req.Stroke)
	setIf(&dst.Time, req.Time)
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
