package model

import (
	"errors"
	"fmt"
	"math"
)

// Validation failures. Callers match with errors.Is; the wrapped message names the offending field.
var (
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrInvalidPhaseDuration = errors.New("invalid phase duration")
	ErrInvalidEfficiency    = errors.New("invalid efficiency")
	ErrInvalidParameter     = errors.New("invalid parameter")
)

// MotorSystemParams describes the motor/pump unit.
// Units:
// - MotorRPM: rev/min
// - PumpEfficiency: fraction (0,1]
// - SystemLosses: bar, added to the load pressure
type MotorSystemParams struct {
	MotorRPM       float64 `json:"motor_rpm"`
	PumpEfficiency float64 `json:"pump_efficiency"`
	SystemLosses   float64 `json:"system_losses"`
}

// CylinderParams describes the press cylinder and its loads.
// Units:
// - Bore: cm
// - Rod: mm
// - DeadLoad, HoldingLoad: metric ton
type CylinderParams struct {
	Bore        float64 `json:"bore"`
	Rod         float64 `json:"rod"`
	DeadLoad    float64 `json:"dead_load"`
	HoldingLoad float64 `json:"holding_load"`
}

// CyclePhaseParams is the commanded motion for one phase.
// Speed is mm/s, Stroke is mm, Time is s.
type CyclePhaseParams struct {
	Speed  float64 `json:"speed"`
	Stroke float64 `json:"stroke"`
	Time   float64 `json:"time"`
}

// HoldingParams only carries a duration; the ram does not move while holding.
type HoldingParams struct {
	Time float64 `json:"time"`
}

// CyclePhases is the fixed four-phase press cycle, in execution order.
type CyclePhases struct {
	FastDown CyclePhaseParams `json:"fast_down"`
	Working  CyclePhaseParams `json:"working"`
	Holding  HoldingParams    `json:"holding"`
	FastUp   CyclePhaseParams `json:"fast_up"`
}

// TotalTime is the full cycle duration in seconds.
func (c CyclePhases) TotalTime() float64 {
	return c.FastDown.Time + c.Working.Time + c.Holding.Time + c.FastUp.Time
}

func (m MotorSystemParams) Validate() error {
	if !(m.PumpEfficiency > 0) || m.PumpEfficiency > 1 {
		return fmt.Errorf("%w: pump efficiency must be in (0, 1], got %v", ErrInvalidEfficiency, m.PumpEfficiency)
	}
	if !(m.MotorRPM > 0) || math.IsInf(m.MotorRPM, 0) {
		return fmt.Errorf("%w: motor rpm must be > 0", ErrInvalidParameter)
	}
	if m.SystemLosses < 0 || math.IsNaN(m.SystemLosses) {
		return fmt.Errorf("%w: system losses must be >= 0", ErrInvalidParameter)
	}
	return nil
}

// Validate checks ranges only. The annular-area check lives with the geometry resolver,
// which is the one place areas are computed.
func (c CylinderParams) Validate() error {
	if !(c.Bore > 0) || math.IsInf(c.Bore, 0) {
		return fmt.Errorf("%w: bore must be > 0", ErrInvalidGeometry)
	}
	if c.Rod < 0 || math.IsNaN(c.Rod) {
		return fmt.Errorf("%w: rod must be >= 0", ErrInvalidGeometry)
	}
	if c.DeadLoad < 0 || math.IsNaN(c.DeadLoad) {
		return fmt.Errorf("%w: dead load must be >= 0", ErrInvalidParameter)
	}
	if c.HoldingLoad < 0 || math.IsNaN(c.HoldingLoad) {
		return fmt.Errorf("%w: holding load must be >= 0", ErrInvalidParameter)
	}
	return nil
}

func (c CyclePhases) Validate() error {
	durations := []struct {
		name string
		t    float64
	}{
		{"fast_down", c.FastDown.Time},
		{"working", c.Working.Time},
		{"holding", c.Holding.Time},
		{"fast_up", c.FastUp.Time},
	}
	for _, d := range durations {
		if !(d.t > 0) || math.IsInf(d.t, 0) {
			return fmt.Errorf("%w: %s time must be > 0, got %v", ErrInvalidPhaseDuration, d.name, d.t)
		}
	}
	if !(c.TotalTime() > 0) {
		return fmt.Errorf("%w: total cycle time must be > 0", ErrInvalidPhaseDuration)
	}
	moving := []struct {
		name string
		p    CyclePhaseParams
	}{
		{"fast_down", c.FastDown},
		{"working", c.Working},
		{"fast_up", c.FastUp},
	}
	for _, m := range moving {
		if m.p.Speed < 0 || math.IsNaN(m.p.Speed) {
			return fmt.Errorf("%w: %s speed must be >= 0", ErrInvalidParameter, m.name)
		}
		if m.p.Stroke < 0 || math.IsNaN(m.p.Stroke) {
			return fmt.Errorf("%w: %s stroke must be >= 0", ErrInvalidParameter, m.name)
		}
	}
	return nil
}
