package models

// SimulateRequest represents the request body for running one simulation
type SimulateRequest struct {
	PresetID string          `json:"preset_id,omitempty"` // file name in PRESET_DIR without extension
	Name     string          `json:"name,omitempty"`
	Config   PressConfig     `json:"config"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// PressConfig mirrors the preset YAML. Omitted (null) fields are taken from the preset or the built-in defaults;
// an explicit 0 is kept.
type PressConfig struct {
	Motor    MotorConfig    `json:"motor"`
	Cylinder CylinderConfig `json:"cylinder"`
	Phases   PhasesConfig   `json:"phases"`
}

type MotorConfig struct {
	MotorRPM       *float64 `json:"motor_rpm"`
	PumpEfficiency *float64 `json:"pump_efficiency"`
	SystemLosses   *float64 `json:"system_losses_bar"`
}

type CylinderConfig struct {
	BoreCM         *float64 `json:"bore_cm"`
	RodMM          *float64 `json:"rod_mm"`
	DeadLoadTon    *float64 `json:"dead_load_ton"`
	HoldingLoadTon *float64 `json:"holding_load_ton"`
}

type PhaseConfig struct {
	Speed  *float64 `json:"speed_mms"`
	Stroke *float64 `json:"stroke_mm"`
	Time   *float64 `json:"time_s"`
}

type PhasesConfig struct {
	FastDown PhaseConfig `json:"fast_down"`
	Working  PhaseConfig `json:"working"`
	Holding  PhaseConfig `json:"holding"`
	FastUp   PhaseConfig `json:"fast_up"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludeSeries bool `json:"include_series,omitempty"` // default: false
}

// CompareRequest represents a request to compare several press variations
type CompareRequest struct {
	PresetID   string      `json:"preset_id,omitempty"`
	BaseConfig PressConfig `json:"base_config"`
	Variations []Variation `json:"variations" binding:"required,min=1,dive"`
}

// Variation defines a variation to test
type Variation struct {
	Name   string      `json:"name" binding:"required"`
	Config PressConfig `json:"config"`
}
