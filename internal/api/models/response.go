package models

import (
	"time"

	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/classifier"
	"hydraulic-press-sim/internal/model"
)

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID      string                      `json:"id"`
	Status  string                      `json:"status"`
	Name    string                      `json:"name,omitempty"`
	Summary analysis.Summary            `json:"summary"`
	Series  []model.SimulationDataPoint `json:"series,omitempty"`
}

// RunResponse is a stored run, always with its series
type RunResponse struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
	Inputs    model.Inputs                `json:"inputs"`
	Summary   analysis.Summary            `json:"summary"`
	TimeStep  float64                     `json:"time_step"`
	Series    []model.SimulationDataPoint `json:"series"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
	Failed     []FailedVariation  `json:"failed,omitempty"`
}

// ComparisonResult contains results for one variation, best efficiency first
type ComparisonResult struct {
	Rank    int              `json:"rank"`
	Name    string           `json:"name"`
	Summary analysis.Summary `json:"summary"`
}

// FailedVariation is a variation the engine rejected
type FailedVariation struct {
	Name  string      `json:"name"`
	Error ErrorDetail `json:"error"`
}

// ClassifyResponse wraps the classification verdict of a stored run
type ClassifyResponse struct {
	ID     string             `json:"id"`
	Result *classifier.Result `json:"result"`
}

// PresetInfo represents information about a press preset
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Specs PresetSpecs `json:"specs"`
}

// PresetSpecs contains the headline figures of a preset
type PresetSpecs struct {
	BoreCM         float64 `json:"bore_cm"`
	RodMM          float64 `json:"rod_mm"`
	HoldingLoadTon float64 `json:"holding_load_ton"`
	MotorRPM       float64 `json:"motor_rpm"`
	CycleTimeS     float64 `json:"cycle_time_s"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
