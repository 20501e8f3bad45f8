package simulation

import (
	"math"

	"hydraulic-press-sim/internal/model"
)

// TimeStep is the sampling interval of every run, in seconds.
const TimeStep = 0.1

// Pump characteristic. The swashplate reaches maxSwashDeg when the pump delivers its derated
// full displacement.
const (
	maxSwashDeg       = 25.0 // degrees
	maxDisplacementCC = 25.0 // cm³/rev
	volumetricDerate  = 0.95

	// kW = bar · L/min / 600
	powerUnit = 600.0
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// SampleCount returns the number of samples a cycle of the given length produces.
func SampleCount(totalTime float64) int {
	return int(math.Floor(totalTime/TimeStep+boundaryEpsilon)) + 1
}

// Run simulates one press cycle. All validation happens before the first sample is produced;
// on error no partial series is returned.
func (e *Engine) Run(in model.Inputs) (*model.SimulationResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	geo, err := ResolveGeometry(in.Cylinder)
	if err != nil {
		return nil, err
	}
	table, err := NewPhaseTable(in.Phases)
	if err != nil {
		return nil, err
	}

	n := SampleCount(table.Total())
	samples := make([]model.SimulationDataPoint, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * TimeStep
		samples = append(samples, sampleAt(t, table.At(t), geo, in.Motor))
	}

	return &model.SimulationResult{
		Samples:   samples,
		Simulated: true,
		TimeStep:  TimeStep,
	}, nil
}

func sampleAt(t float64, st PhaseState, geo Geometry, motor model.MotorSystemParams) model.SimulationDataPoint {
	pressure := geo.PressureFor(st.Phase)
	speedMS := math.Abs(st.Speed) / mmPerMeter

	// m³/s -> L/min
	flow := geo.AreaFor(st.Phase) * speedMS * 60 * 1000

	hydraulic := (pressure + motor.SystemLosses) * flow / powerUnit

	return model.SimulationDataPoint{
		Time:            t,
		Phase:           st.Phase,
		Stroke:          st.Stroke,
		Speed:           math.Abs(st.Speed),
		Flow:            flow,
		Pressure:        pressure + motor.SystemLosses,
		HydraulicPower:  hydraulic,
		MotorPower:      hydraulic / motor.PumpEfficiency,
		IdealMotorPower: pressure * flow / powerUnit,
		SwashplateAngle: SwashplateAngle(flow, motor.MotorRPM),
	}
}

// SwashplateAngle returns the pump angle in degrees needed to deliver flow (L/min) at rpm.
// Demand beyond rated delivery saturates at 90°.
func SwashplateAngle(flow, rpm float64) float64 {
	arg := flow * 1000 * math.Sin(maxSwashDeg*math.Pi/180) / (maxDisplacementCC * volumetricDerate * rpm)
	return math.Abs(math.Asin(clamp(arg, -1, 1)) * 180 / math.Pi)
}
