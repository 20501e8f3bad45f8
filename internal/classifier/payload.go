package classifier

import (
	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/model"
)

// PhasePayload mirrors one cycle phase in the request body.
type PhasePayload struct {
	Speed  float64 `json:"speed"`
	Stroke float64 `json:"stroke"`
	Time   float64 `json:"time"`
}

// HoldingPayload carries only the dwell time.
type HoldingPayload struct {
	Time float64 `json:"time"`
}

// SamplePayload is one simulation sample, keyed the way the scoring service expects.
type SamplePayload struct {
	Time            float64 `json:"time"`
	Stroke          float64 `json:"stroke"`
	Speed           float64 `json:"speed"`
	Flow            float64 `json:"flow"`
	Pressure        float64 `json:"pressure"`
	HydraulicPower  float64 `json:"hydraulicPower"`
	MotorPower      float64 `json:"motorPower"`
	IdealMotorPower float64 `json:"idealMotorPower"`
	SwashplateAngle float64 `json:"swashplateAngle"`
}

// Payload is the request body of the scoring service.
type Payload struct {
	BoreCM        float64 `json:"bore_cm"`
	RodMM         float64 `json:"rod_mm"`
	DeadLoadTon   float64 `json:"dead_load_ton"`
	HoldLoadTon   float64 `json:"hold_load_ton"`
	MotorRPM      float64 `json:"motor_rpm"`
	PumpEff       float64 `json:"pump_eff"`
	SystemLossBar float64 `json:"system_loss_bar"`

	FastDown PhasePayload   `json:"fast_down"`
	Working  PhasePayload   `json:"working"`
	Holding  HoldingPayload `json:"holding"`
	FastUp   PhasePayload   `json:"fast_up"`

	MaxPressureBar float64 `json:"max_pressure_bar"`
	MaxFlowLPM     float64 `json:"max_flow_lpm"`
	MaxSpeedMMS    float64 `json:"max_speed_mms"`
	MaxPowerKW     float64 `json:"max_power_kw"`

	SimulationData []SamplePayload `json:"simulation_data"`
}

// BuildPayload assembles the scoring request from a finished run. It only reads its arguments.
func BuildPayload(in model.Inputs, res *model.SimulationResult, sum analysis.Summary) Payload {
	phase := func(p model.CyclePhaseParams) PhasePayload {
		return PhasePayload{Speed: p.Speed, Stroke: p.Stroke, Time: p.Time}
	}
	p := Payload{
		BoreCM:        in.Cylinder.Bore,
		RodMM:         in.Cylinder.Rod,
		DeadLoadTon:   in.Cylinder.DeadLoad,
		HoldLoadTon:   in.Cylinder.HoldingLoad,
		MotorRPM:      in.Motor.MotorRPM,
		PumpEff:       in.Motor.PumpEfficiency,
		SystemLossBar: in.Motor.SystemLosses,

		FastDown: phase(in.Phases.FastDown),
		Working:  phase(in.Phases.Working),
		Holding:  HoldingPayload{Time: in.Phases.Holding.Time},
		FastUp:   phase(in.Phases.FastUp),

		MaxPressureBar: sum.MaxPressure,
		MaxFlowLPM:     sum.MaxFlow,
		MaxSpeedMMS:    sum.MaxSpeed,
		MaxPowerKW:     sum.MaxMotorPower,

		SimulationData: make([]SamplePayload, 0, res.Len()),
	}
	if res != nil {
		for _, d := range res.Samples {
			p.SimulationData = append(p.SimulationData, SamplePayload{
				Time:            d.Time,
				Stroke:          d.Stroke,
				Speed:           d.Speed,
				Flow:            d.Flow,
				Pressure:        d.Pressure,
				HydraulicPower:  d.HydraulicPower,
				MotorPower:      d.MotorPower,
				IdealMotorPower: d.IdealMotorPower,
				SwashplateAngle: d.SwashplateAngle,
			})
		}
	}
	return p
}
