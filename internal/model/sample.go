package model

// SimulationDataPoint is one sample of the press state.
// Units: time s, stroke mm, speed mm/s (magnitude), flow L/min, pressure bar (incl. system losses),
// powers kW, swashplate angle degrees.
type SimulationDataPoint struct {
	Time            float64 `json:"time"`
	Phase           Phase   `json:"phase"`
	Stroke          float64 `json:"stroke"`
	Speed           float64 `json:"speed"`
	Flow            float64 `json:"flow"`
	Pressure        float64 `json:"pressure"`
	HydraulicPower  float64 `json:"hydraulicPower"`
	MotorPower      float64 `json:"motorPower"`
	IdealMotorPower float64 `json:"idealMotorPower"`
	SwashplateAngle float64 `json:"swashplateAngle"`
}

// SimulationResult is the ordered sample series of one run.
type SimulationResult struct {
	Samples   []SimulationDataPoint `json:"samples"`
	Simulated bool                  `json:"simulated"`
	TimeStep  float64               `json:"time_step"`
}

// Len returns the number of samples.
func (r *SimulationResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Samples)
}
