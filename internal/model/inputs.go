package model

// Inputs is the complete, immutable configuration of one simulation run.
//
// It is passed by value: a run works on its own copy, so edits the caller makes
// after starting a run are never observed by it.
type Inputs struct {
	Motor    MotorSystemParams `json:"motor"`
	Cylinder CylinderParams    `json:"cylinder"`
	Phases   CyclePhases       `json:"phases"`
}

// Validate runs the range checks of every parameter group.
func (in Inputs) Validate() error {
	if err := in.Motor.Validate(); err != nil {
		return err
	}
	if err := in.Cylinder.Validate(); err != nil {
		return err
	}
	return in.Phases.Validate()
}

// DefaultInputs is the reference press used when no preset is given.
func DefaultInputs() Inputs {
	return Inputs{
		Motor: MotorSystemParams{
			MotorRPM:       1800,
			PumpEfficiency: 0.9,
			SystemLosses:   10,
		},
		Cylinder: CylinderParams{
			Bore:        25,
			Rod:         60,
			DeadLoad:    2,
			HoldingLoad: 8,
		},
		Phases: CyclePhases{
			FastDown: CyclePhaseParams{Speed: 200, Stroke: 300, Time: 2},
			Working:  CyclePhaseParams{Speed: 3, Stroke: 100, Time: 4},
			Holding:  HoldingParams{Time: 1},
			FastUp:   CyclePhaseParams{Speed: 200, Stroke: 400, Time: 2},
		},
	}
}
