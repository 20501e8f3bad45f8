package model

// Phase names one segment of the press cycle.
// Keep these values stable; they are intended for CSV and JSON output.
type Phase string

const (
	PhaseFastDown Phase = "FAST_DOWN"
	PhaseWorking  Phase = "WORKING"
	PhaseHolding  Phase = "HOLDING"
	PhaseFastUp   Phase = "FAST_UP"
)

// Phases lists the cycle phases in execution order.
var Phases = []Phase{PhaseFastDown, PhaseWorking, PhaseHolding, PhaseFastUp}

// Retracting reports whether the ram moves up (rod side is pressurised).
func (p Phase) Retracting() bool {
	return p == PhaseFastUp
}
