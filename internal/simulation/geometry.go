package simulation

import (
	"fmt"
	"math"

	"hydraulic-press-sim/internal/model"
)

const (
	gravity      = 9.81   // m/s²
	kgPerTon     = 1000.0 // metric ton
	pascalPerBar = 100000.0
	cmPerMeter   = 100.0
	mmPerMeter   = 1000.0
)

// Geometry holds the per-run cylinder quantities. Areas are m², forces N, pressures bar.
type Geometry struct {
	PistonArea  float64
	RodArea     float64
	AnnularArea float64

	DeadForce float64
	HoldForce float64

	// DeadPressure drives fast-down on the piston side.
	DeadPressure float64
	// HoldPressure applies to working and holding on the piston side.
	HoldPressure float64
	// ReturnPressure lifts the dead load on the rod side during fast-up.
	ReturnPressure float64
}

// ResolveGeometry converts cylinder parameters into areas, forces and base pressures.
// A rod at least as large as the bore has no annular area and yields ErrInvalidGeometry.
func ResolveGeometry(c model.CylinderParams) (Geometry, error) {
	if err := c.Validate(); err != nil {
		return Geometry{}, err
	}
	boreM := c.Bore / cmPerMeter
	rodM := c.Rod / mmPerMeter

	g := Geometry{
		PistonArea: circleArea(boreM),
		RodArea:    circleArea(rodM),
	}
	g.AnnularArea = g.PistonArea - g.RodArea
	if !(g.AnnularArea > 0) {
		return Geometry{}, fmt.Errorf("%w: rod %.1f mm leaves no annular area in a %.1f cm bore", model.ErrInvalidGeometry, c.Rod, c.Bore)
	}

	g.DeadForce = c.DeadLoad * kgPerTon * gravity
	g.HoldForce = c.HoldingLoad * kgPerTon * gravity

	g.DeadPressure = g.DeadForce / (g.PistonArea * pascalPerBar)
	g.HoldPressure = g.HoldForce / (g.PistonArea * pascalPerBar)
	g.ReturnPressure = g.DeadForce / (g.AnnularArea * pascalPerBar)
	return g, nil
}

// AreaFor returns the face displaced during a phase.
func (g Geometry) AreaFor(p model.Phase) float64 {
	if p.Retracting() {
		return g.AnnularArea
	}
	return g.PistonArea
}

// PressureFor returns the load pressure of a phase, without system losses.
func (g Geometry) PressureFor(p model.Phase) float64 {
	switch p {
	case model.PhaseFastDown:
		return g.DeadPressure
	case model.PhaseFastUp:
		return g.ReturnPressure
	default:
		return g.HoldPressure
	}
}

func circleArea(d float64) float64 {
	r := d / 2
	return math.Pi * r * r
}
