package analysis

import (
	"math"
	"sort"

	"hydraulic-press-sim/internal/model"
)

// Summary is the run-level digest consumed by reports and the classifier.
type Summary struct {
	Samples int `json:"samples"`

	MaxPressure       float64 `json:"max_pressure_bar"`
	P95Pressure       float64 `json:"p95_pressure_bar"`
	MaxFlow           float64 `json:"max_flow_lpm"`
	MaxSpeed          float64 `json:"max_speed_mms"`
	MaxHydraulicPower float64 `json:"max_hydraulic_power_kw"`
	MaxMotorPower     float64 `json:"max_motor_power_kw"`
	AvgMotorPower     float64 `json:"avg_motor_power_kw"`

	// EnergyKJ is the motor energy over the cycle (kW·s).
	EnergyKJ float64 `json:"energy_kj"`

	// Efficiency is mean(ideal/motor power) over samples that draw power.
	// Samples with zero motor power are excluded and counted in ExcludedSamples.
	Efficiency      float64 `json:"efficiency"`
	ExcludedSamples int     `json:"excluded_samples"`

	Phases []PhaseSummary `json:"phases"`
}

// PhaseSummary aggregates the samples of one phase.
type PhaseSummary struct {
	Phase         model.Phase `json:"phase"`
	Duration      float64     `json:"duration_s"`
	Samples       int         `json:"samples"`
	MaxFlow       float64     `json:"max_flow_lpm"`
	MeanPressure  float64     `json:"mean_pressure_bar"`
	MaxMotorPower float64     `json:"max_motor_power_kw"`
}

// Summarize computes the summary of a finished run.
func Summarize(phases model.CyclePhases, res *model.SimulationResult) Summary {
	s := Summary{}
	if res.Len() == 0 {
		return s
	}
	samples := res.Samples
	s.Samples = len(samples)

	dt := res.TimeStep
	pressures := make([]float64, 0, len(samples))
	sumMotor := 0.0
	sumRatio := 0.0
	ratioN := 0
	s.MaxPressure = math.Inf(-1)

	type acc struct {
		n           int
		sumPressure float64
		maxFlow     float64
		maxMotor    float64
	}
	perPhase := map[model.Phase]*acc{}

	for _, d := range samples {
		pressures = append(pressures, d.Pressure)
		s.MaxPressure = math.Max(s.MaxPressure, d.Pressure)
		s.MaxFlow = math.Max(s.MaxFlow, d.Flow)
		s.MaxSpeed = math.Max(s.MaxSpeed, d.Speed)
		s.MaxHydraulicPower = math.Max(s.MaxHydraulicPower, d.HydraulicPower)
		s.MaxMotorPower = math.Max(s.MaxMotorPower, d.MotorPower)
		sumMotor += d.MotorPower

		if d.MotorPower > 0 {
			sumRatio += d.IdealMotorPower / d.MotorPower
			ratioN++
		} else {
			s.ExcludedSamples++
		}

		a, ok := perPhase[d.Phase]
		if !ok {
			a = &acc{}
			perPhase[d.Phase] = a
		}
		a.n++
		a.sumPressure += d.Pressure
		a.maxFlow = math.Max(a.maxFlow, d.Flow)
		a.maxMotor = math.Max(a.maxMotor, d.MotorPower)
	}

	s.AvgMotorPower = sumMotor / float64(len(samples))
	s.EnergyKJ = sumMotor * dt
	if ratioN > 0 {
		s.Efficiency = sumRatio / float64(ratioN)
	}
	sort.Float64s(pressures)
	s.P95Pressure = percentileSorted(pressures, 0.95)

	durations := map[model.Phase]float64{
		model.PhaseFastDown: phases.FastDown.Time,
		model.PhaseWorking:  phases.Working.Time,
		model.PhaseHolding:  phases.Holding.Time,
		model.PhaseFastUp:   phases.FastUp.Time,
	}
	for _, p := range model.Phases {
		ps := PhaseSummary{Phase: p, Duration: durations[p]}
		if a, ok := perPhase[p]; ok {
			ps.Samples = a.n
			ps.MaxFlow = a.maxFlow
			ps.MeanPressure = a.sumPressure / float64(a.n)
			ps.MaxMotorPower = a.maxMotor
		}
		s.Phases = append(s.Phases, ps)
	}
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
