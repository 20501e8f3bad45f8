package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydraulic-press-sim/internal/model"
	"hydraulic-press-sim/internal/simulation"
)

func TestSummarizeHandBuilt(t *testing.T) {
	res := &model.SimulationResult{
		TimeStep:  0.1,
		Simulated: true,
		Samples: []model.SimulationDataPoint{
			{Time: 0, Phase: model.PhaseFastDown, Speed: 100, Flow: 50, Pressure: 12, HydraulicPower: 1, MotorPower: 2, IdealMotorPower: 1},
			{Time: 0.1, Phase: model.PhaseWorking, Speed: 5, Flow: 10, Pressure: 30, HydraulicPower: 3, MotorPower: 4, IdealMotorPower: 3},
			{Time: 0.2, Phase: model.PhaseHolding, Pressure: 30},
			{Time: 0.3, Phase: model.PhaseFastUp, Speed: 120, Flow: 40, Pressure: 14, HydraulicPower: 1.5, MotorPower: 2, IdealMotorPower: 0.5},
		},
	}
	s := Summarize(model.DefaultInputs().Phases, res)

	assert.Equal(t, 4, s.Samples)
	assert.Equal(t, 30.0, s.MaxPressure)
	assert.Equal(t, 50.0, s.MaxFlow)
	assert.Equal(t, 120.0, s.MaxSpeed)
	assert.Equal(t, 3.0, s.MaxHydraulicPower)
	assert.Equal(t, 4.0, s.MaxMotorPower)
	assert.InDelta(t, 2.0, s.AvgMotorPower, 1e-12)
	assert.InDelta(t, 0.8, s.EnergyKJ, 1e-12)

	// (0.5 + 0.75 + 0.25) / 3, holding excluded
	assert.InDelta(t, 0.5, s.Efficiency, 1e-12)
	assert.Equal(t, 1, s.ExcludedSamples)

	require.Len(t, s.Phases, 4)
	assert.Equal(t, model.PhaseHolding, s.Phases[2].Phase)
	assert.Equal(t, 1, s.Phases[2].Samples)
	assert.Equal(t, 1.0, s.Phases[2].Duration)
	assert.Equal(t, 30.0, s.Phases[2].MeanPressure)
}

func TestSummarizeReferencePress(t *testing.T) {
	in := model.DefaultInputs()
	res, err := simulation.New().Run(in)
	require.NoError(t, err)
	geo, err := simulation.ResolveGeometry(in.Cylinder)
	require.NoError(t, err)

	s := Summarize(in.Phases, res)
	assert.Equal(t, 91, s.Samples)
	assert.InDelta(t, geo.HoldPressure+10, s.MaxPressure, 1e-9)
	assert.InDelta(t, geo.PistonArea*0.2*60*1000, s.MaxFlow, 1e-9)
	assert.Equal(t, 200.0, s.MaxSpeed)
	assert.Equal(t, 10, s.ExcludedSamples)

	eff := func(p float64) float64 { return 0.9 * p / (p + 10) }
	want := (20*eff(geo.DeadPressure) + 40*eff(geo.HoldPressure) + 21*eff(geo.ReturnPressure)) / 81
	assert.InDelta(t, want, s.Efficiency, 1e-9)

	counts := []int{20, 40, 10, 21}
	for i, p := range s.Phases {
		assert.Equal(t, counts[i], p.Samples, "phase %s", p.Phase)
	}
	assert.Equal(t, 0.0, s.Phases[2].MaxFlow)
}

func TestSummarizeAllIdle(t *testing.T) {
	in := model.DefaultInputs()
	in.Phases.FastDown.Speed = 0
	in.Phases.Working.Speed = 0
	in.Phases.FastUp.Speed = 0
	res, err := simulation.New().Run(in)
	require.NoError(t, err)

	s := Summarize(in.Phases, res)
	assert.Equal(t, 0.0, s.Efficiency)
	assert.Equal(t, s.Samples, s.ExcludedSamples)
	assert.Equal(t, 0.0, s.MaxMotorPower)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(model.DefaultInputs().Phases, &model.SimulationResult{})
	assert.Equal(t, 0, s.Samples)
	assert.Nil(t, s.Phases)

	var nilRes *model.SimulationResult
	assert.Equal(t, Summary{}, Summarize(model.DefaultInputs().Phases, nilRes))
}

func TestPercentileSorted(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 1.0, percentileSorted(vals, 0))
	assert.Equal(t, 5.0, percentileSorted(vals, 1))
	assert.Equal(t, 3.0, percentileSorted(vals, 0.5))
	assert.InDelta(t, 4.8, percentileSorted(vals, 0.95), 1e-12)
	assert.Equal(t, 0.0, percentileSorted(nil, 0.5))
}
