package main

import (
	"flag"
	"fmt"

	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/config"
	"hydraulic-press-sim/internal/model"
	"hydraulic-press-sim/internal/report"
	"hydraulic-press-sim/internal/simulation"
)

// Demo:
// - Build the reference press (or load a preset)
// - Run one cycle through the engine
// - Print every n-th sample to show how the phases fit together
func main() {
	cfgPath := flag.String("config", "", "Path to press preset YAML (optional)")
	every := flag.Int("every", 5, "Print every n-th sample")
	outCSV := flag.String("out", "", "Optional path to write the series CSV (e.g. results/series.csv)")
	flag.Parse()

	in := model.DefaultInputs()
	if *cfgPath != "" {
		p, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		in = p.ToModelInputs()
	}

	geo, err := simulation.ResolveGeometry(in.Cylinder)
	if err != nil {
		panic(err)
	}
	res, err := simulation.New().Run(in)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Bore %.0f cm, rod %.0f mm, motor %.0f rpm @ %.0f%%\n",
		in.Cylinder.Bore, in.Cylinder.Rod, in.Motor.MotorRPM, in.Motor.PumpEfficiency*100)
	fmt.Printf("Pressures: dead %.3f bar, hold %.3f bar, return %.3f bar (+%.0f bar losses)\n",
		geo.DeadPressure, geo.HoldPressure, geo.ReturnPressure, in.Motor.SystemLosses)
	fmt.Printf("Cycle %.1f s -> %d samples\n\n", in.Phases.TotalTime(), res.Len())

	if *every < 1 {
		*every = 1
	}
	fmt.Printf("%6s %-10s %8s %7s %8s %8s %8s %7s\n", "t(s)", "phase", "x(mm)", "v(mm/s)", "Q(L/min)", "p(bar)", "P(kW)", "swash")
	for i, d := range res.Samples {
		if i%*every != 0 && i != res.Len()-1 {
			continue
		}
		fmt.Printf("%6.1f %-10s %8.1f %7.1f %8.2f %8.2f %8.3f %7.2f\n",
			d.Time, d.Phase, d.Stroke, d.Speed, d.Flow, d.Pressure, d.MotorPower, d.SwashplateAngle)
	}

	sum := analysis.Summarize(in.Phases, res)
	if *outCSV != "" {
		if err := report.WriteSeriesCSVFile(*outCSV, res); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Max pressure=%.2f bar  Max motor power=%.2f kW  Efficiency=%.3f\n",
		sum.MaxPressure, sum.MaxMotorPower, sum.Efficiency)
}
