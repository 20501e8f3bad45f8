package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/classifier"
	"hydraulic-press-sim/internal/config"
	"hydraulic-press-sim/internal/model"
	"hydraulic-press-sim/internal/report"
	"hydraulic-press-sim/internal/simulation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "classify":
		cmdClassify(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/presses/1_reference_press.yaml --out results/series.csv [--xlsx results/report.xlsx]")
	fmt.Println("  cli compare --config examples/presses/1_reference_press.yaml,examples/presses/3_compact_press.yaml")
	fmt.Println("  cli classify --config examples/presses/1_reference_press.yaml [--url http://127.0.0.1:5000]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate samples one press cycle every 0.1 s and writes the series as CSV")
	fmt.Println("  - compare ranks presets by efficiency estimate")
	fmt.Println("  - classify sends the run to the remote anomaly/classification service")
}

// loadInputs returns the built-in reference press when path is empty.
func loadInputs(path string) (string, model.Inputs) {
	if path == "" {
		return "default", model.DefaultInputs()
	}
	p, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	name := p.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return name, p.ToModelInputs()
}

func run(in model.Inputs) (*model.SimulationResult, analysis.Summary) {
	res, err := simulation.New().Run(in)
	if err != nil {
		fatal(err)
	}
	return res, analysis.Summarize(in.Phases, res)
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to press preset YAML (default: built-in reference press)")
	outPath := fs.String("out", "results/series.csv", "Output CSV path")
	xlsxPath := fs.String("xlsx", "", "Optional: also write an XLSX report")
	_ = fs.Parse(args)

	name, in := loadInputs(*cfgPath)
	res, sum := run(in)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal(err)
	}
	if err := report.WriteSeriesCSVFile(*outPath, res); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %d samples to %s\n", res.Len(), *outPath)

	if *xlsxPath != "" {
		if err := os.MkdirAll(filepath.Dir(*xlsxPath), 0o755); err != nil {
			fatal(err)
		}
		if err := report.WriteWorkbookFile(*xlsxPath, in, res, sum); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote report to %s\n", *xlsxPath)
	}

	printSummary(name, sum)
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPaths := fs.String("config", "", "Comma-separated preset paths or a directory")
	_ = fs.Parse(args)

	paths := expandPaths(*cfgPaths)
	if len(paths) == 0 {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	vs := make([]analysis.Variation, 0, len(paths))
	for _, p := range paths {
		name, in := loadInputs(p)
		_, sum := run(in)
		vs = append(vs, analysis.Variation{Name: name, Summary: sum})
	}

	ranked := analysis.RankByEfficiency(vs)
	fmt.Printf("%-4s %-28s %-10s %-12s %-12s %-10s\n", "rank", "press", "eff", "maxP(bar)", "maxMotor(kW)", "energy(kJ)")
	for i, v := range ranked {
		fmt.Printf(
			"%-4d %-28s %-10.3f %-12.1f %-12.2f %-10.1f\n",
			i+1,
			v.Name,
			v.Summary.Efficiency,
			v.Summary.MaxPressure,
			v.Summary.MaxMotorPower,
			v.Summary.EnergyKJ,
		)
	}
}

func cmdClassify(args []string) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to press preset YAML (default: built-in reference press)")
	url := fs.String("url", os.Getenv("CLASSIFIER_URL"), "Classification service base URL")
	timeout := fs.Duration("timeout", 30*time.Second, "Request timeout")
	_ = fs.Parse(args)

	_, in := loadInputs(*cfgPath)
	res, sum := run(in)

	client := classifier.NewClient(*url, *timeout)
	result, err := client.Classify(context.Background(), classifier.BuildPayload(in, res, sum))
	if err != nil {
		fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fatal(err)
	}
}

func printSummary(name string, s analysis.Summary) {
	fmt.Printf("\n%s: %d samples\n", name, s.Samples)
	fmt.Printf("  max pressure  %8.2f bar (p95 %.2f)\n", s.MaxPressure, s.P95Pressure)
	fmt.Printf("  max flow      %8.2f L/min\n", s.MaxFlow)
	fmt.Printf("  max motor     %8.2f kW (avg %.2f)\n", s.MaxMotorPower, s.AvgMotorPower)
	fmt.Printf("  energy        %8.2f kJ\n", s.EnergyKJ)
	fmt.Printf("  efficiency    %8.3f (%d idle samples excluded)\n", s.Efficiency, s.ExcludedSamples)
	for _, p := range s.Phases {
		fmt.Printf("  %-10s %4.1fs %3d samples  flow<=%7.2f  p~%7.2f  motor<=%6.2f\n",
			p.Phase, p.Duration, p.Samples, p.MaxFlow, p.MeanPressure, p.MaxMotorPower)
	}
}

func expandPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			fatal(err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		presets, err := config.ListPresets(p)
		if err != nil {
			fatal(err)
		}
		for _, pr := range presets {
			out = append(out, pr.File)
		}
	}
	return out
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
