package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/model"
)

// Sheet names of the report workbook, in page order.
const (
	SheetParameters  = "Parameters"
	SheetSummary     = "Summary"
	SheetTimeHistory = "TimeHistory"
)

// WriteWorkbook renders inputs, summary and the full time history as an XLSX document.
func WriteWorkbook(w io.Writer, in model.Inputs, res *model.SimulationResult, sum analysis.Summary) error {
	f, err := buildWorkbook(in, res, sum)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// WriteWorkbookFile saves the workbook to path.
func WriteWorkbookFile(path string, in model.Inputs, res *model.SimulationResult, sum analysis.Summary) error {
	f, err := buildWorkbook(in, res, sum)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func buildWorkbook(in model.Inputs, res *model.SimulationResult, sum analysis.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetParameters); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeParameters(f, in); err != nil {
		f.Close()
		return nil, fmt.Errorf("parameters sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, sum); err != nil {
		f.Close()
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetTimeHistory); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTimeHistory(f, res); err != nil {
		f.Close()
		return nil, fmt.Errorf("time history sheet: %w", err)
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}

func writeParameters(f *excelize.File, in model.Inputs) error {
	p := in.Phases
	return writeRows(f, SheetParameters, [][]interface{}{
		{"Group", "Parameter", "Value", "Unit"},
		{"Motor", "Motor speed", in.Motor.MotorRPM, "rpm"},
		{"Motor", "Pump efficiency", in.Motor.PumpEfficiency, ""},
		{"Motor", "System losses", in.Motor.SystemLosses, "bar"},
		{"Cylinder", "Bore", in.Cylinder.Bore, "cm"},
		{"Cylinder", "Rod", in.Cylinder.Rod, "mm"},
		{"Cylinder", "Dead load", in.Cylinder.DeadLoad, "ton"},
		{"Cylinder", "Holding load", in.Cylinder.HoldingLoad, "ton"},
		{"Fast down", "Speed", p.FastDown.Speed, "mm/s"},
		{"Fast down", "Stroke", p.FastDown.Stroke, "mm"},
		{"Fast down", "Time", p.FastDown.Time, "s"},
		{"Working", "Speed", p.Working.Speed, "mm/s"},
		{"Working", "Stroke", p.Working.Stroke, "mm"},
		{"Working", "Time", p.Working.Time, "s"},
		{"Holding", "Time", p.Holding.Time, "s"},
		{"Fast up", "Speed", p.FastUp.Speed, "mm/s"},
		{"Fast up", "Stroke", p.FastUp.Stroke, "mm"},
		{"Fast up", "Time", p.FastUp.Time, "s"},
	})
}

func writeSummary(f *excelize.File, s analysis.Summary) error {
	rows := [][]interface{}{
		{"Metric", "Value", "Unit"},
		{"Samples", s.Samples, ""},
		{"Max pressure", s.MaxPressure, "bar"},
		{"P95 pressure", s.P95Pressure, "bar"},
		{"Max flow", s.MaxFlow, "L/min"},
		{"Max speed", s.MaxSpeed, "mm/s"},
		{"Max hydraulic power", s.MaxHydraulicPower, "kW"},
		{"Max motor power", s.MaxMotorPower, "kW"},
		{"Avg motor power", s.AvgMotorPower, "kW"},
		{"Cycle energy", s.EnergyKJ, "kJ"},
		{"Efficiency", s.Efficiency, ""},
		{},
		{"Phase", "Duration (s)", "Samples", "Max flow (L/min)", "Mean pressure (bar)", "Max motor power (kW)"},
	}
	for _, p := range s.Phases {
		rows = append(rows, []interface{}{string(p.Phase), p.Duration, p.Samples, p.MaxFlow, p.MeanPressure, p.MaxMotorPower})
	}
	return writeRows(f, SheetSummary, rows)
}

func writeTimeHistory(f *excelize.File, res *model.SimulationResult) error {
	sw, err := f.NewStreamWriter(SheetTimeHistory)
	if err != nil {
		return err
	}
	header := make([]interface{}, 0, len(CSVHeader)+1)
	for _, h := range CSVHeader {
		header = append(header, h)
	}
	header = append(header, "Phase")
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	if res != nil {
		for i, d := range res.Samples {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := sw.SetRow(cell, []interface{}{
				d.Time,
				d.Stroke,
				d.Speed,
				d.Flow,
				d.Pressure,
				d.HydraulicPower,
				d.MotorPower,
				d.IdealMotorPower,
				d.SwashplateAngle,
				string(d.Phase),
			}); err != nil {
				return err
			}
		}
	}
	return sw.Flush()
}
