package report

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"hydraulic-press-sim/internal/model"
)

// CSVHeader is the column order of exported series.
var CSVHeader = []string{
	"Time",
	"Stroke",
	"Speed",
	"Flow",
	"Pressure",
	"HydraulicPower",
	"MotorPower",
	"IdealMotorPower",
	"SwashplateAngle",
}

// WriteSeriesCSV writes one row per sample, values fixed to two decimals.
func WriteSeriesCSV(w io.Writer, res *model.SimulationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	if res != nil {
		for _, d := range res.Samples {
			row := []string{
				fmtFixed(d.Time),
				fmtFixed(d.Stroke),
				fmtFixed(d.Speed),
				fmtFixed(d.Flow),
				fmtFixed(d.Pressure),
				fmtFixed(d.HydraulicPower),
				fmtFixed(d.MotorPower),
				fmtFixed(d.IdealMotorPower),
				fmtFixed(d.SwashplateAngle),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSeriesCSVFile writes the series to path.
func WriteSeriesCSVFile(path string, res *model.SimulationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteSeriesCSV(f, res); err != nil {
		return err
	}
	return f.Close()
}

// fmtFixed rounds half away from zero, so 2.675 prints as 2.68 rather than the binary-float 2.67.
func fmtFixed(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}
