package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydraulic-press-sim/internal/model"
	"hydraulic-press-sim/internal/simulation"
)

func TestWriteSeriesCSV(t *testing.T) {
	res, err := simulation.New().Run(model.DefaultInputs())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, res))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 92)
	assert.Equal(t, "Time,Stroke,Speed,Flow,Pressure,HydraulicPower,MotorPower,IdealMotorPower,SwashplateAngle", strings.Join(rows[0], ","))

	for _, r := range rows[1:] {
		require.Len(t, r, 9)
		for _, v := range r {
			dot := strings.IndexByte(v, '.')
			require.GreaterOrEqual(t, dot, 0, v)
			assert.Len(t, v[dot+1:], 2, v)
		}
	}
	assert.Equal(t, "2.00", rows[21][0])
	assert.Equal(t, "3.00", rows[21][2])
	assert.Equal(t, "300.00", rows[21][1])
	assert.Equal(t, "90.00", rows[1][8])
}

func TestWriteSeriesCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, nil))
	assert.Equal(t, strings.Join(CSVHeader, ",")+"\n", buf.String())
}

func TestFmtFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{2.675, "2.68"},
		{-1.005, "-1.01"},
		{15.98781, "15.99"},
		{589.0486, "589.05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fmtFixed(tt.in), "fmtFixed(%v)", tt.in)
	}
}

func TestWriteSeriesCSVFile(t *testing.T) {
	res, err := simulation.New().Run(model.DefaultInputs())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, WriteSeriesCSVFile(path, res))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 92, strings.Count(string(raw), "\n"))
}
