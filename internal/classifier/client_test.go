package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/model"
	"hydraulic-press-sim/internal/simulation"
)

func referencePayload(t *testing.T) Payload {
	t.Helper()
	in := model.DefaultInputs()
	res, err := simulation.New().Run(in)
	require.NoError(t, err)
	return BuildPayload(in, res, analysis.Summarize(in.Phases, res))
}

func TestBuildPayload(t *testing.T) {
	in := model.DefaultInputs()
	res, err := simulation.New().Run(in)
	require.NoError(t, err)
	sum := analysis.Summarize(in.Phases, res)

	p := BuildPayload(in, res, sum)
	assert.Equal(t, in.Cylinder.Bore, p.BoreCM)
	assert.Equal(t, in.Cylinder.Rod, p.RodMM)
	assert.Equal(t, in.Motor.PumpEfficiency, p.PumpEff)
	assert.Equal(t, in.Phases.Working.Speed, p.Working.Speed)
	assert.Equal(t, in.Phases.Holding.Time, p.Holding.Time)
	assert.Equal(t, sum.MaxPressure, p.MaxPressureBar)
	assert.Equal(t, sum.MaxMotorPower, p.MaxPowerKW)
	require.Len(t, p.SimulationData, len(res.Samples))
	assert.Equal(t, res.Samples[20].Pressure, p.SimulationData[20].Pressure)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, k := range []string{"bore_cm", "rod_mm", "dead_load_ton", "hold_load_ton", "motor_rpm", "pump_eff",
		"system_loss_bar", "fast_down", "working", "holding", "fast_up", "max_pressure_bar", "max_flow_lpm",
		"max_speed_mms", "max_power_kw", "simulation_data"} {
		assert.Contains(t, keys, k)
	}
}

func TestBuildPayloadNilResult(t *testing.T) {
	p := BuildPayload(model.DefaultInputs(), nil, analysis.Summary{})
	assert.NotNil(t, p.SimulationData)
	assert.Empty(t, p.SimulationData)
}

func TestClassify(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/run-ml", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got Payload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Len(t, got.SimulationData, 91)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"anomaly_score":0.12,"anomaly_threshold":0.5,"class_probabilities":[0.9,0.1],
			"cycle_class":"normal","derived":{"max_power_kw":7.5},"is_anomaly":false}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	res, err := c.Classify(context.Background(), referencePayload(t))
	require.NoError(t, err)
	assert.Equal(t, "normal", res.CycleClass)
	assert.False(t, res.IsAnomaly)
	assert.InDelta(t, 0.12, res.AnomalyScore, 1e-12)
	assert.Equal(t, []float64{0.9, 0.1}, res.ClassProbabilities)
	assert.InDelta(t, 7.5, res.Derived.MaxPowerKW, 1e-12)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClassifyUsesCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"cycle_class":"normal"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	c.Cache = NewResponseCache(time.Minute)
	p := referencePayload(t)

	for i := 0; i < 3; i++ {
		res, err := c.Classify(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, "normal", res.CycleClass)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, 1, c.Cache.Len())
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"rate limited", http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{"unavailable", http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"bad gateway", http.StatusBadGateway, "SERVICE_UNAVAILABLE"},
		{"server error", http.StatusInternalServerError, "CLASSIFIER_ERROR"},
		{"bad request", http.StatusBadRequest, "CLASSIFIER_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "30")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			c.Cache = NewResponseCache(time.Minute)
			res, err := c.Classify(context.Background(), referencePayload(t))
			require.Error(t, err)
			assert.Nil(t, res)

			var se *ServiceError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantCode, se.Code)
			assert.Equal(t, tt.status, se.StatusCode)
			if tt.status == http.StatusTooManyRequests {
				assert.Equal(t, "30", se.RetryAfter)
			}
			assert.Zero(t, c.Cache.Len(), "failures are not cached")
		})
	}
}

func TestClassifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Classify(context.Background(), referencePayload(t))
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "SERVICE_UNAVAILABLE", se.Code)
}

func TestClassifyBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Classify(context.Background(), referencePayload(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClassifyEmptyPayload(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", time.Second).Classify(context.Background(), Payload{})
	require.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, "http://127.0.0.1:5000", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.Client.Timeout)
	assert.Nil(t, c.Cache)
}
