package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/v1/simulations/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(Handler()))
	return r
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	r := newRouter()
	const route = "/api/v1/simulations/:id"
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(route, "GET", "200"))

	for _, id := range []string{"a", "b", "c"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/simulations/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(route, "GET", "200"))
	assert.Equal(t, 3.0, after-before)
}

func TestMiddlewareUnmatchedPath(t *testing.T) {
	r := newRouter()
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", "GET", "404"))

	for _, p := range []string{"/wp-admin", "/.env", "/robots.txt"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", "GET", "404"))
	assert.Equal(t, 3.0, after-before)
}

func TestObserveSimulation(t *testing.T) {
	okBefore := testutil.ToFloat64(simulationsTotal.WithLabelValues(OutcomeOK))
	badBefore := testutil.ToFloat64(simulationsTotal.WithLabelValues(OutcomeInvalid))

	ObserveSimulation(OutcomeOK, 91)
	ObserveSimulation(OutcomeInvalid, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(simulationsTotal.WithLabelValues(OutcomeOK))-okBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(simulationsTotal.WithLabelValues(OutcomeInvalid))-badBefore)
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveSimulation(OutcomeOK, 91)
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "pressim_simulations_total"))
	assert.True(t, strings.Contains(text, "pressim_simulation_samples"))
}
