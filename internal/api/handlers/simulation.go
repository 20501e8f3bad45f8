package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"hydraulic-press-sim/internal/analysis"
	"hydraulic-press-sim/internal/api/models"
	"hydraulic-press-sim/internal/metrics"
	"hydraulic-press-sim/internal/model"
	"hydraulic-press-sim/internal/report"
	"hydraulic-press-sim/internal/simulation"
	"hydraulic-press-sim/internal/store"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SimulationHandler handles simulation-related requests
type SimulationHandler struct {
	engine    *simulation.Engine
	store     store.Store
	presetDir string
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(st store.Store, presetDir string) *SimulationHandler {
	return &SimulationHandler{
		engine:    simulation.New(),
		store:     st,
		presetDir: presetDir,
	}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	base, err := basePreset(h.presetDir, req.PresetID)
	if err != nil {
		h.presetError(c, err)
		return
	}
	p := overlay(base, req.Name, req.Config)
	in := p.ToModelInputs()

	res, sum, err := h.run(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errorDetail(err)})
		return
	}

	run := &store.Run{Name: p.Name, Inputs: in, Result: res, Summary: sum}
	id, err := h.store.Save(c.Request.Context(), run)
	if err != nil {
		log.Printf("[Simulation] Failed to store run: %v", err)
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	resp := models.SimulateResponse{
		ID:      id,
		Status:  "completed",
		Name:    p.Name,
		Summary: sum,
	}
	if req.Options.IncludeSeries {
		resp.Series = res.Samples
	}
	c.JSON(http.StatusOK, resp)
}

// GetSimulation handles GET /api/v1/simulations/:id
func (h *SimulationHandler) GetSimulation(c *gin.Context) {
	run, ok := loadRun(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RunResponse{
		ID:        run.ID,
		Name:      run.Name,
		CreatedAt: run.CreatedAt,
		Inputs:    run.Inputs,
		Summary:   run.Summary,
		TimeStep:  run.Result.TimeStep,
		Series:    run.Result.Samples,
	})
}

// ExportCSV handles GET /api/v1/simulations/:id/csv
func (h *SimulationHandler) ExportCSV(c *gin.Context) {
	run, ok := loadRun(c, h.store)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteSeriesCSV(&buf, run.Result); err != nil {
		respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=press-run-%s.csv", run.ID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX handles GET /api/v1/simulations/:id/xlsx
func (h *SimulationHandler) ExportXLSX(c *gin.Context) {
	run, ok := loadRun(c, h.store)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, run.Inputs, run.Result, run.Summary); err != nil {
		respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=press-run-%s.xlsx", run.ID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Compare handles POST /api/v1/simulate/compare
func (h *SimulationHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	base, err := basePreset(h.presetDir, req.PresetID)
	if err != nil {
		h.presetError(c, err)
		return
	}
	base = overlay(base, "", req.BaseConfig)

	ok := make([]analysis.Variation, 0, len(req.Variations))
	failed := []models.FailedVariation{}
	for _, v := range req.Variations {
		p := overlay(base, v.Name, v.Config)
		_, sum, err := h.run(p.ToModelInputs())
		if err != nil {
			log.Printf("[Simulation] Variation %q rejected: %v", v.Name, err)
			failed = append(failed, models.FailedVariation{Name: v.Name, Error: errorDetail(err)})
			continue
		}
		ok = append(ok, analysis.Variation{Name: v.Name, Summary: sum})
	}

	ranked := analysis.RankByEfficiency(ok)
	comparison := make([]models.ComparisonResult, len(ranked))
	for i, v := range ranked {
		comparison[i] = models.ComparisonResult{Rank: i + 1, Name: v.Name, Summary: v.Summary}
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Comparison: comparison,
		Failed:     failed,
	})
}

// run executes the engine and summarizes the result. Validation failures are returned untouched.
func (h *SimulationHandler) run(in model.Inputs) (*model.SimulationResult, analysis.Summary, error) {
	res, err := h.engine.Run(in)
	if err != nil {
		outcome := metrics.OutcomeError
		if _, ok := engineErrorCode(err); ok {
			outcome = metrics.OutcomeInvalid
		}
		metrics.ObserveSimulation(outcome, 0)
		return nil, analysis.Summary{}, err
	}
	metrics.ObserveSimulation(metrics.OutcomeOK, res.Len())
	return res, analysis.Summarize(in.Phases, res), nil
}

func loadRun(c *gin.Context, st store.Store) (*store.Run, bool) {
	id := c.Param("id")
	run, err := st.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("simulation %s not found", id))
		return nil, false
	}
	if err != nil {
		log.Printf("[Simulation] Failed to load run %s: %v", id, err)
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return nil, false
	}
	if run.Result == nil {
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", fmt.Sprintf("simulation %s has no result", id))
		return nil, false
	}
	return run, true
}

func (h *SimulationHandler) presetError(c *gin.Context, err error) {
	var nf *presetNotFoundError
	if errors.As(err, &nf) {
		respondError(c, http.StatusNotFound, "PRESET_NOT_FOUND", err.Error())
		return
	}
	respondError(c, http.StatusBadRequest, "INVALID_PRESET", err.Error())
}
