package handlers

import (
	"log"
	"net/http"

	"hydraulic-press-sim/internal/api/models"
	"hydraulic-press-sim/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles preset-related requests
type PresetHandler struct {
	presetDir string
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(presetDir string) *PresetHandler {
	log.Printf("[Presets] Using preset directory: %s", presetDir)
	return &PresetHandler{presetDir: presetDir}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	infos, err := config.ListPresets(h.presetDir)
	if err != nil {
		log.Printf("[Presets] Failed to read %s: %v", h.presetDir, err)
		respondError(c, http.StatusInternalServerError, "PRESET_DIR_ERROR", err.Error())
		return
	}

	presets := make([]models.PresetInfo, 0, len(infos))
	for _, info := range infos {
		in := info.Preset.ToModelInputs()
		presets = append(presets, models.PresetInfo{
			ID:   info.ID,
			Name: info.Name,
			File: info.File,
			Specs: models.PresetSpecs{
				BoreCM:         in.Cylinder.Bore,
				RodMM:          in.Cylinder.Rod,
				HoldingLoadTon: in.Cylinder.HoldingLoad,
				MotorRPM:       in.Motor.MotorRPM,
				CycleTimeS:     in.Phases.TotalTime(),
			},
		})
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}
