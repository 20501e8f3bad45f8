package api

import (
	"net/http"

	"hydraulic-press-sim/internal/api/handlers"
	"hydraulic-press-sim/internal/api/middleware"
	"hydraulic-press-sim/internal/classifier"
	"hydraulic-press-sim/internal/metrics"
	"hydraulic-press-sim/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the HTTP surface needs.
type Deps struct {
	Store          store.Store
	Classifier     *classifier.Client
	PresetDir      string
	AllowedOrigins []string
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(d.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())
	router.Use(middleware.ErrorHandler())

	simulationHandler := handlers.NewSimulationHandler(d.Store, d.PresetDir)
	presetHandler := handlers.NewPresetHandler(d.PresetDir)
	classifyHandler := handlers.NewClassifyHandler(d.Classifier, d.Store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulationHandler.Simulate)
		api.POST("/simulate/compare", simulationHandler.Compare)

		api.GET("/simulations/:id", simulationHandler.GetSimulation)
		api.GET("/simulations/:id/csv", simulationHandler.ExportCSV)
		api.GET("/simulations/:id/xlsx", simulationHandler.ExportXLSX)
		api.POST("/simulations/:id/classify", classifyHandler.Classify)

		api.GET("/presets", presetHandler.ListPresets)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
