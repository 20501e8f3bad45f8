package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"hydraulic-press-sim/internal/api"
	"hydraulic-press-sim/internal/classifier"
	"hydraulic-press-sim/internal/config"
	"hydraulic-press-sim/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadServer()

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Printf("Preset directory: %s", cfg.PresetDir)
	presets, err := config.ListPresets(cfg.PresetDir)
	if err != nil {
		log.Printf("Preset directory unreadable: %v", err)
	} else {
		log.Printf("Found %d presets", len(presets))
	}

	var st store.Store
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rs, err := store.NewRedisStore(ctx, cfg.RedisURL, cfg.ResultTTL)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rs.Close()
		st = rs
	} else {
		log.Printf("REDIS_URL not set, keeping runs in memory (ttl=%v)", cfg.ResultTTL)
		st = store.NewMemoryStore(cfg.ResultTTL)
	}

	client := classifier.NewClient(cfg.ClassifierURL, cfg.ClassifierTimeout)
	if cfg.ClassifierCache {
		log.Printf("Classifier response cache enabled")
		client.Cache = classifier.NewResponseCache(time.Hour)
	}
	log.Printf("Classifier: %s (timeout %v)", client.BaseURL, cfg.ClassifierTimeout)

	router := api.NewRouter(api.Deps{
		Store:          st,
		Classifier:     client,
		PresetDir:      cfg.PresetDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
