// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the engine and profile store over a JSON HTTP
// API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/tutor-engine/internal/engine"
	"github.com/pdiddy/tutor-engine/internal/profile"
)

// Deps holds all dependencies needed by the router. Engine may be nil
// when the corpus failed to open; search routes then answer 503 while
// profile and health routes keep working.
type Deps struct {
	Log      *logrus.Logger
	Engine   *engine.Engine
	Profiles *profile.Store
	Version  string

	// CORSOrigins restricts cross-origin access; empty allows all.
	CORSOrigins []string
}

// NewRouter creates and configures the gin engine with all middleware
// and routes.
func NewRouter(deps *Deps) http.Handler {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}

	r := gin.New()
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(requestID())
	r.Use(requestLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(deps.CORSOrigins))
	r.Use(prometheusMiddleware())

	// Metrics endpoint (outside the API group, like health checks).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(r.Group("/api"), deps)
	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       1 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func registerRoutes(api *gin.RouterGroup, deps *Deps) {
	search := newSearchHandler(deps.Engine, deps.Log)
	professors := newProfessorHandler(deps.Engine, deps.Log)
	stats := newStatsHandler(deps.Engine, deps.Profiles, deps.Log, deps.Version)
	profiles := newProfileHandler(deps.Engine, deps.Profiles, deps.Log)

	api.GET("/health", stats.Health)
	api.GET("/stats", stats.GetStats)
	api.GET("/production-types", stats.ProductionTypes)

	api.POST("/search", search.Search)
	api.POST("/export/csv", search.ExportCSV)

	api.GET("/professors", professors.List)
	api.GET("/professors/ranking", professors.Ranking)
	api.GET("/professor/:name", professors.Get)
	api.GET("/professor/:name/documents", professors.Documents)

	api.GET("/profile/:username", profiles.GetProfile)
	api.PUT("/profile/:username", profiles.UpdateProfile)
	api.GET("/recommendations/:username", profiles.Recommendations)

	api.GET("/history/:username", profiles.GetHistory)
	api.POST("/history/:username", profiles.AddHistory)
	api.DELETE("/history/:username", profiles.ClearHistory)
}
