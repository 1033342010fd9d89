// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/tutor-engine/internal/engine"
	"github.com/pdiddy/tutor-engine/internal/metrics"
	"github.com/pdiddy/tutor-engine/internal/profile"
)

// statsHandler serves statistics and system health.
type statsHandler struct {
	engine   *engine.Engine
	profiles *profile.Store
	log      *logrus.Logger
	version  string
}

func newStatsHandler(e *engine.Engine, p *profile.Store, log *logrus.Logger, version string) *statsHandler {
	return &statsHandler{engine: e, profiles: p, log: log, version: version}
}

// GetStats handles GET /api/stats.
func (h *statsHandler) GetStats(c *gin.Context) {
	stats, err := h.engine.DatabaseStats(c.Request.Context())
	if err != nil {
		if errors.Is(err, engine.ErrServiceUnavailable) {
			respondError(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "search engine not available")
			return
		}
		h.log.WithError(err).Error("computing database stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "computing statistics failed")
		return
	}

	metrics.CorpusDocuments.Set(float64(stats.TotalDocuments))
	c.JSON(http.StatusOK, stats)
}

// ProductionTypes handles GET /api/production-types: the distinct
// production type names, most frequent first.
func (h *statsHandler) ProductionTypes(c *gin.Context) {
	stats, err := h.engine.DatabaseStats(c.Request.Context())
	if err != nil {
		if errors.Is(err, engine.ErrServiceUnavailable) {
			respondError(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "search engine not available")
			return
		}
		h.log.WithError(err).Error("computing database stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "computing statistics failed")
		return
	}

	names := make([]string, 0, len(stats.ProductionTypes))
	for _, entry := range stats.ProductionTypes {
		names = append(names, entry.Name)
	}
	c.JSON(http.StatusOK, names)
}

// Health handles GET /api/health. Always 200: component readiness is
// reported in the body, not via the status code.
func (h *statsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"components": gin.H{
			"search_engine": h.engine != nil,
			"profile_store": h.profiles != nil,
		},
	})
}
