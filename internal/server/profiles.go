// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/tutor-engine/internal/engine"
	"github.com/pdiddy/tutor-engine/internal/metrics"
	"github.com/pdiddy/tutor-engine/internal/profile"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

const (
	defaultRecommendLimit = 10
	maxRecommendLimit     = 50
	maxHistoryLimit       = 100
)

// profileHandler serves user profiles, recommendations, and search
// history.
type profileHandler struct {
	engine   *engine.Engine
	profiles *profile.Store
	log      *logrus.Logger
}

func newProfileHandler(e *engine.Engine, p *profile.Store, log *logrus.Logger) *profileHandler {
	return &profileHandler{engine: e, profiles: p, log: log}
}

// GetProfile handles GET /api/profile/:username.
func (h *profileHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	p, err := h.profiles.GetProfile(c.Request.Context(), username)
	if err != nil {
		h.log.WithError(err).Error("loading profile")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "loading profile failed")
		return
	}
	if p == nil {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfile handles PUT /api/profile/:username. Creates the profile
// when it does not exist yet.
func (h *profileHandler) UpdateProfile(c *gin.Context) {
	username := c.Param("username")

	var update types.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid profile update: "+err.Error())
		return
	}

	p, err := h.profiles.UpdateProfile(c.Request.Context(), username, update)
	if err != nil {
		h.log.WithError(err).Error("updating profile")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "updating profile failed")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Recommendations handles GET /api/recommendations/:username.
func (h *profileHandler) Recommendations(c *gin.Context) {
	username := c.Param("username")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecommendLimit)))
	if err != nil || limit < 1 {
		limit = defaultRecommendLimit
	}
	if limit > maxRecommendLimit {
		limit = maxRecommendLimit
	}

	p, err := h.profiles.GetProfile(c.Request.Context(), username)
	if err != nil {
		h.log.WithError(err).Error("loading profile")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "loading profile failed")
		return
	}
	if p == nil {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
		return
	}

	resp, err := h.engine.Recommend(c.Request.Context(), *p, limit)
	if err != nil {
		if errors.Is(err, engine.ErrServiceUnavailable) {
			respondError(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "search engine not available")
			return
		}
		h.log.WithError(err).Error("building recommendations")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "building recommendations failed")
		return
	}

	metrics.SearchesTotal.WithLabelValues("recommendation").Inc()
	c.JSON(http.StatusOK, resp)
}

// historyRequest is the JSON payload for adding a history entry.
type historyRequest struct {
	Query      string `json:"query"`
	SearchType string `json:"search_type"`
}

// GetHistory handles GET /api/history/:username.
func (h *profileHandler) GetHistory(c *gin.Context) {
	username := c.Param("username")

	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := h.profiles.GetHistory(c.Request.Context(), username, limit)
	if err != nil {
		h.log.WithError(err).Error("loading history")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "loading history failed")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddHistory handles POST /api/history/:username.
func (h *profileHandler) AddHistory(c *gin.Context) {
	username := c.Param("username")

	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid history entry: "+err.Error())
		return
	}

	entry, err := h.profiles.AddHistory(c.Request.Context(), username, req.Query, req.SearchType)
	if err != nil {
		h.log.WithError(err).Error("adding history entry")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "adding history entry failed")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ClearHistory handles DELETE /api/history/:username.
func (h *profileHandler) ClearHistory(c *gin.Context) {
	username := c.Param("username")

	n, err := h.profiles.ClearHistory(c.Request.Context(), username)
	if err != nil {
		h.log.WithError(err).Error("clearing history")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "clearing history failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": n})
}
