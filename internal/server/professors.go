// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/tutor-engine/internal/engine"
)

// professorHandler serves the professor listing and profile endpoints.
type professorHandler struct {
	engine *engine.Engine
	log    *logrus.Logger
}

func newProfessorHandler(e *engine.Engine, log *logrus.Logger) *professorHandler {
	return &professorHandler{engine: e, log: log}
}

// List handles GET /api/professors.
func (h *professorHandler) List(c *gin.Context) {
	list, err := h.engine.AllProfessors(c.Request.Context())
	if err != nil {
		h.respondEngineError(c, err, "listing professors failed")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Ranking handles GET /api/professors/ranking.
func (h *professorHandler) Ranking(c *gin.Context) {
	ranking, err := h.engine.AvailabilityRanking(c.Request.Context())
	if err != nil {
		h.respondEngineError(c, err, "availability ranking failed")
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// Get handles GET /api/professor/:name.
func (h *professorHandler) Get(c *gin.Context) {
	name := c.Param("name")

	profile, err := h.engine.ProfessorProfile(c.Request.Context(), name)
	if err != nil {
		h.respondEngineError(c, err, "loading professor profile failed")
		return
	}
	if profile == nil {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "professor not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Documents handles GET /api/professor/:name/documents.
func (h *professorHandler) Documents(c *gin.Context) {
	name := c.Param("name")
	limit, _ := strconv.Atoi(c.Query("limit"))

	docs, err := h.engine.ProfessorDocuments(c.Request.Context(), name, limit)
	if err != nil {
		h.respondEngineError(c, err, "loading professor documents failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"professor": name, "documents": docs})
}

func (h *professorHandler) respondEngineError(c *gin.Context, err error, msg string) {
	if errors.Is(err, engine.ErrServiceUnavailable) {
		respondError(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "search engine not available")
		return
	}
	h.log.WithError(err).Error(msg)
	respondError(c, http.StatusInternalServerError, ErrCodeInternalError, msg)
}
