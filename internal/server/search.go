// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/tutor-engine/internal/engine"
	"github.com/pdiddy/tutor-engine/internal/metrics"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

const defaultSearchLimit = 10

// searchHandler serves the search and export endpoints.
type searchHandler struct {
	engine *engine.Engine
	log    *logrus.Logger
}

func newSearchHandler(e *engine.Engine, log *logrus.Logger) *searchHandler {
	return &searchHandler{engine: e, log: log}
}

// searchRequest is the JSON payload accepted by the search endpoints.
type searchRequest struct {
	Query   string           `json:"query"`
	Limit   int              `json:"limit"`
	Filters *types.FilterSet `json:"filters"`
}

// Search handles POST /api/search.
func (h *searchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid search request: "+err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	resp, err := h.engine.Search(c.Request.Context(), req.Query, req.Limit, req.Filters)
	if err != nil {
		h.respondSearchError(c, err, "search failed")
		return
	}

	metrics.SearchesTotal.WithLabelValues("search").Inc()
	c.JSON(http.StatusOK, resp)
}

// exportColumns fixes the CSV export layout.
var exportColumns = []string{
	"Título", "Profesor", "Fecha", "Tipo Producción", "Categorías",
	"IF SJR", "Cuartil SJR", "Relevancia", "Fuente",
}

// ExportCSV handles POST /api/export/csv: it runs the same search and
// streams the results as a CSV attachment.
func (h *searchHandler) ExportCSV(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid export request: "+err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	resp, err := h.engine.Search(c.Request.Context(), req.Query, req.Limit, req.Filters)
	if err != nil {
		h.respondSearchError(c, err, "export failed")
		return
	}
	metrics.SearchesTotal.WithLabelValues("export").Inc()

	filename := fmt.Sprintf("resultados_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	// UTF-8 BOM so spreadsheet tools detect the encoding.
	c.Writer.WriteString("\xEF\xBB\xBF") //nolint:errcheck

	w := csv.NewWriter(c.Writer)
	w.Write(exportColumns) //nolint:errcheck
	for _, r := range resp.Results {
		w.Write([]string{ //nolint:errcheck
			r.Title, r.Professor, r.Date, r.ProductionType, r.Categories,
			r.ImpactFactor, r.Quartile,
			strconv.FormatFloat(r.RelevanceScore, 'f', -1, 64),
			r.Source,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.log.WithError(err).Error("writing CSV export")
	}
}

func (h *searchHandler) respondSearchError(c *gin.Context, err error, msg string) {
	if errors.Is(err, engine.ErrServiceUnavailable) {
		respondError(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "search engine not available")
		return
	}
	h.log.WithError(err).Error(msg)
	respondError(c, http.StatusInternalServerError, ErrCodeInternalError, msg)
}
