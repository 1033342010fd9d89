// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/pdiddy/tutor-engine/internal/corpus"
	"github.com/pdiddy/tutor-engine/internal/textnorm"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// Search executes a semantic search with optional structured filters.
// The query is normalized before retrieval so it lives in the same
// embedding space as the ingested texts; an empty query is legal and
// matches everything in the filtered subset. The limit is clamped to
// [1, 100]. Zero survivors is a well-formed empty response, not an error.
func (e *Engine) Search(ctx context.Context, query string, limit int, filters *types.FilterSet) (types.SearchResponse, error) {
	if err := e.ready(); err != nil {
		return types.SearchResponse{}, err
	}

	if limit < 1 {
		limit = 1
	}
	if limit > maxResults {
		limit = maxResults
	}

	var fs types.FilterSet
	if filters != nil {
		fs = *filters
	}

	candidates, err := e.collection.QueryByText(ctx, textnorm.Normalize(query), limit, nativeFilter(fs))
	if err != nil {
		return types.SearchResponse{}, fmt.Errorf("querying corpus: %w", err)
	}

	results := make([]types.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if !passesPostFilters(c.Record.Metadata, fs) {
			continue
		}
		results = append(results, toSearchResult(c))
	}

	// Post-filtering can remove candidates from the middle of the store's
	// top-K, so its ordering is no longer trustworthy: re-sort.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return types.SearchResponse{
		Query:          query,
		TotalResults:   len(results),
		Results:        results,
		FiltersApplied: fs,
	}, nil
}

// nativeFilter maps the exact-match filters onto the corpus store's
// native predicate. The production type is normalized first: ingestion
// stores it normalized.
func nativeFilter(fs types.FilterSet) corpus.NativeFilter {
	return corpus.NativeFilter{
		Professor:      fs.Professor,
		ProductionType: textnorm.Normalize(fs.ProductionType),
		Quartile:       fs.Quartile,
	}
}

// passesPostFilters applies the filters the index cannot express
// natively, on the retrieved candidate set only.
func passesPostFilters(m types.Metadata, fs types.FilterSet) bool {
	// Date range: lexicographic comparison on the raw date string. Only
	// applied when the record has a date at all.
	if fs.DateRange != nil && m.Date != "" {
		if fs.DateRange.Start != "" && m.Date < fs.DateRange.Start {
			return false
		}
		if fs.DateRange.End != "" && m.Date > fs.DateRange.End {
			return false
		}
	}

	// Minimum impact factor: missing or non-numeric values are excluded
	// while the filter is active.
	if fs.MinImpactFactor != nil {
		impact, err := strconv.ParseFloat(m.ImpactFactor, 64)
		if err != nil || impact < *fs.MinImpactFactor {
			return false
		}
	}

	return true
}

func toSearchResult(c corpus.Candidate) types.SearchResult {
	m := c.Record.Metadata
	return types.SearchResult{
		ID:             c.Record.ID,
		RelevanceScore: round3(math.Max(0, 1-c.Distance)),
		Distance:       round3(c.Distance),
		Content:        c.Record.SemanticText,
		Professor:      m.Professor,
		Title:          m.Title,
		Type:           m.Type,
		ProductionType: m.ProductionType,
		Date:           m.Date,
		Categories:     m.Categories,
		Source:         m.Source,
		ImpactFactor:   m.ImpactFactor,
		Quartile:       m.Quartile,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
