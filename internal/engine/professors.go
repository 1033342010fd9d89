// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/tutor-engine/internal/corpus"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

const recentWorksLimit = 10

// Production-type classification markers. The corpus carries Spanish
// production labels; anything that is neither teaching nor a project
// counts as research.
const (
	teachingMarker = "docencia"
	projectMarker  = "proyecto"
)

// AllProfessors scans the corpus and returns the per-professor summaries,
// sorted descending by total works. Ties keep scan order.
func (e *Engine) AllProfessors(ctx context.Context) (types.ProfessorList, error) {
	if err := e.ready(); err != nil {
		return types.ProfessorList{}, err
	}

	records, err := e.collection.GetByFilter(ctx, corpus.NativeFilter{})
	if err != nil {
		return types.ProfessorList{}, fmt.Errorf("scanning corpus: %w", err)
	}

	byName := make(map[string]*types.ProfessorSummary)
	categories := make(map[string]map[string]bool)
	var order []string

	for _, r := range records {
		m := r.Metadata
		if m.Professor == "" {
			continue
		}
		summary, ok := byName[m.Professor]
		if !ok {
			summary = &types.ProfessorSummary{
				Name:      m.Professor,
				Username:  m.ProfessorUsername,
				WorkTypes: make(map[string]int),
			}
			byName[m.Professor] = summary
			categories[m.Professor] = make(map[string]bool)
			order = append(order, m.Professor)
		}

		summary.TotalWorks++
		summary.WorkTypes[productionType(m)]++
		if m.Categories != "" {
			categories[m.Professor][m.Categories] = true
		}
	}

	professors := make([]types.ProfessorSummary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		s.Categories = sortedKeys(categories[name])
		professors = append(professors, *s)
	}

	sort.SliceStable(professors, func(i, j int) bool {
		return professors[i].TotalWorks > professors[j].TotalWorks
	})

	return types.ProfessorList{
		TotalProfessors: len(professors),
		Professors:      professors,
	}, nil
}

// ProfessorProfile returns the full rollup for an exact professor name,
// or nil when no records match. An unmatched name is an expected outcome
// of user input, not a fault.
func (e *Engine) ProfessorProfile(ctx context.Context, name string) (*types.ProfessorProfile, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	records, err := e.collection.GetByFilter(ctx, corpus.NativeFilter{Professor: name})
	if err != nil {
		return nil, fmt.Errorf("fetching professor records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	stats := types.ProfessorStats{
		TotalWorks:      len(records),
		ProductionTypes: make(map[string]int),
	}
	years := make(map[string]bool)
	categorySet := make(map[string]bool)
	sourceSet := make(map[string]bool)

	works := make([]types.Work, 0, len(records))
	for _, r := range records {
		m := r.Metadata
		work := types.Work{
			ID:             r.ID,
			Title:          m.Title,
			Type:           m.Type,
			ProductionType: m.ProductionType,
			Date:           m.Date,
			Categories:     m.Categories,
			Source:         m.Source,
			ImpactFactor:   m.ImpactFactor,
			Quartile:       m.Quartile,
			Content:        r.SemanticText,
		}
		works = append(works, work)

		stats.ProductionTypes[productionType(m)]++
		if y, ok := yearOf(m.Date); ok {
			years[y] = true
		}
		if m.Categories != "" {
			categorySet[m.Categories] = true
		}
		if m.Source != "" {
			sourceSet[m.Source] = true
		}

		switch lower := strings.ToLower(m.ProductionType); {
		case strings.Contains(lower, teachingMarker):
			stats.Teaching = append(stats.Teaching, work)
		case strings.Contains(lower, projectMarker):
			stats.Projects = append(stats.Projects, work)
		default:
			stats.Research = append(stats.Research, work)
		}
	}

	sortWorksByDateDesc(works)

	stats.RecentWorks = works
	if len(stats.RecentWorks) > recentWorksLimit {
		stats.RecentWorks = stats.RecentWorks[:recentWorksLimit]
	}
	stats.ActiveYears = sortedKeysDesc(years)
	stats.Categories = sortedKeys(categorySet)
	stats.Sources = sortedKeys(sourceSet)

	return &types.ProfessorProfile{
		Professor: name,
		Works:     works,
		Stats:     stats,
	}, nil
}

// ProfessorDocuments returns the semantic texts of up to limit records
// for the named professor, most recent first. Feeds grounding context for
// the assistant layer, which is why recency wins.
func (e *Engine) ProfessorDocuments(ctx context.Context, name string, limit int) ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	records, err := e.collection.GetByFilter(ctx, corpus.NativeFilter{Professor: name})
	if err != nil {
		return nil, fmt.Errorf("fetching professor records: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return safeParseDate(records[i].Metadata.Date).After(safeParseDate(records[j].Metadata.Date))
	})

	if len(records) > limit {
		records = records[:limit]
	}
	docs := make([]string, 0, len(records))
	for _, r := range records {
		docs = append(docs, r.SemanticText)
	}
	return docs, nil
}

// AllProfessorNames returns the distinct professor names, sorted
// alphabetically.
func (e *Engine) AllProfessorNames(ctx context.Context) ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	records, err := e.collection.GetByFilter(ctx, corpus.NativeFilter{})
	if err != nil {
		return nil, fmt.Errorf("scanning corpus: %w", err)
	}

	names := make(map[string]bool)
	for _, r := range records {
		if r.Metadata.Professor != "" {
			names[r.Metadata.Professor] = true
		}
	}
	return sortedKeys(names), nil
}

// productionType returns the histogram bucket for a record's production
// type; records without one land in "Unknown".
func productionType(m types.Metadata) string {
	if m.ProductionType == "" {
		return "Unknown"
	}
	return m.ProductionType
}

func sortWorksByDateDesc(works []types.Work) {
	sort.SliceStable(works, func(i, j int) bool {
		return safeParseDate(works[i].Date).After(safeParseDate(works[j].Date))
	})
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysDesc(set map[string]bool) []string {
	keys := sortedKeys(set)
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}
