// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/pdiddy/tutor-engine/internal/corpus"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// recentWindowYears defines "recent": a publication counts when
// currentYear - year <= recentWindowYears.
const recentWindowYears = 3

// Availability label thresholds on the score.
const (
	highThreshold   = 0.7
	mediumThreshold = 0.4
)

// AvailabilityRanking derives a heuristic availability signal per
// professor from recent publication volume relative to the corpus-wide
// maximum: the busiest professor scores 0.3, one with no recent output
// scores 1.0. Sorted descending by score.
func (e *Engine) AvailabilityRanking(ctx context.Context) ([]types.AvailabilityEntry, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	records, err := e.collection.GetByFilter(ctx, corpus.NativeFilter{})
	if err != nil {
		return nil, fmt.Errorf("scanning corpus: %w", err)
	}

	currentYear := e.now().Year()
	byName := make(map[string]*types.AvailabilityEntry)
	categories := make(map[string]map[string]bool)
	var order []string

	for _, r := range records {
		m := r.Metadata
		if m.Professor == "" {
			continue
		}
		entry, ok := byName[m.Professor]
		if !ok {
			entry = &types.AvailabilityEntry{Professor: m.Professor}
			byName[m.Professor] = entry
			categories[m.Professor] = make(map[string]bool)
			order = append(order, m.Professor)
		}

		entry.TotalPublications++

		// Unparseable years are excluded from the recent count but still
		// count toward the total.
		if y, ok := yearOf(m.Date); ok {
			if year, err := strconv.Atoi(y); err == nil && currentYear-year <= recentWindowYears {
				entry.RecentPublications++
			}
		}

		if m.Categories != "" {
			categories[m.Professor][m.Categories] = true
		}
	}

	maxRecent := 1 // floor avoids dividing by zero in an all-idle corpus
	for _, entry := range byName {
		if entry.RecentPublications > maxRecent {
			maxRecent = entry.RecentPublications
		}
	}

	ranking := make([]types.AvailabilityEntry, 0, len(order))
	for _, name := range order {
		entry := *byName[name]
		entry.Categories = sortedKeys(categories[name])

		load := float64(entry.RecentPublications) / float64(maxRecent)
		entry.AvailabilityScore = round2(1.0 - load*0.7)
		entry.AvailabilityLabel = availabilityLabel(entry.AvailabilityScore)

		ranking = append(ranking, entry)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].AvailabilityScore > ranking[j].AvailabilityScore
	})
	return ranking, nil
}

func availabilityLabel(score float64) string {
	switch {
	case score >= highThreshold:
		return "High"
	case score >= mediumThreshold:
		return "Medium"
	default:
		return "Low"
	}
}
