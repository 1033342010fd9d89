// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pdiddy/tutor-engine/internal/corpus"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// statsCache is the single shared mutable slot in the engine. The cached
// value is written atomically only after a full recomputation; within the
// TTL every caller sees the identical value even if the corpus changed
// underneath (accepted staleness bound). Two requests racing past an
// expired TTL serialize on the mutex and recompute back to back;
// idempotent, last writer wins.
type statsCache struct {
	mu       sync.Mutex
	cached   *types.DatabaseStats
	cachedAt time.Time
}

const topCategoriesLimit = 10

// DatabaseStats returns corpus-wide aggregates, recomputing by full scan
// at most once per TTL window. An empty corpus yields a well-formed
// all-zero stats object, which is cached like any other value.
func (e *Engine) DatabaseStats(ctx context.Context) (types.DatabaseStats, error) {
	if err := e.ready(); err != nil {
		return types.DatabaseStats{}, err
	}

	e.stats.mu.Lock()
	defer e.stats.mu.Unlock()

	now := e.now()
	if e.stats.cached != nil && now.Sub(e.stats.cachedAt) < e.statsTTL {
		return *e.stats.cached, nil
	}

	records, err := e.collection.GetByFilter(ctx, corpus.NativeFilter{})
	if err != nil {
		// Leave the previous cache entry (if any) untouched.
		return types.DatabaseStats{}, fmt.Errorf("scanning corpus: %w", err)
	}

	stats := computeStats(records)
	e.stats.cached = &stats
	e.stats.cachedAt = now
	return stats, nil
}

func computeStats(records []types.PublicationRecord) types.DatabaseStats {
	stats := types.DatabaseStats{
		TotalDocuments:     len(records),
		ProductionTypes:    []types.CountEntry{},
		YearsCovered:       []string{},
		YearlyPublications: []types.CountEntry{},
		TopCategories:      []types.CountEntry{},
	}
	if len(records) == 0 {
		return stats
	}

	typeCounts := newOrderedCounter()
	categoryCounts := newOrderedCounter()
	yearCounts := newOrderedCounter()
	professors := make(map[string]bool)
	years := make(map[string]bool)

	for _, r := range records {
		m := r.Metadata
		typeCounts.add(productionType(m))

		if y, ok := yearOf(m.Date); ok {
			years[y] = true
			yearCounts.add(y)
		}

		category := m.Categories
		if category == "" {
			category = "Unknown"
		}
		categoryCounts.add(category)

		if m.Professor != "" {
			professors[m.Professor] = true
		}
	}

	stats.TotalProfessors = len(professors)
	stats.ProductionTypes = typeCounts.sortedByCountDesc()
	stats.YearsCovered = sortedKeysDesc(years)
	stats.YearlyPublications = yearCounts.sortedByNameDesc()

	top := categoryCounts.sortedByCountDesc()
	if len(top) > topCategoriesLimit {
		top = top[:topCategoriesLimit]
	}
	stats.TopCategories = top

	return stats
}

// orderedCounter counts occurrences while remembering first-seen order,
// so equal counts keep a stable, scan-derived position after sorting.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *orderedCounter) entries() []types.CountEntry {
	entries := make([]types.CountEntry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, types.CountEntry{Name: name, Count: c.counts[name]})
	}
	return entries
}

func (c *orderedCounter) sortedByCountDesc() []types.CountEntry {
	entries := c.entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

func (c *orderedCounter) sortedByNameDesc() []types.CountEntry {
	entries := c.entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name > entries[j].Name
	})
	return entries
}
