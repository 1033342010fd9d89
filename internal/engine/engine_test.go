// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/pdiddy/tutor-engine/internal/corpus"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// fakeCollection implements corpus.Collection over an in-memory record
// slice. Distances for QueryByText come from the distances map (default
// 0.5) so tests control the ranking.
type fakeCollection struct {
	records   []types.PublicationRecord
	distances map[string]float64

	queryErr error
	getErr   error

	lastQueryText string
	lastTopK      int
	lastFilter    corpus.NativeFilter
}

func (f *fakeCollection) QueryByText(_ context.Context, text string, topK int, filter corpus.NativeFilter) ([]corpus.Candidate, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	f.lastQueryText = text
	f.lastTopK = topK
	f.lastFilter = filter

	var candidates []corpus.Candidate
	for _, r := range f.filtered(filter) {
		d, ok := f.distances[r.ID]
		if !ok {
			d = 0.5
		}
		candidates = append(candidates, corpus.Candidate{Record: r, Distance: d})
	}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].Distance < candidates[i].Distance {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	}
	if topK > 0 && len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates, nil
}

func (f *fakeCollection) GetByFilter(_ context.Context, filter corpus.NativeFilter) ([]types.PublicationRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.filtered(filter), nil
}

func (f *fakeCollection) Count(context.Context) (int, error) {
	return len(f.records), nil
}

func (f *fakeCollection) filtered(filter corpus.NativeFilter) []types.PublicationRecord {
	var out []types.PublicationRecord
	for _, r := range f.records {
		m := r.Metadata
		if filter.Professor != "" && m.Professor != filter.Professor {
			continue
		}
		if filter.ProductionType != "" && m.ProductionType != filter.ProductionType {
			continue
		}
		if filter.Quartile != "" && m.Quartile != filter.Quartile {
			continue
		}
		out = append(out, r)
	}
	return out
}

func newTestEngine(t *testing.T, coll *fakeCollection, opts ...Option) *Engine {
	t.Helper()
	e, err := New(coll, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func pub(id, professor, date, productionType, categories, impactFactor string) types.PublicationRecord {
	return types.PublicationRecord{
		ID:           id,
		SemanticText: "titulo " + id,
		Metadata: types.Metadata{
			Professor:         professor,
			ProfessorUsername: "user." + id,
			Title:             "titulo " + id,
			Date:              date,
			ProductionType:    productionType,
			Categories:        categories,
			ImpactFactor:      impactFactor,
		},
	}
}

func TestNewRejectsNilCollection(t *testing.T) {
	if _, err := New(nil); err != ErrServiceUnavailable {
		t.Errorf("New(nil) error = %v, want ErrServiceUnavailable", err)
	}
}

func TestNilEngineIsUnavailable(t *testing.T) {
	var e *Engine
	if _, err := e.Search(context.Background(), "q", 10, nil); err != ErrServiceUnavailable {
		t.Errorf("Search on nil engine = %v, want ErrServiceUnavailable", err)
	}
	if _, err := e.DatabaseStats(context.Background()); err != ErrServiceUnavailable {
		t.Errorf("DatabaseStats on nil engine = %v, want ErrServiceUnavailable", err)
	}
}

// fixedClock returns an Option pinning the engine clock.
func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}
