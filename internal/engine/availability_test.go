// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

func TestAvailabilityRankingScoresAndLabels(t *testing.T) {
	// Professor A: 10 recent publications. Professor B: only old ones.
	records := make([]types.PublicationRecord, 0, 12)
	for i := 0; i < 10; i++ {
		records = append(records, pub(string(rune('a'+i)), "Prof A", "2025-01-01", "articulo", "", ""))
	}
	records = append(records,
		pub("b1", "Prof B", "2015-01-01", "articulo", "", ""),
		pub("b2", "Prof B", "-", "articulo", "", ""),
	)

	e := newTestEngine(t, &fakeCollection{records: records},
		fixedClock(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))

	ranking, err := e.AvailabilityRanking(context.Background())
	if err != nil {
		t.Fatalf("AvailabilityRanking: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("len = %d, want 2", len(ranking))
	}

	// Sorted descending by score, so the idle professor comes first.
	b := ranking[0]
	if b.Professor != "Prof B" || b.AvailabilityScore != 1.0 || b.AvailabilityLabel != "High" {
		t.Errorf("first = %+v, want Prof B score 1.0 High", b)
	}
	if b.RecentPublications != 0 || b.TotalPublications != 2 {
		t.Errorf("Prof B counts = %d recent / %d total, want 0/2", b.RecentPublications, b.TotalPublications)
	}

	a := ranking[1]
	if a.Professor != "Prof A" || a.AvailabilityScore != 0.3 || a.AvailabilityLabel != "Low" {
		t.Errorf("second = %+v, want Prof A score 0.3 Low", a)
	}
}

func TestAvailabilityRankingRecentWindow(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("edge", "Prof A", "2023-12-31", "articulo", "", ""), // exactly 3 years back
		pub("out", "Prof A", "2022-06-01", "articulo", "", ""),  // 4 years back
	}}
	e := newTestEngine(t, coll, fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	ranking, err := e.AvailabilityRanking(context.Background())
	if err != nil {
		t.Fatalf("AvailabilityRanking: %v", err)
	}
	if ranking[0].RecentPublications != 1 {
		t.Errorf("RecentPublications = %d, want 1 (window is inclusive of year - 3)", ranking[0].RecentPublications)
	}
}

func TestAvailabilityRankingAllIdleCorpus(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("1", "Prof A", "2010-01-01", "articulo", "", ""),
		pub("2", "Prof B", "2011-01-01", "articulo", "", ""),
	}}
	e := newTestEngine(t, coll, fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	ranking, err := e.AvailabilityRanking(context.Background())
	if err != nil {
		t.Fatalf("AvailabilityRanking: %v", err)
	}
	for _, entry := range ranking {
		if entry.AvailabilityScore != 1.0 {
			t.Errorf("%s score = %v, want 1.0 when nobody published recently", entry.Professor, entry.AvailabilityScore)
		}
	}
}

func TestAvailabilityRankingEmptyCorpus(t *testing.T) {
	e := newTestEngine(t, &fakeCollection{})

	ranking, err := e.AvailabilityRanking(context.Background())
	if err != nil {
		t.Fatalf("AvailabilityRanking: %v", err)
	}
	if len(ranking) != 0 {
		t.Errorf("ranking = %v, want empty", ranking)
	}
}
