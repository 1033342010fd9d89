// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

func TestDatabaseStatsAggregates(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("1", "Ana Gómez", "2023-01-01", "articulo", "machine learning", ""),
		pub("2", "Ana Gómez", "2023-06-01", "articulo", "machine learning", ""),
		pub("3", "Luis Pérez", "2021-01-01", "libro", "redes", ""),
		pub("4", "Luis Pérez", "-", "articulo", "", ""),
	}}
	e := newTestEngine(t, coll)

	stats, err := e.DatabaseStats(context.Background())
	if err != nil {
		t.Fatalf("DatabaseStats: %v", err)
	}

	if stats.TotalDocuments != 4 {
		t.Errorf("TotalDocuments = %d, want 4", stats.TotalDocuments)
	}
	if stats.TotalProfessors != 2 {
		t.Errorf("TotalProfessors = %d, want 2", stats.TotalProfessors)
	}
	if stats.ProductionTypes[0].Name != "articulo" || stats.ProductionTypes[0].Count != 3 {
		t.Errorf("ProductionTypes = %v", stats.ProductionTypes)
	}
	// The sentinel date contributes no year.
	if !reflect.DeepEqual(stats.YearsCovered, []string{"2023", "2021"}) {
		t.Errorf("YearsCovered = %v", stats.YearsCovered)
	}
	want := []types.CountEntry{{Name: "2023", Count: 2}, {Name: "2021", Count: 1}}
	if !reflect.DeepEqual(stats.YearlyPublications, want) {
		t.Errorf("YearlyPublications = %v", stats.YearlyPublications)
	}
	if stats.TopCategories[0].Name != "machine learning" || stats.TopCategories[0].Count != 2 {
		t.Errorf("TopCategories = %v", stats.TopCategories)
	}
}

func TestDatabaseStatsCacheWithinTTL(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("1", "Ana Gómez", "2023-01-01", "articulo", "", ""),
	}}
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := base
	e := newTestEngine(t, coll, WithClock(func() time.Time { return now }))

	first, err := e.DatabaseStats(context.Background())
	if err != nil {
		t.Fatalf("DatabaseStats: %v", err)
	}

	// Grow the corpus; within the TTL the cached value is still served.
	coll.records = append(coll.records, pub("2", "Luis Pérez", "2024-01-01", "libro", "", ""))
	now = base.Add(4 * time.Minute)

	second, err := e.DatabaseStats(context.Background())
	if err != nil {
		t.Fatalf("DatabaseStats: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached stats changed within TTL: %+v vs %+v", first, second)
	}

	// Past the TTL the next call recomputes.
	now = base.Add(6 * time.Minute)
	third, err := e.DatabaseStats(context.Background())
	if err != nil {
		t.Fatalf("DatabaseStats: %v", err)
	}
	if third.TotalDocuments != 2 {
		t.Errorf("TotalDocuments after expiry = %d, want 2", third.TotalDocuments)
	}
}

func TestDatabaseStatsEmptyCorpusIsCached(t *testing.T) {
	coll := &fakeCollection{}
	e := newTestEngine(t, coll, fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	stats, err := e.DatabaseStats(context.Background())
	if err != nil {
		t.Fatalf("DatabaseStats: %v", err)
	}
	if stats.TotalDocuments != 0 || stats.TotalProfessors != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
	if stats.ProductionTypes == nil || stats.YearsCovered == nil {
		t.Error("empty corpus must yield initialized (non-nil) slices")
	}

	// The empty value is cached too: a scan error within the TTL never
	// surfaces because no scan happens.
	coll.getErr = errors.New("store offline")
	if _, err := e.DatabaseStats(context.Background()); err != nil {
		t.Errorf("DatabaseStats served from cache returned error: %v", err)
	}
}

func TestDatabaseStatsScanErrorLeavesCacheUntouched(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("1", "Ana Gómez", "2023-01-01", "articulo", "", ""),
	}}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	e := newTestEngine(t, coll, WithClock(func() time.Time { return now }))

	if _, err := e.DatabaseStats(context.Background()); err != nil {
		t.Fatalf("DatabaseStats: %v", err)
	}

	now = base.Add(10 * time.Minute)
	coll.getErr = errors.New("store offline")
	if _, err := e.DatabaseStats(context.Background()); err == nil {
		t.Fatal("expected scan error after TTL expiry")
	}

	// Recovery: the store comes back and the next call succeeds.
	coll.getErr = nil
	stats, err := e.DatabaseStats(context.Background())
	if err != nil {
		t.Fatalf("DatabaseStats after recovery: %v", err)
	}
	if stats.TotalDocuments != 1 {
		t.Errorf("TotalDocuments = %d, want 1", stats.TotalDocuments)
	}
}
