// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.ProfileConfig{DBPath: filepath.Join(t.TempDir(), "profiles.db")})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func TestGetProfileUnknownUser(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetProfile(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p != nil {
		t.Errorf("profile = %+v, want nil", p)
	}
}

func TestUpdateProfileCreatesAndMerges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.UpdateProfile(ctx, "dani", types.ProfileUpdate{
		FullName:  strPtr("Daniel Muñoz"),
		Interests: strPtr("machine learning"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if created.Username != "dani" || created.FullName != "Daniel Muñoz" {
		t.Errorf("created = %+v", created)
	}

	// A second partial update keeps the untouched fields.
	year := 4
	updated, err := s.UpdateProfile(ctx, "dani", types.ProfileUpdate{
		Year:   &year,
		Skills: strPtr("python, go"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.FullName != "Daniel Muñoz" || updated.Interests != "machine learning" {
		t.Errorf("partial update clobbered fields: %+v", updated)
	}
	if updated.Year != 4 || updated.Skills != "python, go" {
		t.Errorf("updated = %+v", updated)
	}

	stored, err := s.GetProfile(ctx, "dani")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if *stored != *updated {
		t.Errorf("stored = %+v, want %+v", stored, updated)
	}
}

func TestUpdateProfileEmptyStringClears(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpdateProfile(ctx, "dani", types.ProfileUpdate{Interests: strPtr("redes")}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	// An explicit empty string clears the field; only nil means "keep".
	p, err := s.UpdateProfile(ctx, "dani", types.ProfileUpdate{Interests: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if p.Interests != "" {
		t.Errorf("Interests = %q, want cleared", p.Interests)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddHistory(ctx, "dani", "redes neuronales", "")
	if err != nil {
		t.Fatalf("AddHistory: %v", err)
	}
	if first.SearchType != "semantic" {
		t.Errorf("SearchType = %q, want default semantic", first.SearchType)
	}
	if first.ID == 0 || first.CreatedAt == "" {
		t.Errorf("entry not fully populated: %+v", first)
	}

	if _, err := s.AddHistory(ctx, "dani", "vision artificial", "recommendation"); err != nil {
		t.Fatalf("AddHistory: %v", err)
	}
	if _, err := s.AddHistory(ctx, "other", "quimica", ""); err != nil {
		t.Fatalf("AddHistory: %v", err)
	}

	entries, err := s.GetHistory(ctx, "dani", 0)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2 (other users excluded)", len(entries))
	}
	if entries[0].Query != "vision artificial" || entries[1].Query != "redes neuronales" {
		t.Errorf("entries not newest-first: %+v", entries)
	}

	limited, err := s.GetHistory(ctx, "dani", 1)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(limited) != 1 || limited[0].Query != "vision artificial" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestClearHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c"} {
		if _, err := s.AddHistory(ctx, "dani", q, ""); err != nil {
			t.Fatalf("AddHistory: %v", err)
		}
	}
	if _, err := s.AddHistory(ctx, "other", "keep", ""); err != nil {
		t.Fatalf("AddHistory: %v", err)
	}

	n, err := s.ClearHistory(ctx, "dani")
	if err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	if n != 3 {
		t.Errorf("cleared = %d, want 3", n)
	}

	remaining, err := s.GetHistory(ctx, "dani", 0)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("remaining = %+v, want empty", remaining)
	}

	others, err := s.GetHistory(ctx, "other", 0)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(others) != 1 {
		t.Errorf("other user's history affected: %+v", others)
	}
}
