// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"math"
	"testing"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

func result(relevance float64, categories, impactFactor string) types.SearchResult {
	return types.SearchResult{
		RelevanceScore: relevance,
		Categories:     categories,
		ImpactFactor:   impactFactor,
	}
}

func TestCompatibilityScoreComponents(t *testing.T) {
	profile := types.UserProfile{
		Interests:      "machine learning",
		PreferredAreas: "redes neuronales",
	}

	tests := []struct {
		name   string
		result types.SearchResult
		want   float64
	}{
		{"relevance only", result(0.5, "quimica organica", ""), 0.2},
		{"interests overlap", result(0.5, "machine learning aplicado", ""), 0.5},
		{"both overlaps", result(0.5, "machine learning, redes", ""), 0.7},
		{"impact bonus", result(0.5, "quimica organica", "0.5"), 0.25},
		{"impact bonus capped", result(0.5, "quimica organica", "25.0"), 0.3},
		{"malformed impact ignored", result(0.5, "quimica organica", "N/A"), 0.2},
		{"everything capped at 1", result(1.0, "machine learning, redes", "25.0"), 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompatibilityScore(tt.result, profile)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompatibilityScoreMonotonicInRelevance(t *testing.T) {
	profile := types.UserProfile{Interests: "redes"}
	low := CompatibilityScore(result(0.2, "quimica", ""), profile)
	high := CompatibilityScore(result(0.9, "quimica", ""), profile)
	if high <= low {
		t.Errorf("score not monotonic in relevance: %v <= %v", high, low)
	}
}

func TestCompatibilityScoreIgnoresShortTokens(t *testing.T) {
	// "de" and "la" are too short to count as overlap even though they
	// appear inside the categories string.
	profile := types.UserProfile{Interests: "de la ia"}
	got := CompatibilityScore(result(0.0, "modelado de la materia", ""), profile)
	if got != 0 {
		t.Errorf("score = %v, want 0 (short tokens are noise)", got)
	}

	profile = types.UserProfile{Interests: "modelado"}
	got = CompatibilityScore(result(0.0, "modelado de la materia", ""), profile)
	if got != interestsBonus {
		t.Errorf("score = %v, want %v", got, interestsBonus)
	}
}

func TestCompatibilityScoreCaseFolds(t *testing.T) {
	profile := types.UserProfile{Interests: "MACHINE Learning"}
	got := CompatibilityScore(result(0.0, "Machine Learning y Visión", ""), profile)
	if got != interestsBonus {
		t.Errorf("score = %v, want %v", got, interestsBonus)
	}
}

func TestRecommendEmptyProfile(t *testing.T) {
	coll := &fakeCollection{records: []types.PublicationRecord{
		pub("r1", "Ana Gómez", "2023-01-01", "articulo", "", ""),
	}}
	e := newTestEngine(t, coll)

	resp, err := e.Recommend(context.Background(), types.UserProfile{Username: "empty"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("Results = %v, want empty", resp.Results)
	}
	if resp.Message == "" {
		t.Error("empty profile must produce an advisory message")
	}
	if coll.lastQueryText != "" {
		t.Error("no search should run for an empty profile")
	}
}

func TestRecommendReordersByCompatibility(t *testing.T) {
	coll := &fakeCollection{
		records: []types.PublicationRecord{
			pub("plain", "Ana Gómez", "2023-01-01", "articulo", "quimica organica", ""),
			pub("match", "Luis Pérez", "2023-01-01", "articulo", "machine learning", ""),
		},
		// "plain" is semantically closer, but "match" overlaps the
		// profile's interests and must outrank it after re-scoring.
		distances: map[string]float64{"plain": 0.1, "match": 0.4},
	}
	e := newTestEngine(t, coll)

	profile := types.UserProfile{
		Username:  "dani",
		Interests: "machine learning",
	}
	resp, err := e.Recommend(context.Background(), profile, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("len = %d, want 2", len(resp.Results))
	}

	if resp.Results[0].ID != "match" {
		t.Errorf("first = %s, want match", resp.Results[0].ID)
	}
	for _, r := range resp.Results {
		if r.CompatibilityScore == nil {
			t.Fatalf("result %s missing compatibility score", r.ID)
		}
	}
	if *resp.Results[0].CompatibilityScore <= *resp.Results[1].CompatibilityScore {
		t.Error("results not sorted descending by compatibility")
	}
}

func TestRecommendQueryJoinsProfileFields(t *testing.T) {
	coll := &fakeCollection{}
	e := newTestEngine(t, coll)

	profile := types.UserProfile{
		Interests:      "Machine Learning",
		PreferredAreas: "Redes",
		Skills:         "Python",
	}
	if _, err := e.Recommend(context.Background(), profile, 10); err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// The joined query goes through the usual normalization.
	if coll.lastQueryText != "machine learning redes python" {
		t.Errorf("query = %q", coll.lastQueryText)
	}
}
