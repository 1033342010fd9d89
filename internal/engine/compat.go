// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

// Compatibility score weights. All terms are non-negative; the sum is
// capped at 1.0.
const (
	relevanceWeight     = 0.4
	interestsBonus      = 0.3
	preferredAreasBonus = 0.2
	impactBonusCap      = 0.1
)

// minTokenLength is the cutoff below which profile tokens are ignored as
// stopword noise ("de", "la", "and").
const minTokenLength = 4

// CompatibilityScore blends a result's relevance with keyword overlap
// against the user profile and a normalized journal-impact bonus. The
// overlap bonuses are binary, not proportional to the number of matching
// tokens. Malformed impact factors contribute 0; never fails.
func CompatibilityScore(result types.SearchResult, profile types.UserProfile) float64 {
	score := result.RelevanceScore * relevanceWeight

	if overlaps(profile.Interests, result.Categories) {
		score += interestsBonus
	}
	if overlaps(profile.PreferredAreas, result.Categories) {
		score += preferredAreasBonus
	}

	if impact, err := strconv.ParseFloat(result.ImpactFactor, 64); err == nil {
		bonus := impact / 10
		if bonus > impactBonusCap {
			bonus = impactBonusCap
		}
		score += bonus
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// overlaps reports whether any sufficiently long token of the profile
// field appears as a substring of the categories string, both case-folded.
func overlaps(field, categories string) bool {
	if field == "" || categories == "" {
		return false
	}
	categoriesLower := strings.ToLower(categories)
	for _, token := range strings.Fields(strings.ToLower(field)) {
		if utf8.RuneCountInString(token) < minTokenLength {
			continue
		}
		if strings.Contains(categoriesLower, token) {
			return true
		}
	}
	return false
}

// Recommend builds a personalized ranking for a user: it searches with a
// query assembled from the profile's free-text fields, scores each result
// for compatibility, and re-sorts descending by that score (stable on
// ties). An empty profile yields a well-formed empty response with an
// advisory message.
func (e *Engine) Recommend(ctx context.Context, profile types.UserProfile, limit int) (types.SearchResponse, error) {
	if err := e.ready(); err != nil {
		return types.SearchResponse{}, err
	}

	var parts []string
	for _, p := range []string{profile.Interests, profile.PreferredAreas, profile.Skills} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return types.SearchResponse{
			Results: []types.SearchResult{},
			Message: "complete your profile (interests, preferred areas) to get personalized recommendations",
		}, nil
	}

	resp, err := e.Search(ctx, strings.Join(parts, ", "), limit, nil)
	if err != nil {
		return types.SearchResponse{}, err
	}

	for i := range resp.Results {
		score := CompatibilityScore(resp.Results[i], profile)
		resp.Results[i].CompatibilityScore = &score
	}
	sortByCompatibilityDesc(resp.Results)

	return resp, nil
}

func sortByCompatibilityDesc(results []types.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return compat(results[i]) > compat(results[j])
	})
}

func compat(r types.SearchResult) float64 {
	if r.CompatibilityScore == nil {
		return 0
	}
	return *r.CompatibilityScore
}
