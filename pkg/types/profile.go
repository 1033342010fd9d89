// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// UserProfile is a student profile. The engine only reads the three
// free-text fields (Interests, Skills, PreferredAreas); everything else
// belongs to the profile store.
type UserProfile struct {
	Username       string `json:"username" yaml:"username"`
	FullName       string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Degree         string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Year           int    `json:"year,omitempty" yaml:"year,omitempty"`
	Interests      string `json:"interests,omitempty" yaml:"interests,omitempty"`
	Skills         string `json:"skills,omitempty" yaml:"skills,omitempty"`
	PreferredAreas string `json:"preferred_areas,omitempty" yaml:"preferred_areas,omitempty"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdate struct {
	FullName       *string `json:"full_name,omitempty"`
	Degree         *string `json:"degree,omitempty"`
	Year           *int    `json:"year,omitempty"`
	Interests      *string `json:"interests,omitempty"`
	Skills         *string `json:"skills,omitempty"`
	PreferredAreas *string `json:"preferred_areas,omitempty"`
}

// HistoryEntry is one saved search in a user's history.
type HistoryEntry struct {
	ID         int64  `json:"id" yaml:"id"`
	Username   string `json:"username" yaml:"username"`
	Query      string `json:"query" yaml:"query"`
	SearchType string `json:"search_type" yaml:"search_type"`
	CreatedAt  string `json:"created_at" yaml:"created_at"`
}
