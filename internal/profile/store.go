// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile persists student profiles and their search history in
// SQLite.
package profile

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

const defaultHistoryLimit = 50

// Store manages the profiles SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the profile database at cfg.DBPath, creating
// the schema if it does not exist.
func NewStore(cfg types.ProfileConfig) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating profile directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			username TEXT PRIMARY KEY,
			full_name TEXT NOT NULL DEFAULT '',
			degree TEXT NOT NULL DEFAULT '',
			year INTEGER NOT NULL DEFAULT 0,
			interests TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '',
			preferred_areas TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			query TEXT NOT NULL,
			search_type TEXT NOT NULL DEFAULT 'semantic',
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_username ON search_history(username)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// GetProfile returns the stored profile for username, or nil when none
// exists.
func (s *Store) GetProfile(ctx context.Context, username string) (*types.UserProfile, error) {
	var p types.UserProfile
	err := s.db.QueryRowContext(ctx,
		`SELECT username, full_name, degree, year, interests, skills, preferred_areas
		 FROM profiles WHERE username = ?`, username,
	).Scan(&p.Username, &p.FullName, &p.Degree, &p.Year, &p.Interests, &p.Skills, &p.PreferredAreas)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", username, err)
	}
	return &p, nil
}

// UpdateProfile applies the non-nil fields of update to the profile,
// creating it if absent, and returns the resulting profile.
func (s *Store) UpdateProfile(ctx context.Context, username string, update types.ProfileUpdate) (*types.UserProfile, error) {
	existing, err := s.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing = &types.UserProfile{Username: username}
	}

	if update.FullName != nil {
		existing.FullName = *update.FullName
	}
	if update.Degree != nil {
		existing.Degree = *update.Degree
	}
	if update.Year != nil {
		existing.Year = *update.Year
	}
	if update.Interests != nil {
		existing.Interests = *update.Interests
	}
	if update.Skills != nil {
		existing.Skills = *update.Skills
	}
	if update.PreferredAreas != nil {
		existing.PreferredAreas = *update.PreferredAreas
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (username, full_name, degree, year, interests, skills, preferred_areas)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			full_name=excluded.full_name, degree=excluded.degree, year=excluded.year,
			interests=excluded.interests, skills=excluded.skills,
			preferred_areas=excluded.preferred_areas`,
		existing.Username, existing.FullName, existing.Degree, existing.Year,
		existing.Interests, existing.Skills, existing.PreferredAreas,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting profile %s: %w", username, err)
	}
	return existing, nil
}

// AddHistory appends a search to the user's history and returns the
// stored entry.
func (s *Store) AddHistory(ctx context.Context, username, query, searchType string) (types.HistoryEntry, error) {
	if searchType == "" {
		searchType = "semantic"
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO search_history (username, query, search_type, created_at)
		 VALUES (?, ?, ?, ?)`,
		username, query, searchType, createdAt,
	)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("inserting history entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("reading inserted id: %w", err)
	}

	return types.HistoryEntry{
		ID:         id,
		Username:   username,
		Query:      query,
		SearchType: searchType,
		CreatedAt:  createdAt,
	}, nil
}

// GetHistory returns the user's most recent searches, newest first.
// A non-positive limit falls back to the default of 50.
func (s *Store) GetHistory(ctx context.Context, username string, limit int) ([]types.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, query, search_type, created_at
		 FROM search_history WHERE username = ?
		 ORDER BY id DESC LIMIT ?`, username, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("loading history for %s: %w", username, err)
	}
	defer rows.Close()

	entries := []types.HistoryEntry{}
	for rows.Next() {
		var e types.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Query, &e.SearchType, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return entries, nil
}

// ClearHistory deletes all history for the user and returns the number
// of removed entries.
func (s *Store) ClearHistory(ctx context.Context, username string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM search_history WHERE username = ?`, username,
	)
	if err != nil {
		return 0, fmt.Errorf("clearing history for %s: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared entries: %w", err)
	}
	return n, nil
}
