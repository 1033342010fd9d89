// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine implements the search and ranking core: semantic search
// with structured filters, per-professor rollups, corpus statistics with a
// TTL cache, personalized compatibility scoring, and the availability
// ranking.
//
// The engine is read-only over the corpus and stateless per request except
// for the statistics cache. All scoring and aggregation is pure in-memory
// computation over fetched result sets; the only blocking boundary is the
// corpus store.
package engine

import (
	"errors"
	"time"

	"github.com/pdiddy/tutor-engine/internal/corpus"
)

// ErrServiceUnavailable reports that the corpus store is not initialized
// or unreachable. It is surfaced immediately and never retried here; the
// caller owns retry policy.
var ErrServiceUnavailable = errors.New("corpus store unavailable")

const (
	// maxResults caps the search limit regardless of caller input.
	maxResults = 100

	// statsCacheTTL bounds statistics staleness. A freshly ingested
	// corpus may be invisible for up to this long.
	statsCacheTTL = 5 * time.Minute
)

// Engine is the search and ranking core. Construct with New.
type Engine struct {
	collection corpus.Collection

	now      func() time.Time
	statsTTL time.Duration
	stats    statsCache
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock injects the time source used by the statistics cache and the
// availability ranking. For tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithStatsTTL overrides the statistics cache TTL. For tests.
func WithStatsTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.statsTTL = ttl }
}

// New builds an Engine over collection. A nil collection is rejected up
// front so every later operation can assume a usable store.
func New(collection corpus.Collection, opts ...Option) (*Engine, error) {
	if collection == nil {
		return nil, ErrServiceUnavailable
	}
	e := &Engine{
		collection: collection,
		now:        time.Now,
		statsTTL:   statsCacheTTL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ready guards every public operation: the unavailable condition must be
// detected before executing a query, not discovered mid-query.
func (e *Engine) ready() error {
	if e == nil || e.collection == nil {
		return ErrServiceUnavailable
	}
	return nil
}
