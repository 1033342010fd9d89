// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus provides the publication corpus store: a similarity
// index over embedded publication records with exact-match metadata
// filtering and bulk fetch.
package corpus

import (
	"context"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

// Embedder produces a fixed-dimension vector for a text. Implementations
// call an external embedding model; the store treats vectors as opaque.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NativeFilter holds the exact-equality predicates the index supports
// natively. Zero-value fields are not applied.
type NativeFilter struct {
	Professor      string
	ProductionType string
	Quartile       string
}

// IsZero reports whether no predicate is set.
func (f NativeFilter) IsZero() bool {
	return f.Professor == "" && f.ProductionType == "" && f.Quartile == ""
}

// Candidate is one nearest-neighbor match with its distance from the
// query vector. Distance is cosine distance in [0, 2]; smaller is closer.
type Candidate struct {
	Record   types.PublicationRecord
	Distance float64
}

// Collection is the corpus store contract the engine depends on. Any
// implementation must provide ordered nearest-neighbor retrieval, filtered
// bulk fetch, and a document count.
type Collection interface {
	// QueryByText embeds text and returns up to topK candidates matching
	// filter, ordered by ascending distance.
	QueryByText(ctx context.Context, text string, topK int, filter NativeFilter) ([]Candidate, error)

	// GetByFilter returns the full unordered record set matching filter.
	GetByFilter(ctx context.Context, filter NativeFilter) ([]types.PublicationRecord, error)

	// Count returns the number of records in the collection.
	Count(ctx context.Context) (int, error)
}
