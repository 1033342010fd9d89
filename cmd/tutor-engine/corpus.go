// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/pdiddy/tutor-engine/internal/corpus"
	"github.com/pdiddy/tutor-engine/internal/embedding"
	"github.com/pdiddy/tutor-engine/internal/engine"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// openCorpus opens the corpus store with an embedding client attached.
// The caller owns the returned store and must Close it.
func openCorpus(cfg types.Config) (*corpus.Store, error) {
	store, err := corpus.Open(cfg.Corpus, embedding.NewClient(cfg.Embedding))
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	return store, nil
}

// openEngine opens the corpus and wraps it in an engine.
func openEngine(cfg types.Config) (*engine.Engine, *corpus.Store, error) {
	store, err := openCorpus(cfg)
	if err != nil {
		return nil, nil, err
	}
	eng, err := engine.New(store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return eng, store, nil
}
