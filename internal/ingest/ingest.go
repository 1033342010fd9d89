// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest loads per-professor publication CSVs into the corpus
// store: parse, embed, bulk-insert. Ingestion rebuilds the collection
// from scratch on every run.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/tutor-engine/internal/corpus"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

const (
	defaultBatchSize        = 1000
	defaultEmbedConcurrency = 4
)

// Collection is the subset of the corpus store ingestion writes to.
type Collection interface {
	Reset(ctx context.Context) error
	AddBatch(ctx context.Context, records []types.PublicationRecord) error
}

// Loader runs the CSV ingestion pipeline.
type Loader struct {
	collection  Collection
	embedder    corpus.Embedder
	log         *logrus.Logger
	batchSize   int
	concurrency int
}

// NewLoader builds a Loader. Zero batch size and concurrency fall back
// to defaults.
func NewLoader(cfg types.IngestConfig, collection Collection, embedder corpus.Embedder, log *logrus.Logger) *Loader {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	concurrency := cfg.EmbedConcurrency
	if concurrency <= 0 {
		concurrency = defaultEmbedConcurrency
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{
		collection:  collection,
		embedder:    embedder,
		log:         log,
		batchSize:   batchSize,
		concurrency: concurrency,
	}
}

// Summary holds counts from one ingestion run.
type Summary struct {
	Files   int
	Records int
	Skipped int
}

// Run parses every CSV under csvDir, embeds the semantic texts, resets
// the collection, and bulk-loads the records in batches. A file that
// fails to parse is skipped with a warning; an embedding or storage
// failure aborts the run.
func (l *Loader) Run(ctx context.Context, csvDir string) (Summary, error) {
	files, err := filepath.Glob(filepath.Join(csvDir, "*.csv"))
	if err != nil {
		return Summary{}, fmt.Errorf("listing CSV files: %w", err)
	}
	if len(files) == 0 {
		return Summary{}, fmt.Errorf("no CSV files in %s", csvDir)
	}
	sort.Strings(files)
	l.log.WithField("files", len(files)).Info("starting ingestion")

	var (
		summary Summary
		records []types.PublicationRecord
	)
	for _, file := range files {
		parsed, err := parseCSV(file)
		if err != nil {
			l.log.WithError(err).WithField("file", filepath.Base(file)).Warn("skipping unreadable CSV")
			summary.Skipped++
			continue
		}
		l.log.WithFields(logrus.Fields{
			"file":    filepath.Base(file),
			"records": len(parsed),
		}).Info("parsed CSV")
		records = append(records, parsed...)
		summary.Files++
	}
	if len(records) == 0 {
		return summary, fmt.Errorf("no loadable records in %s", csvDir)
	}

	if err := l.embedAll(ctx, records); err != nil {
		return summary, err
	}

	if err := l.collection.Reset(ctx); err != nil {
		return summary, fmt.Errorf("resetting collection: %w", err)
	}
	for start := 0; start < len(records); start += l.batchSize {
		end := start + l.batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := l.collection.AddBatch(ctx, records[start:end]); err != nil {
			return summary, fmt.Errorf("loading batch %d-%d: %w", start+1, end, err)
		}
		l.log.WithFields(logrus.Fields{"from": start + 1, "to": end}).Info("loaded batch")
	}

	summary.Records = len(records)
	l.log.WithField("records", summary.Records).Info("ingestion complete")
	return summary, nil
}

// embedAll fills in the Embedding field of every record, with bounded
// concurrency.
func (l *Loader) embedAll(ctx context.Context, records []types.PublicationRecord) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i := range records {
		g.Go(func() error {
			vec, err := l.embedder.Embed(ctx, records[i].SemanticText)
			if err != nil {
				return fmt.Errorf("embedding record %s: %w", records[i].ID, err)
			}
			records[i].Embedding = vec
			return nil
		})
	}
	return g.Wait()
}
