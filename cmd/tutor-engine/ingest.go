// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/tutor-engine/internal/embedding"
	"github.com/pdiddy/tutor-engine/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load publication CSVs into the corpus",
	Long: `Ingest parses per-professor publication CSVs, computes embeddings for
each record's semantic text, and rebuilds the corpus collection from
scratch. The professor's name is derived from each CSV file name.`,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if dir, _ := cmd.Flags().GetString("csv-dir"); dir != "" {
		cfg.Ingest.CSVDir = dir
	}

	store, err := openCorpus(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	log := logrus.New()
	loader := ingest.NewLoader(cfg.Ingest, store, embedding.NewClient(cfg.Embedding), log)

	summary, err := loader.Run(context.Background(), cfg.Ingest.CSVDir)
	if err != nil {
		return err
	}

	fmt.Printf("ingested %d records from %d file(s)", summary.Records, summary.Files)
	if summary.Skipped > 0 {
		fmt.Printf(", skipped %d unreadable file(s)", summary.Skipped)
	}
	fmt.Println()
	return nil
}

func init() {
	ingestCmd.Flags().String("csv-dir", "", "directory of publication CSVs (overrides config)")

	rootCmd.AddCommand(ingestCmd)
}
