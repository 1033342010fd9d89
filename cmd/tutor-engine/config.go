// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

func setDefaults() {
	viper.SetDefault("corpus.data_dir", "data")
	viper.SetDefault("corpus.collection", "publications")

	viper.SetDefault("embedding.base_url", "http://localhost:11434/v1")
	viper.SetDefault("embedding.model", "nomic-embed-text")
	viper.SetDefault("embedding.timeout", 60*time.Second)
	viper.SetDefault("embedding.requests_per_second", 0)

	viper.SetDefault("ingest.csv_dir", "csv")
	viper.SetDefault("ingest.batch_size", 1000)
	viper.SetDefault("ingest.embed_concurrency", 4)

	viper.SetDefault("profile.db_path", "data/profiles.db")

	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.allow_origins", []string{})
}

// loadConfig materializes the full configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Corpus: types.CorpusConfig{
			DataDir:    viper.GetString("corpus.data_dir"),
			Collection: viper.GetString("corpus.collection"),
		},
		Embedding: types.EmbeddingConfig{
			BaseURL:           viper.GetString("embedding.base_url"),
			Model:             viper.GetString("embedding.model"),
			APIKey:            viper.GetString("embedding.api_key"),
			Timeout:           viper.GetDuration("embedding.timeout"),
			RequestsPerSecond: viper.GetFloat64("embedding.requests_per_second"),
		},
		Ingest: types.IngestConfig{
			CSVDir:           viper.GetString("ingest.csv_dir"),
			BatchSize:        viper.GetInt("ingest.batch_size"),
			EmbedConcurrency: viper.GetInt("ingest.embed_concurrency"),
		},
		Profile: types.ProfileConfig{
			DBPath: viper.GetString("profile.db_path"),
		},
		Server: types.ServerConfig{
			Addr:         viper.GetString("server.addr"),
			AllowOrigins: viper.GetStringSlice("server.allow_origins"),
		},
	}
}
