// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CorpusConfig holds settings for the corpus store.
type CorpusConfig struct {
	// DataDir is the directory holding the corpus SQLite database.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Collection is the logical collection name (default "publications").
	Collection string `json:"collection" yaml:"collection"`
}

// EmbeddingConfig holds settings for the embedding service client.
type EmbeddingConfig struct {
	// BaseURL is the OpenAI-compatible API base (e.g. an Ollama or
	// OpenRouter endpoint).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the embedding model identifier.
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates the request; empty for local servers.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the per-request HTTP timeout (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// RequestsPerSecond rate-limits outgoing embedding calls. Zero
	// disables limiting.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// IngestConfig holds settings for the CSV ingestion stage.
type IngestConfig struct {
	// CSVDir is the directory of per-professor CSV files.
	CSVDir string `json:"csv_dir" yaml:"csv_dir"`

	// BatchSize is the bulk-load batch size (default 1000).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// EmbedConcurrency bounds concurrent embedding requests (default 4).
	EmbedConcurrency int `json:"embed_concurrency" yaml:"embed_concurrency"`
}

// ProfileConfig holds settings for the user profile store.
type ProfileConfig struct {
	// DBPath is the path to the profiles SQLite database.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// AllowOrigins configures CORS; empty allows all origins.
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}

// Config groups all stage configurations.
type Config struct {
	Corpus    CorpusConfig    `json:"corpus" yaml:"corpus"`
	Embedding EmbeddingConfig `json:"embedding" yaml:"embedding"`
	Ingest    IngestConfig    `json:"ingest" yaml:"ingest"`
	Profile   ProfileConfig   `json:"profile" yaml:"profile"`
	Server    ServerConfig    `json:"server" yaml:"server"`
}
