// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the tutor-engine:
// publication records, search results, professor profiles, corpus
// statistics, and stage configuration.
package types

// Metadata holds the structured fields attached to a publication record.
// Every field is optional; consumers must tolerate empty values. Fields
// that feed the embedding text (title, production type, categories) are
// stored in normalized form at ingestion time.
type Metadata struct {
	// Professor is the display name of the publication's owner, derived
	// from the source CSV filename. Exact-string identity: two spellings
	// of the same person are two professors.
	Professor string `json:"professor" yaml:"professor"`

	// ProfessorUsername is the normalized dot-joined slug for Professor.
	ProfessorUsername string `json:"professor_username" yaml:"professor_username"`

	// Title is the normalized publication title.
	Title string `json:"title" yaml:"title"`

	// Authors is the raw author list as it appeared in the source.
	Authors string `json:"authors" yaml:"authors"`

	// Date is the raw publication date string. Several formats occur in
	// the wild (YYYY-MM-DD, DD/MM/YYYY, bare years, "-" sentinels); it is
	// never parsed at ingestion time.
	Date string `json:"date" yaml:"date"`

	// Type is the publication type (e.g. "articulo", "capitulo de libro").
	Type string `json:"type" yaml:"type"`

	// ProductionType is the normalized production category used for
	// filtering and histograms.
	ProductionType string `json:"production_type" yaml:"production_type"`

	// Categories is a normalized string of topic labels; a single value
	// may encode several comma-separated topics.
	Categories string `json:"categories" yaml:"categories"`

	// Source is the journal, conference, or venue.
	Source string `json:"source" yaml:"source"`

	// ImpactFactor is the SJR impact factor as a string; may be empty or
	// non-numeric.
	ImpactFactor string `json:"impact_factor" yaml:"impact_factor"`

	// Quartile is the SJR quartile label ("Q1".."Q4") or empty.
	Quartile string `json:"quartile" yaml:"quartile"`

	// CSVFile is the source file the record was ingested from.
	CSVFile string `json:"csv_file" yaml:"csv_file"`

	// RowNumber is the record's row index within CSVFile.
	RowNumber int `json:"row_number" yaml:"row_number"`
}

// PublicationRecord is one document in the corpus: the embedded semantic
// text plus its metadata. Records are created once at ingestion and never
// mutated; the engine only reads them.
type PublicationRecord struct {
	// ID is an opaque unique identifier assigned at ingestion.
	ID string `json:"id" yaml:"id"`

	// SemanticText is the normalized concatenation of the labeled title,
	// authors, type, and category fields. This is the unit that was
	// embedded; a record with empty SemanticText is never stored.
	SemanticText string `json:"semantic_text" yaml:"semantic_text"`

	// Embedding is the fixed-dimension vector for SemanticText. Opaque to
	// the engine beyond nearest-neighbor distance.
	Embedding []float32 `json:"-" yaml:"-"`

	Metadata Metadata `json:"metadata" yaml:"metadata"`
}
