// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CountEntry is a name/count pair inside an ordered histogram. Histograms
// are slices rather than maps so the sort order survives serialization.
type CountEntry struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// DatabaseStats holds corpus-wide aggregates. Recomputed by full scan and
// cached; see the statistics cache for the staleness contract.
type DatabaseStats struct {
	TotalDocuments  int `json:"total_documents" yaml:"total_documents"`
	TotalProfessors int `json:"total_professors" yaml:"total_professors"`

	// ProductionTypes is the per-type histogram, sorted descending by count.
	ProductionTypes []CountEntry `json:"production_types" yaml:"production_types"`

	// YearsCovered lists the distinct publication years, sorted descending.
	YearsCovered []string `json:"years_covered" yaml:"years_covered"`

	// YearlyPublications is the per-year histogram, sorted descending by year.
	YearlyPublications []CountEntry `json:"yearly_publications" yaml:"yearly_publications"`

	// TopCategories is the 10 most frequent categories, sorted descending
	// by count.
	TopCategories []CountEntry `json:"top_categories" yaml:"top_categories"`
}
