// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DateRange bounds the raw date string of a result. Comparison is
// lexicographic on the stored string, which is only meaningful when the
// corpus shares one format (e.g. YYYY-MM-DD). Mixed-format corpora will
// silently misorder; kept as-is to preserve observable behavior.
type DateRange struct {
	// Start is the inclusive lower bound; empty means unbounded.
	Start string `json:"start,omitempty" yaml:"start,omitempty"`

	// End is the inclusive upper bound; empty means unbounded.
	End string `json:"end,omitempty" yaml:"end,omitempty"`
}

// FilterSet holds the structured filters accepted by Search. Professor,
// ProductionType, and Quartile are pushed to the corpus store as native
// equality filters; DateRange and MinImpactFactor are applied after
// retrieval on the returned candidate set only.
type FilterSet struct {
	Professor      string     `json:"professor,omitempty" yaml:"professor,omitempty"`
	ProductionType string     `json:"production_type,omitempty" yaml:"production_type,omitempty"`
	Quartile       string     `json:"quartile,omitempty" yaml:"quartile,omitempty"`
	DateRange      *DateRange `json:"date_range,omitempty" yaml:"date_range,omitempty"`

	// MinImpactFactor excludes results whose impact factor is below the
	// threshold. Results with a missing or non-numeric impact factor are
	// excluded while this filter is active.
	MinImpactFactor *float64 `json:"min_impact_factor,omitempty" yaml:"min_impact_factor,omitempty"`
}

// IsZero reports whether no filter is set.
func (f FilterSet) IsZero() bool {
	return f.Professor == "" && f.ProductionType == "" && f.Quartile == "" &&
		f.DateRange == nil && f.MinImpactFactor == nil
}

// SearchResult is one ranked match. Metadata fields are flattened to the
// top level for consumers; Content carries the semantic text.
type SearchResult struct {
	ID string `json:"id" yaml:"id"`

	// RelevanceScore is max(0, 1-Distance), rounded to 3 decimals.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`

	// Distance is the corpus store's similarity distance, rounded to 3
	// decimals.
	Distance float64 `json:"distance" yaml:"distance"`

	Content        string `json:"content" yaml:"content"`
	Professor      string `json:"professor" yaml:"professor"`
	Title          string `json:"title" yaml:"title"`
	Type           string `json:"type" yaml:"type"`
	ProductionType string `json:"production_type" yaml:"production_type"`
	Date           string `json:"date" yaml:"date"`
	Categories     string `json:"categories" yaml:"categories"`
	Source         string `json:"source" yaml:"source"`
	ImpactFactor   string `json:"impact_factor" yaml:"impact_factor"`
	Quartile       string `json:"quartile" yaml:"quartile"`

	// CompatibilityScore is set only when the result has been scored
	// against a user profile.
	CompatibilityScore *float64 `json:"compatibility_score,omitempty" yaml:"compatibility_score,omitempty"`
}

// SearchResponse is the full reply for one search call.
type SearchResponse struct {
	Query          string         `json:"query" yaml:"query"`
	TotalResults   int            `json:"total_results" yaml:"total_results"`
	Results        []SearchResult `json:"results" yaml:"results"`
	FiltersApplied FilterSet      `json:"filters_applied" yaml:"filters_applied"`

	// Message carries an advisory note (e.g. incomplete profile on a
	// recommendation call). Empty on plain searches.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}
