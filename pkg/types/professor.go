// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Work is one publication inside a professor profile.
type Work struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	Type           string `json:"type" yaml:"type"`
	ProductionType string `json:"production_type" yaml:"production_type"`
	Date           string `json:"date" yaml:"date"`
	Categories     string `json:"categories" yaml:"categories"`
	Source         string `json:"source" yaml:"source"`
	ImpactFactor   string `json:"impact_factor" yaml:"impact_factor"`
	Quartile       string `json:"quartile" yaml:"quartile"`
	Content        string `json:"content" yaml:"content"`
}

// ProfessorStats aggregates a professor's publication record.
type ProfessorStats struct {
	// TotalWorks is the count of corpus records whose professor field
	// matches the profile name exactly.
	TotalWorks int `json:"total_works" yaml:"total_works"`

	// ProductionTypes maps production type to publication count.
	ProductionTypes map[string]int `json:"production_types" yaml:"production_types"`

	// ActiveYears lists the distinct 4-digit publication years seen,
	// sorted descending. Unparseable dates contribute no year.
	ActiveYears []string `json:"active_years" yaml:"active_years"`

	// Categories and Sources are the distinct values seen across works.
	Categories []string `json:"categories" yaml:"categories"`
	Sources    []string `json:"sources" yaml:"sources"`

	// RecentWorks holds the 10 most recent works by parsed date.
	RecentWorks []Work `json:"recent_works" yaml:"recent_works"`

	// Classification buckets by substring match on the production type.
	Teaching []Work `json:"teaching" yaml:"teaching"`
	Research []Work `json:"research" yaml:"research"`
	Projects []Work `json:"projects" yaml:"projects"`
}

// ProfessorProfile is the full per-professor rollup: every work plus
// aggregate statistics.
type ProfessorProfile struct {
	Professor string         `json:"professor" yaml:"professor"`
	Works     []Work         `json:"works" yaml:"works"`
	Stats     ProfessorStats `json:"stats" yaml:"stats"`
}

// ProfessorSummary is the compact listing form used by AllProfessors.
type ProfessorSummary struct {
	Name       string         `json:"name" yaml:"name"`
	Username   string         `json:"username" yaml:"username"`
	TotalWorks int            `json:"total_works" yaml:"total_works"`
	WorkTypes  map[string]int `json:"work_types" yaml:"work_types"`
	Categories []string       `json:"categories" yaml:"categories"`
}

// ProfessorList is the reply for the professor listing operation.
type ProfessorList struct {
	TotalProfessors int                `json:"total_professors" yaml:"total_professors"`
	Professors      []ProfessorSummary `json:"professors" yaml:"professors"`
}

// AvailabilityEntry is one row of the availability ranking: a heuristic
// "how busy" signal derived from recent publication volume.
type AvailabilityEntry struct {
	Professor          string   `json:"professor" yaml:"professor"`
	TotalPublications  int      `json:"total_publications" yaml:"total_publications"`
	RecentPublications int      `json:"recent_publications" yaml:"recent_publications"`
	Categories         []string `json:"categories" yaml:"categories"`

	// AvailabilityScore is round(1 - load*0.7, 2) where load is this
	// professor's recent output relative to the corpus-wide maximum.
	AvailabilityScore float64 `json:"availability_score" yaml:"availability_score"`

	// AvailabilityLabel is "High" (>= 0.7), "Medium" (>= 0.4), or "Low".
	AvailabilityLabel string `json:"availability_label" yaml:"availability_label"`
}
