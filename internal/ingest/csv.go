// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/tutor-engine/internal/textnorm"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// CSV column headers after trimming and upper-casing.
const (
	colTitle          = "TÍTULO"
	colAuthors        = "AUTORES"
	colDate           = "FECHA"
	colType           = "TIPO"
	colProductionType = "TIPO DE PRODUCCIÓN"
	colCategories     = "CATEGORÍAS"
	colSource         = "FUENTE"
	colImpactFactor   = "IF SJR"
	colQuartile       = "Q SJR"
)

// semanticFields lists the columns folded into the semantic text, with
// the label each contributes. Order matters: it fixes the text layout
// the embeddings are computed over.
var semanticFields = []struct {
	column string
	label  string
}{
	{colTitle, "Título"},
	{colAuthors, "Autores"},
	{colType, "Tipo"},
	{colProductionType, "Tipo de producción"},
	{colCategories, "Categorías"},
	{colSource, "Fuente"},
	{colImpactFactor, "Impacto SJR"},
	{colQuartile, "Cuartil SJR"},
}

var titleCaser = cases.Title(language.Spanish)

// professorFromFilename derives the professor's display name from the
// CSV file name: underscores become spaces, words are title-cased.
func professorFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return titleCaser.String(strings.ReplaceAll(stem, "_", " "))
}

// parseCSV reads one professor's publication CSV into records without
// embeddings. Rows whose semantic text normalizes to empty are dropped.
func parseCSV(path string) ([]types.PublicationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	professor := professorFromFilename(path)
	username := textnorm.GenerateUsername(professor)
	fileName := filepath.Base(path)

	var records []types.PublicationRecord
	rowNumber := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row of %s: %w", path, err)
		}

		field := func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		var parts []string
		for _, sf := range semanticFields {
			if v := field(sf.column); v != "" {
				parts = append(parts, sf.label+": "+v)
			}
		}
		semanticText := textnorm.Normalize(strings.Join(parts, " "))
		if semanticText == "" {
			rowNumber++
			continue
		}

		records = append(records, types.PublicationRecord{
			ID:           uuid.NewString(),
			SemanticText: semanticText,
			Metadata: types.Metadata{
				Professor:         professor,
				ProfessorUsername: username,
				Title:             textnorm.Normalize(field(colTitle)),
				Authors:           field(colAuthors),
				Date:              field(colDate),
				Type:              field(colType),
				ProductionType:    textnorm.Normalize(field(colProductionType)),
				Categories:        textnorm.Normalize(field(colCategories)),
				Source:            field(colSource),
				ImpactFactor:      field(colImpactFactor),
				Quartile:          field(colQuartile),
				CSVFile:           fileName,
				RowNumber:         rowNumber,
			},
		})
		rowNumber++
	}
	return records, nil
}
