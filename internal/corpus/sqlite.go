// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tutor-engine/pkg/types"
)

const defaultCollection = "publications"

// Store is a SQLite-backed Collection. Embeddings are stored as
// little-endian float32 blobs and compared with cosine distance in
// memory; native filters are pushed into the SQL WHERE clause.
type Store struct {
	db       *sql.DB
	embedder Embedder
}

// Open opens or creates the collection database under cfg.DataDir and
// ensures the schema exists.
func Open(cfg types.CorpusConfig, embedder Embedder) (*Store, error) {
	collection := cfg.Collection
	if collection == "" {
		collection = defaultCollection
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating corpus directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, collection+".db")
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening corpus database: %w", err)
	}

	s := &Store{db: db, embedder: embedder}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			semantic_text TEXT NOT NULL,
			embedding BLOB NOT NULL,
			professor TEXT,
			professor_username TEXT,
			title TEXT,
			authors TEXT,
			date TEXT,
			type TEXT,
			production_type TEXT,
			categories TEXT,
			source TEXT,
			impact_factor TEXT,
			quartile TEXT,
			csv_file TEXT,
			row_number INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_professor ON records(professor)`,
		`CREATE INDEX IF NOT EXISTS idx_records_production_type ON records(production_type)`,
		`CREATE INDEX IF NOT EXISTS idx_records_quartile ON records(quartile)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Reset drops all records. Ingestion recreates the collection from
// scratch rather than merging.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("resetting collection: %w", err)
	}
	return nil
}

// AddBatch inserts records in one transaction. A record with empty
// semantic text or an empty embedding is rejected: it would be
// unsearchable and contributes no signal.
func (s *Store) AddBatch(ctx context.Context, records []types.PublicationRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (id, semantic_text, embedding, professor, professor_username,
			title, authors, date, type, production_type, categories, source,
			impact_factor, quartile, csv_file, row_number)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if strings.TrimSpace(r.SemanticText) == "" {
			return fmt.Errorf("record %s: empty semantic text", r.ID)
		}
		if len(r.Embedding) == 0 {
			return fmt.Errorf("record %s: empty embedding", r.ID)
		}
		m := r.Metadata
		_, err := stmt.ExecContext(ctx,
			r.ID, r.SemanticText, serializeVector(r.Embedding),
			m.Professor, m.ProfessorUsername, m.Title, m.Authors, m.Date,
			m.Type, m.ProductionType, m.Categories, m.Source,
			m.ImpactFactor, m.Quartile, m.CSVFile, m.RowNumber,
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// QueryByText embeds text and returns the topK nearest candidates
// matching filter, ordered by ascending cosine distance.
func (s *Store) QueryByText(ctx context.Context, text string, topK int, filter NativeFilter) ([]Candidate, error) {
	queryVec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	where, args := buildWhere(filter)
	rows, err := s.db.QueryContext(ctx, selectColumns(true)+where, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		record, vec, err := scanRecord(rows, true)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Record:   record,
			Distance: 1.0 - cosineSimilarity(queryVec, vec),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})
	if topK > 0 && len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates, nil
}

// GetByFilter returns all records matching filter, in storage order.
// Embeddings are not loaded; aggregation never needs them.
func (s *Store) GetByFilter(ctx context.Context, filter NativeFilter) ([]types.PublicationRecord, error) {
	where, args := buildWhere(filter)
	rows, err := s.db.QueryContext(ctx, selectColumns(false)+where, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []types.PublicationRecord
	for rows.Next() {
		record, _, err := scanRecord(rows, false)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the number of records in the collection.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func selectColumns(withEmbedding bool) string {
	cols := `SELECT id, semantic_text, professor, professor_username, title, authors,
		date, type, production_type, categories, source, impact_factor,
		quartile, csv_file, row_number`
	if withEmbedding {
		cols += `, embedding`
	}
	return cols + ` FROM records`
}

func buildWhere(filter NativeFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if filter.Professor != "" {
		clauses = append(clauses, `professor = ?`)
		args = append(args, filter.Professor)
	}
	if filter.ProductionType != "" {
		clauses = append(clauses, `production_type = ?`)
		args = append(args, filter.ProductionType)
	}
	if filter.Quartile != "" {
		clauses = append(clauses, `quartile = ?`)
		args = append(args, filter.Quartile)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanRecord(rows *sql.Rows, withEmbedding bool) (types.PublicationRecord, []float32, error) {
	var (
		r        types.PublicationRecord
		vecBytes []byte
	)
	dest := []any{
		&r.ID, &r.SemanticText, &r.Metadata.Professor, &r.Metadata.ProfessorUsername,
		&r.Metadata.Title, &r.Metadata.Authors, &r.Metadata.Date, &r.Metadata.Type,
		&r.Metadata.ProductionType, &r.Metadata.Categories, &r.Metadata.Source,
		&r.Metadata.ImpactFactor, &r.Metadata.Quartile, &r.Metadata.CSVFile,
		&r.Metadata.RowNumber,
	}
	if withEmbedding {
		dest = append(dest, &vecBytes)
	}
	if err := rows.Scan(dest...); err != nil {
		return types.PublicationRecord{}, nil, fmt.Errorf("scanning record: %w", err)
	}
	if !withEmbedding {
		return r, nil, nil
	}
	return r, deserializeVector(vecBytes), nil
}

// serializeVector converts a float32 slice to little-endian bytes.
func serializeVector(vector []float32) []byte {
	buf := make([]byte, len(vector)*4)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// deserializeVector converts bytes back to a float32 slice.
func deserializeVector(data []byte) []float32 {
	vector := make([]float32, len(data)/4)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return vector
}

// cosineSimilarity returns the cosine of the angle between a and b, or 0
// when either vector is zero or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
