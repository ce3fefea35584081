// Package store persists extraction results in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS extractions (
	id             TEXT PRIMARY KEY,
	source_path    TEXT NOT NULL,
	category       TEXT,
	status         TEXT NOT NULL,
	confidence_avg REAL,
	parsed_json    TEXT,
	error          TEXT,
	created_at     TIMESTAMP NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_extractions_status ON extractions(status);
`

// Row is one extraction job and its outcome.
type Row struct {
	ID            uuid.UUID
	SourcePath    string
	Category      string
	Status        constants.JobStatus
	ConfidenceAvg *float64
	ParsedJSON    []byte
	Error         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the results database at path.
// Use ":memory:" for an in-memory database.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A second pooled connection to ":memory:" would see its own empty
	// database, and concurrent writers on a file hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	logger.Info("results database ready", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// EnqueueJob records a new job in QUEUED state.
func (s *Store) EnqueueJob(ctx context.Context, id uuid.UUID, sourcePath string, category constants.Category) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO extractions (id, source_path, category, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), sourcePath, string(category), string(constants.JobStatusQueued), now, now)
	if err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}
	return nil
}

// MarkRunning transitions a queued job to RUNNING.
func (s *Store) MarkRunning(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE extractions SET status = ?, updated_at = ? WHERE id = ?`,
		string(constants.JobStatusRunning), time.Now().UTC(), id.String())
	if err != nil {
		return fmt.Errorf("mark job running: %w", err)
	}
	return nil
}

// FinishSuccess marks the job DONE with its confidence and serialized record.
func (s *Store) FinishSuccess(ctx context.Context, id uuid.UUID, confidenceAvg *float64, parsedJSON []byte) error {
	var parsed any
	if len(parsedJSON) > 0 {
		parsed = string(parsedJSON)
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE extractions SET status = ?, confidence_avg = ?, parsed_json = ?, updated_at = ? WHERE id = ?`,
		string(constants.JobStatusDone), confidenceAvg, parsed, time.Now().UTC(), id.String())
	if err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	return nil
}

// FinishFailure marks the job FAILED with the wrapped cause message.
func (s *Store) FinishFailure(ctx context.Context, id uuid.UUID, msg string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE extractions SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		string(constants.JobStatusFailed), msg, time.Now().UTC(), id.String())
	if err != nil {
		return fmt.Errorf("fail job: %w", err)
	}
	return nil
}

// GetByID loads a single job row.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*Row, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, category, status, confidence_avg, parsed_json, error, created_at, updated_at
		 FROM extractions WHERE id = ?`, id.String())
	r, err := scanRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get extraction %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("get extraction %s: %w", id, err)
	}
	return r, nil
}

// List returns all job rows, oldest first.
func (s *Store) List(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, category, status, confidence_avg, parsed_json, error, created_at, updated_at
		 FROM extractions ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (*Row, error) {
	var (
		r          Row
		idStr      string
		category   sql.NullString
		confidence sql.NullFloat64
		parsed     sql.NullString
		errMsg     sql.NullString
	)
	if err := sc.Scan(&idStr, &r.SourcePath, &category, (*string)(&r.Status),
		&confidence, &parsed, &errMsg, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("bad id %q: %w", idStr, err)
	}
	r.ID = id
	if category.Valid {
		r.Category = category.String
	}
	if confidence.Valid {
		v := confidence.Float64
		r.ConfidenceAvg = &v
	}
	if parsed.Valid {
		r.ParsedJSON = []byte(parsed.String)
	}
	if errMsg.Valid {
		msg := errMsg.String
		r.Error = &msg
	}
	return &r, nil
}
