// Package store archives generated reports in an embedded SQLite database
// so they can be fetched again by ID.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"seqstats/internal/logger"
	"seqstats/internal/perr"
	"seqstats/pkg/api"
)

const schema = `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		seq_sha256 TEXT NOT NULL,
		window_bp INTEGER NOT NULL,
		length INTEGER NOT NULL,
		body TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS reports_seq_sha256 ON reports (seq_sha256);
`

// Store is a report archive backed by one SQLite file.
type Store struct {
	db  *sql.DB
	log logger.Logger
	now func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger used for pragma warnings.
func WithLogger(l logger.Logger) Option { return func(s *Store) { s.log = l } }

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, perr.New(perr.CodeInvalidArgument, "store path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, perr.Wrap(err, perr.CodeStore, "open report store")
	}
	// one writer; also keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: logger.Nop(), now: time.Now}
	for _, o := range opts {
		o(s)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, perr.Wrap(err, perr.CodeStore, "ping report store")
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		s.log.Warn().Err(err).Msg("failed to set WAL mode")
	}
	if _, err := db.ExecContext(ctx, "PRAGMA synchronous = NORMAL;"); err != nil {
		s.log.Warn().Err(err).Msg("failed to set synchronous mode")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, perr.Wrap(err, perr.CodeStore, "create reports table")
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save archives rep for the cleaned sequence seq and returns its ID. An
// empty rep.ID gets a fresh UUID.
func (s *Store) Save(ctx context.Context, seq string, rep api.ReportV1) (string, error) {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	body, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	sum := sha256.Sum256([]byte(seq))
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, created_at, seq_sha256, window_bp, length, body) VALUES (?, ?, ?, ?, ?, ?)`,
		rep.ID, s.now().UnixMilli(), hex.EncodeToString(sum[:]), rep.Window.Width, rep.Length, string(body),
	)
	if err != nil {
		return "", perr.Wrap(err, perr.CodeStore, "insert report")
	}
	return rep.ID, nil
}

// Get returns the report stored under id. Unknown IDs yield an error
// matching perr.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (api.ReportV1, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM reports WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return api.ReportV1{}, perr.WithField(perr.ErrNotFound, "id")
	}
	if err != nil {
		return api.ReportV1{}, perr.Wrap(err, perr.CodeStore, "select report")
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(body), &rep); err != nil {
		return api.ReportV1{}, perr.Wrap(err, perr.CodeStore, "decode stored report")
	}
	return rep, nil
}

// Count returns how many reports are archived.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&n); err != nil {
		return 0, perr.Wrap(err, perr.CodeStore, "count reports")
	}
	return n, nil
}
