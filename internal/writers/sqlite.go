package writers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"primerscan/internal/table"
)

func init() {
	Register("sqlite", func(ctx context.Context, u *url.URL, o Options) (Sink, error) {
		return NewSQLiteSink(ctx, u.Host+u.Path, o)
	})
}

// SQLiteSink keeps every table in one "hits" relation keyed by (tbl, ord).
type SQLiteSink struct {
	db   *sql.DB
	path string
}

func NewSQLiteSink(ctx context.Context, path string, o Options) (*SQLiteSink, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS hits (
		tbl         TEXT    NOT NULL,
		ord         INTEGER NOT NULL,
		contig_name TEXT    NOT NULL,
		primer      TEXT    NOT NULL,
		start       INTEGER NOT NULL,
		"end"       INTEGER NOT NULL,
		length      INTEGER NOT NULL,
		requested   TEXT    NOT NULL,
		located     TEXT    NOT NULL,
		PRIMARY KEY (tbl, ord)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create hits table: %w", err)
	}
	if o.Clean {
		if _, err := db.ExecContext(ctx, `DELETE FROM hits`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("clean hits: %w", err)
		}
	}
	return &SQLiteSink{db: db, path: path}, nil
}

func (s *SQLiteSink) Location(name string) string { return "sqlite://" + s.path + "#" + name }

// WriteTable replaces the rows of t.Name in a single transaction.
func (s *SQLiteSink) WriteTable(ctx context.Context, t *table.Table) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM hits WHERE tbl = ?`, t.Name); err != nil {
		return fmt.Errorf("delete prior rows: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO hits
		(tbl, ord, contig_name, primer, start, "end", length, requested, located)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()
	for i, h := range t.Hits() {
		if _, err := stmt.ExecContext(ctx, t.Name, i, h.ContigName, h.PrimerName, h.Start, h.End, h.Length, h.Requested, h.Located); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// DB exposes the handle for tests and ad-hoc queries.
func (s *SQLiteSink) DB() *sql.DB { return s.db }

func (s *SQLiteSink) Close() error { return s.db.Close() }
