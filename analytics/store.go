package analytics

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store records and aggregates page views in SQLite.
type Store struct {
	db   *sql.DB
	salt string
}

// NewStore opens (or creates) the analytics database at path, runs schema
// setup, and loads the persistent hashing salt.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure analytics schema: %w", err)
	}
	if err := s.loadSalt(); err != nil {
		return nil, fmt.Errorf("init analytics salt: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    visitor_id TEXT NOT NULL,
    path TEXT NOT NULL,
    visited_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits(visited_at);
CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// loadSalt reads the per-installation salt, generating and persisting one on
// first run.
func (s *Store) loadSalt() error {
	var salt string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = 'hash_salt'`).Scan(&salt)
	if err == sql.ErrNoRows {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate salt: %w", err)
		}
		salt = hex.EncodeToString(b)
		if _, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES ('hash_salt', ?)`, salt); err != nil {
			return fmt.Errorf("store salt: %w", err)
		}
	} else if err != nil {
		return err
	}
	s.salt = salt
	return nil
}

// RecordVisit stores one anonymized page view.
func (s *Store) RecordVisit(path, ip, userAgent string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO visits (visitor_id, path, visited_at) VALUES (?, ?, ?)`,
		visitorID(s.salt, ip, userAgent, now), path, now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// TopPages returns the most viewed paths over the last `days` days.
func (s *Store) TopPages(days, limit int) ([]PageCount, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	rows, err := s.db.Query(`
		SELECT path, COUNT(*), COUNT(DISTINCT visitor_id)
		FROM visits
		WHERE visited_at >= ?
		GROUP BY path
		ORDER BY COUNT(*) DESC, path
		LIMIT ?`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("query top pages: %w", err)
	}
	defer rows.Close()

	var pages []PageCount
	for rows.Next() {
		var p PageCount
		if err := rows.Scan(&p.Path, &p.Views, &p.Visitors); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// PruneOlderThan deletes visits older than the given number of days.
func (s *Store) PruneOlderThan(days int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	_, err := s.db.Exec(`DELETE FROM visits WHERE visited_at < ?`, cutoff)
	return err
}

// StartCleanupScheduler prunes old visits on the given interval until the
// returned stop function is called.
func (s *Store) StartCleanupScheduler(retainDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = s.PruneOlderThan(retainDays)
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
