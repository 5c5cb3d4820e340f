// Package store provides read/write access to the relational base
// tables backing the application. The store is a single SQLite file
// held open exclusively by one process; concurrent writers are not
// supported.
package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"fjacquet/fattura-desk/internal/fileutils"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store wraps the SQLite connection and exposes the narrow read and
// write operations the application needs. Every writer commits before
// returning; readers never write.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if missing) the store file at the given
// path, creating the parent directory when needed, and ensures the base
// schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fileutils.EnsureDirectoryExists(dir); err != nil {
			return nil, fmt.Errorf("error creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("error opening store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to store: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}

	log.WithField("path", path).Debug("Store opened")
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for the ledger derivations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates the base tables when they do not exist yet.
// The statements are idempotent so opening an existing store is a
// no-op.
func (s *Store) ensureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("error initialising schema: %w", err)
		}
	}
	return nil
}

// scanDecimal converts a scanned nullable string into a decimal value,
// treating NULL and garbage as zero.
func scanDecimal(v sql.NullString) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return decimal.Zero
	}
	return d
}
