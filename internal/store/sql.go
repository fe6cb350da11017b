package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options configures the database connection and its pool.
type Options struct {
	Driver string // "sqlite" (default) or "postgres"
	DSN    string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SQLStore implements Store over a relational database via sqlx.
type SQLStore struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database described by opts, configures the
// connection pool, and runs any pending schema migrations.
func Open(opts Options) (*SQLStore, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	var db *sqlx.DB
	var err error
	inMemory := false
	switch driver {
	case DriverSQLite:
		db, err = sqlx.Open("sqlite", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite db: %w", err)
		}
		// An in-memory database exists per connection; keep the pool
		// at a single connection so every caller sees the same data.
		inMemory = strings.Contains(opts.DSN, ":memory:") || strings.Contains(opts.DSN, "mode=memory")
		if inMemory {
			db.SetMaxOpenConns(1)
		} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
	case DriverPostgres:
		db, err = sqlx.Open("pgx", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres db: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	if opts.MaxOpenConns > 0 && !inMemory {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	s := &SQLStore{db: db, driver: driver}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Ping verifies database reachability with a trivial query.
func (s *SQLStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return unavailable("pinging database", err)
	}
	return nil
}

// q rewrites ?-style placeholders into the driver's bind style.
func (s *SQLStore) q(query string) string {
	return s.db.Rebind(query)
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	var err error
	switch s.driver {
	case DriverPostgres:
		err = s.db.Get(&tableCount,
			"SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'schema_version'")
	default:
		err = s.db.Get(&tableCount,
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'")
	}
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations(s.driver) {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}
