/*
Package sqlite provides the SQLite-backed hostel record store.

PURPOSE:
  Implements hostel.Store on an embedded SQLite database. One file per entity
  (tenants.go, rooms.go, beds.go, payments.go) holds its accessors; seed.go
  bootstraps sample data and reconcile.go repairs missing rooms/beds.

KEY TABLES:
  tenants:  tenant records, room/bed named as display strings
  rooms:    roomNumber UNIQUE
  beds:     roomId -> rooms ON DELETE CASCADE,
            tenantId -> tenants ON DELETE SET NULL,
            UNIQUE(roomId, bedNumber)
  payments: tenantId -> tenants ON DELETE CASCADE

  Column names are camelCase and match the mobile app's on-device database
  so the same file can be opened by either.

FOREIGN KEYS:
  SQLite ignores REFERENCES clauses unless foreign_keys is on for the
  connection. The DSN turns it on and the pool is pinned to one connection,
  so every statement runs with enforcement (and ":memory:" databases are not
  split across connections).

CONCURRENCY:
  Uses sync.RWMutex like the rest of our stores. No accessor opens a SQL
  transaction; each is a single statement (updates read then write).

USAGE:
  store, err := sqlite.New("./hostelr.db", sqlite.WithLogger(log))
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  if _, err := store.Seed(ctx); err != nil { ... }

MIGRATION:
  Schema is create-if-absent on New(). There is no versioning and nothing
  is ever dropped.
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/warp/hostelr/hostel"
)

// timestampLayout matches JavaScript's Date.toISOString().
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Store implements hostel.Store using SQLite.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	log *zap.Logger

	clock hostel.Clock
	newID hostel.IDGenerator
}

var _ hostel.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces time.Now for update stamps and seed data.
func WithClock(clock hostel.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator replaces hostel.NewID for rows the store creates itself.
func WithIDGenerator(gen hostel.IDGenerator) Option {
	return func(s *Store) { s.newID = gen }
}

// New opens (or creates) the database at dbPath and ensures the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string, opts ...Option) (*Store, error) {
	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000"
	if dbPath != ":memory:" {
		dsn += "&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	store := &Store{
		db:    db,
		log:   zap.NewNop(),
		newID: hostel.NewID,
	}
	for _, opt := range opts {
		opt(store)
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	store.log.Debug("database opened", zap.String("path", dbPath))
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS tenants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		roomNumber TEXT,
		bedNumber TEXT,
		joinDate TEXT,
		rent INTEGER NOT NULL,
		deposit INTEGER NOT NULL,
		status TEXT NOT NULL,
		lastPayment TEXT,
		nextPaymentDue TEXT,
		address TEXT,
		emergencyContact TEXT,
		photo TEXT,
		createdAt TEXT NOT NULL,
		updatedAt TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rooms (
		id TEXT PRIMARY KEY,
		roomNumber TEXT UNIQUE NOT NULL,
		capacity INTEGER NOT NULL,
		createdAt TEXT NOT NULL,
		updatedAt TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS beds (
		id TEXT PRIMARY KEY,
		roomId TEXT NOT NULL,
		bedNumber TEXT NOT NULL,
		isOccupied INTEGER NOT NULL DEFAULT 0,
		tenantId TEXT,
		monthlyRent INTEGER NOT NULL,
		createdAt TEXT NOT NULL,
		updatedAt TEXT NOT NULL,
		FOREIGN KEY(roomId) REFERENCES rooms(id) ON DELETE CASCADE,
		FOREIGN KEY(tenantId) REFERENCES tenants(id) ON DELETE SET NULL,
		UNIQUE(roomId, bedNumber)
	);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		tenantId TEXT NOT NULL,
		amount INTEGER NOT NULL,
		date TEXT NOT NULL,
		method TEXT NOT NULL,
		notes TEXT,
		createdAt TEXT NOT NULL,
		updatedAt TEXT NOT NULL,
		FOREIGN KEY(tenantId) REFERENCES tenants(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_beds_tenant ON beds(tenantId);
	CREATE INDEX IF NOT EXISTS idx_payments_tenant_date ON payments(tenantId, date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Children first; the cascades would cover it but the order keeps the
	// statements independent of foreign_keys.
	for _, table := range []string{"payments", "beds", "rooms", "tenants"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	s.log.Info("database reset")
	return nil
}

// ForeignKeysEnabled reports the connection's foreign_keys pragma.
func (s *Store) ForeignKeysEnabled(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var on int
	if err := s.db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on); err != nil {
		return false, err
	}
	return on == 1, nil
}

// =============================================================================
// HELPERS
// =============================================================================

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) now() time.Time {
	return s.clock.Now().Truncate(time.Millisecond)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t.UTC()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func dateValue(d hostel.Date) sql.NullString {
	return nullString(d.String())
}

func nullDate(d *hostel.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return dateValue(*d)
}

func parseDate(v sql.NullString) hostel.Date {
	if !v.Valid || v.String == "" {
		return hostel.Date{}
	}
	d, _ := hostel.ParseDate(v.String)
	return d
}

func parseDatePtr(v sql.NullString) *hostel.Date {
	return hostel.DatePtr(parseDate(v))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// translateError maps driver constraint failures onto hostel sentinels.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		msg := sqliteErr.Error()
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			switch {
			case strings.Contains(msg, "rooms.roomNumber"):
				return &hostel.ConstraintError{Kind: hostel.ErrDuplicateRoomNumber, Detail: msg}
			case strings.Contains(msg, "beds.roomId"), strings.Contains(msg, "beds.bedNumber"):
				return &hostel.ConstraintError{Kind: hostel.ErrDuplicateBedNumber, Detail: msg}
			}
		case sqlite3.ErrConstraintForeignKey:
			return &hostel.ConstraintError{Kind: hostel.ErrReferenceNotFound, Detail: msg}
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
