package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/rgehrsitz/fvgo/internal/domain"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore is a Store backed by a single SQLite file
type SQLiteStore struct {
	mu  sync.RWMutex
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the database at path and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}
	// m.Close would close db as well; the store owns it
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migration instance creation failed: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Save stores a computed calculation under a new id
func (s *SQLiteStore) Save(ctx context.Context, name string, in domain.Input, res domain.Result) (*Record, error) {
	if in == nil || res == nil {
		return nil, fmt.Errorf("input and result are required")
	}
	if in.Kind() != res.Kind() {
		return nil, fmt.Errorf("result kind %s does not match input kind %s", res.Kind(), in.Kind())
	}
	if name == "" {
		name = in.Kind().Title()
	}

	inputs, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inputs: %w", err)
	}
	result, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	rec := &Record{
		ID:        uuid.NewString(),
		Kind:      in.Kind(),
		Name:      name,
		Timestamp: s.now().UTC(),
		Inputs:    in,
		Result:    res,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO calculations (id, kind, name, created_at, inputs, result) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), rec.Name, rec.Timestamp.UnixNano(), string(inputs), string(result))
	if err != nil {
		return nil, fmt.Errorf("failed to save calculation: %w", err)
	}
	return rec, nil
}

// List returns every saved calculation, newest first
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, name, created_at, inputs, result FROM calculations ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Get returns the record with id, or ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, name, created_at, inputs, result FROM calculations WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// Delete removes the record with id, or returns ErrNotFound
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM calculations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete calculation %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes every saved calculation
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM calculations`); err != nil {
		return fmt.Errorf("failed to clear calculations: %w", err)
	}
	return nil
}

// Close releases the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		id, kindName, name, inputs, result string
		created                            int64
	)
	if err := sc.Scan(&id, &kindName, &name, &created, &inputs, &result); err != nil {
		return nil, err
	}

	kind, err := domain.ParseKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", id, err)
	}
	in, err := domain.DecodeInput(kind, func(v any) error { return json.Unmarshal([]byte(inputs), v) })
	if err != nil {
		return nil, fmt.Errorf("record %s: failed to decode inputs: %w", id, err)
	}
	res, err := domain.DecodeResult(kind, func(v any) error { return json.Unmarshal([]byte(result), v) })
	if err != nil {
		return nil, fmt.Errorf("record %s: failed to decode result: %w", id, err)
	}

	return &Record{
		ID:        id,
		Kind:      kind,
		Name:      name,
		Timestamp: time.Unix(0, created).UTC(),
		Inputs:    in,
		Result:    res,
	}, nil
}

var _ Store = (*SQLiteStore)(nil)
