package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const defaultLimit = 50

type Store struct {
	db *sql.DB
}

var _ Repository = (*Store)(nil)

func NewStore(dbPath string, migrationsFS fs.FS) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create journal directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("can not open journal: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with journal: %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up): %w", err)
	}

	return nil
}

// RecordCall stores call, assigning an ID and timestamp when they are unset.
func (s *Store) RecordCall(call *ToolCall) error {
	if call.ID == "" {
		call.ID = uuid.NewString()
	}
	if call.CreatedAt == 0 {
		call.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.Exec(`
		INSERT INTO tool_calls (id, tool, arguments, success, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, call.ID, call.Tool, call.Arguments, call.Success, call.Error, call.DurationMS, call.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record tool call: %w", err)
	}
	return nil
}

// ListCalls returns the most recent calls first.
func (s *Store) ListCalls(filter CallFilter) ([]*ToolCall, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := `
		SELECT id, tool, arguments, success, error, duration_ms, created_at
		FROM tool_calls`
	args := []any{}
	if filter.Tool != "" {
		query += ` WHERE tool = ?`
		args = append(args, filter.Tool)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tool calls: %w", err)
	}
	defer rows.Close()

	var calls []*ToolCall
	for rows.Next() {
		call := &ToolCall{}
		if err := scanCall(rows, call); err != nil {
			return nil, fmt.Errorf("failed to scan tool call: %w", err)
		}
		calls = append(calls, call)
	}

	return calls, rows.Err()
}

func (s *Store) GetCall(id string) (*ToolCall, error) {
	row := s.db.QueryRow(`
		SELECT id, tool, arguments, success, error, duration_ms, created_at
		FROM tool_calls
		WHERE id = ?
	`, id)

	call := &ToolCall{}
	if err := scanCall(row, call); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tool call %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query tool call %s: %w", id, err)
	}
	return call, nil
}

// ClearCalls deletes every entry and returns how many were removed.
func (s *Store) ClearCalls() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM tool_calls`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear journal: %w", err)
	}
	return result.RowsAffected()
}

// PruneCalls deletes entries recorded before the given time.
func (s *Store) PruneCalls(before time.Time) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM tool_calls WHERE created_at < ?`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCall(row scanner, call *ToolCall) error {
	var errText sql.NullString
	err := row.Scan(
		&call.ID, &call.Tool, &call.Arguments,
		&call.Success, &errText, &call.DurationMS,
		&call.CreatedAt,
	)
	call.Error = errText.String
	return err
}
