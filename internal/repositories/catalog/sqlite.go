package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog/migrations"
)

const migrationTable = "schema_migrations"

// SQLiteStore keeps catalogs in a SQLite database, one row per part
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite catalog database and applies the embedded migrations.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "run migrations")
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the SQLite handle
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetParts returns a catalog ordered by part id
func (s *SQLiteStore) GetParts(ctx context.Context, input GetPartsInput) (*GetPartsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT definition FROM parts WHERE kind = ? ORDER BY id`,
		input.Kind.String())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s catalog", input.Kind)
	}
	defer func() { _ = rows.Close() }()

	var parts []mechanics.PartDefinition
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, "failed to scan part")
		}
		var part mechanics.PartDefinition
		if err := json.Unmarshal([]byte(raw), &part); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal part")
		}
		parts = append(parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s catalog", input.Kind)
	}

	if len(parts) == 0 {
		return nil, errors.NotFoundf("%s catalog not loaded", input.Kind)
	}
	return &GetPartsOutput{Parts: parts}, nil
}

// PutParts replaces a catalog inside one transaction
func (s *SQLiteStore) PutParts(ctx context.Context, input PutPartsInput) (*PutPartsOutput, error) {
	prepared, err := prepareParts(input.Kind, input.Parts)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM parts WHERE kind = ?`, input.Kind.String()); err != nil {
		return nil, errors.Wrapf(err, "failed to clear %s catalog", input.Kind)
	}

	now := time.Now().UTC().UnixMilli()
	for _, part := range prepared {
		data, err := json.Marshal(part)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal part %d", part.ID)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO parts (kind, id, name, definition, updated_at) VALUES (?, ?, ?, ?, ?)`,
			input.Kind.String(), part.ID, part.Name, string(data), now,
		); err != nil {
			return nil, errors.Wrapf(err, "failed to insert part %d", part.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit catalog")
	}

	slog.InfoContext(ctx, "stored catalog in sqlite",
		"kind", input.Kind,
		"count", len(prepared))

	return &PutPartsOutput{Count: len(prepared)}, nil
}

// applyMigrations executes each embedded .sql file at most once
func applyMigrations(db *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.Exec(fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (name TEXT PRIMARY KEY, applied_at INTEGER NOT NULL)`,
		migrationTable,
	)); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		var count int
		if err := db.QueryRow(
			fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE name = ?`, migrationTable), file,
		).Scan(&count); err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", file, err)
		}
		if _, err := tx.Exec(upMigration(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(
			fmt.Sprintf(`INSERT INTO %s (name, applied_at) VALUES (?, ?)`, migrationTable),
			file, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// upMigration returns the SQL between "-- +migrate Up" and "-- +migrate Down"
func upMigration(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	start := strings.Index(content, up)
	if start == -1 {
		return content
	}
	content = content[start+len(up):]
	if end := strings.Index(content, down); end != -1 {
		content = content[:end]
	}
	return content
}

var _ Store = (*SQLiteStore)(nil)
