// Package storage provides SQLite-based persistence for rendered documents.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no document has the requested name.
var ErrNotFound = errors.New("storage: document not found")

// Store manages the SQLite database connection for the document gallery.
type Store struct {
	db *sql.DB
}

// Document is one saved rendering of a scene.
type Document struct {
	ID        int64
	Name      string
	Width     string
	Height    string
	Bytes     int
	SVG       []byte // empty in List results
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			width TEXT NOT NULL,
			height TEXT NOT NULL,
			bytes INTEGER NOT NULL,
			svg BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_documents_name ON documents(name, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveDocument stores a rendered document under name. Earlier documents
// with the same name are kept as history.
// Returns the ID of the inserted record.
func (s *Store) SaveDocument(name, width, height string, svg []byte) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("storage: cannot save document without a name")
	}
	result, err := s.db.Exec(
		"INSERT INTO documents (name, width, height, bytes, svg) VALUES (?, ?, ?, ?, ?)",
		name, width, height, len(svg), svg,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save document: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Latest returns the most recently saved document called name, including
// its body. Returns ErrNotFound if there is none.
func (s *Store) Latest(name string) (Document, error) {
	var d Document
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, width, height, bytes, svg, created_at
		 FROM documents
		 WHERE name = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		name,
	).Scan(&d.ID, &d.Name, &d.Width, &d.Height, &d.Bytes, &d.SVG, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Document{}, fmt.Errorf("storage: cannot query document: %w", err)
	}

	d.CreatedAt = parseTime(createdAt)
	return d, nil
}

// List retrieves the most recent documents, newest first, without bodies.
func (s *Store) List(limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, width, height, bytes, created_at
		 FROM documents
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var createdAt any
		if err := rows.Scan(&d.ID, &d.Name, &d.Width, &d.Height, &d.Bytes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		d.CreatedAt = parseTime(createdAt)
		docs = append(docs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return docs, nil
}

// Count returns how many documents are saved under name.
func (s *Store) Count(name string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM documents WHERE name = ?", name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count documents: %w", err)
	}
	return n, nil
}

// Clear deletes every document saved under name and reports how many
// were removed.
func (s *Store) Clear(name string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM documents WHERE name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear documents: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared documents: %w", err)
	}
	return n, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
