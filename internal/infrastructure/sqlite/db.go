// Package sqlite provides the SQLite-backed persistence layer for the
// utterance history.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/kestrelab/talkboard/internal/log"
)

// schema is applied on every open; idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS utterances (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guid TEXT NOT NULL UNIQUE,
	category_id TEXT NOT NULL,
	image_loc TEXT NOT NULL,
	caption TEXT NOT NULL,
	spoken_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_utterances_spoken_at ON utterances(spoken_at);
CREATE INDEX IF NOT EXISTS idx_utterances_category ON utterances(category_id);
`

// DB wraps the history database connection.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (creating if needed) the history database at path and ensures
// the schema exists. Parent directories are created with 0700.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	log.Debug(log.CatDB, "Opening history database", "path", path)
	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	log.Info(log.CatDB, "Connected to history database", "path", path)
	return &DB{conn: conn, path: path}, nil
}

// Utterances returns the utterance repository backed by this database.
func (d *DB) Utterances() *utteranceRepository {
	return newUtteranceRepository(d.conn)
}

// Conn returns the underlying database connection.
func (d *DB) Conn() *sql.DB {
	return d.conn
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}
