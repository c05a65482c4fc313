package store

import (
	"database/sql"
	"time"

	_ "github.com/glebarez/sqlite"
)

// Result kinds
const (
	KindCommand = "command"
	KindPipe    = "pipe"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}
	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS widget_results (
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (kind, name)
	);
	`

	_, err := db.Exec(query)
	return err
}

// SaveResult saves or replaces the last known value of a widget
func (db *DB) SaveResult(kind, name, value string) error {
	query := `
	INSERT INTO widget_results (name, kind, value, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(kind, name) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
	`

	_, err := db.Exec(query, name, kind, value, time.Now().Unix())
	return err
}

// LoadResults returns all stored values of a kind keyed by widget name
func (db *DB) LoadResults(kind string) (map[string]string, error) {
	rows, err := db.Query("SELECT name, value FROM widget_results WHERE kind = ?", kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		results[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Prune deletes results older than the cutoff and returns how many were removed
func (db *DB) Prune(before time.Time) (int64, error) {
	res, err := db.Exec("DELETE FROM widget_results WHERE updated_at < ?", before.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
