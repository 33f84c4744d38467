package store

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the process-lifetime SQLite catalog that backs the fixtures.
// Nothing is written to disk.
type DB struct {
	*sql.DB
}

// OpenMemory creates a named in-memory database. The name keeps separate
// catalogs (e.g. in tests) from sharing state.
func OpenMemory(name string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", url.PathEscape(name))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A memory database lives as long as its last connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &DB{db}, nil
}
