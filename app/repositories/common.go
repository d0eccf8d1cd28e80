package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateNickname = errors.New("nickname already taken")
	ErrInvalidDelta      = errors.New("comment count delta must be +1 or -1")
)

// Open opens (or creates) the SQLite database at path. An empty path opens an
// in-memory database for tests. The connection pool is capped at one
// connection: modernc/sqlite serializes writers anyway and a single
// connection keeps in-memory databases from silently forking per-conn.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema if it does not exist. Email and nickname
// uniqueness lives here: a constraint violation, not the application-level
// pre-check, is the authoritative duplicate signal.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			nickname TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			profile_img TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS post (
			post_id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			image TEXT,
			view INTEGER NOT NULL DEFAULT 0,
			like_count INTEGER NOT NULL DEFAULT 0,
			comment_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS comment (
			comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS likes (
			post_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			PRIMARY KEY (post_id, user_id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}
	return nil
}

// mapConstraintErr translates a UNIQUE-constraint failure on the users table
// into the matching sentinel error. Other errors pass through unchanged.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "users.email"):
		return ErrDuplicateEmail
	case strings.Contains(msg, "users.nickname"):
		return ErrDuplicateNickname
	}
	return err
}

// nullable converts an optional string into its sql.NullString form so that
// COALESCE-based partial updates can preserve existing column values.
func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
