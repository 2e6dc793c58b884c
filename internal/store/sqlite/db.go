package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Open opens the SQLite database at path, creating its parent directory.
// Every connection gets foreign keys and a busy timeout; the pool is limited
// to one connection because SQLite serialises writers at the file level anyway.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}

// Migrate runs the idempotent schema statements.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS persons (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			birth_date TEXT NOT NULL,
			email TEXT NOT NULL,
			hashed_password TEXT NOT NULL,
			gender TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS addresses (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL UNIQUE,
			street TEXT NOT NULL,
			house_number TEXT NOT NULL,
			postal_code TEXT NOT NULL,
			city TEXT NOT NULL,
			FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS travel_preferences (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL UNIQUE,
			city_trip BOOLEAN NOT NULL DEFAULT 0,
			beach_holiday BOOLEAN NOT NULL DEFAULT 0,
			cruise BOOLEAN NOT NULL DEFAULT 0,
			mountains BOOLEAN NOT NULL DEFAULT 0,
			no_preference BOOLEAN NOT NULL DEFAULT 0,
			FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS meta_preferences (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL UNIQUE,
			smoking BOOLEAN NOT NULL DEFAULT 0,
			drinking BOOLEAN NOT NULL DEFAULT 0,
			religious BOOLEAN NOT NULL DEFAULT 0,
			FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS interests (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL UNIQUE,
			sport BOOLEAN NOT NULL DEFAULT 0,
			board_games BOOLEAN NOT NULL DEFAULT 0,
			cooking BOOLEAN NOT NULL DEFAULT 0,
			club BOOLEAN NOT NULL DEFAULT 0,
			FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS verifications (
			id TEXT PRIMARY KEY,
			person_id TEXT NOT NULL UNIQUE,
			passport_number TEXT NOT NULL,
			video_auth_bonus BOOLEAN NOT NULL DEFAULT 0,
			FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
		);`,
		// participant_key is the sorted, comma joined participant set.
		`CREATE TABLE IF NOT EXISTS chats (
			id TEXT PRIMARY KEY,
			participant_key TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS chat_participants (
			chat_id TEXT NOT NULL,
			person_id TEXT NOT NULL,
			PRIMARY KEY (chat_id, person_id),
			FOREIGN KEY (chat_id) REFERENCES chats(id) ON DELETE CASCADE,
			FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			chat_id TEXT NOT NULL,
			sender_id TEXT NOT NULL,
			FOREIGN KEY (chat_id) REFERENCES chats(id) ON DELETE CASCADE,
			FOREIGN KEY (sender_id) REFERENCES persons(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_participants_person ON chat_participants(person_id);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_chat ON messages(chat_id);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages(sender_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return "?" + strings.Repeat(",?", n-1)
}

func stringArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
