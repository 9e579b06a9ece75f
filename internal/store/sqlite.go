// internal/store/sqlite.go
//
// SQLite word database.
// Responsibilities:
//   - Preparing a database file: schema migrations from assets/sql (recorded
//     in _migrations) and seeding the dictionary when it is empty.
//   - One connection per operation: every call opens the file, runs its
//     statement and closes it again.
//
// Reads and writes open the file with mode=rw, so a missing database is
// reported as ErrUnavailable rather than silently created empty.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-desktop/assets"
)

// SQLite implements Words on top of a database file.
type SQLite struct {
	path string
}

// NewSQLite returns a store for the database at path. Nothing is opened
// until the first operation.
func NewSQLite(path string) *SQLite {
	return &SQLite{path: path}
}

// Path is the database file location.
func (s *SQLite) Path() string { return s.path }

// dsn builds a mattn/go-sqlite3 URI with a busy timeout.
func dsn(path, mode string) string {
	return "file:" + path + "?mode=" + mode + "&_busy_timeout=5000"
}

// withDB opens the database, runs fn and closes it. Faults other than
// sql.ErrNoRows are wrapped in ErrUnavailable.
func (s *SQLite) withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	db, err := sql.Open("sqlite3", dsn(s.path, "rw"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer db.Close()

	if err := fn(db); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrEmptyPool) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// RandomWord selects one word at random from pool.
func (s *SQLite) RandomWord(ctx context.Context, pool Pool) (string, error) {
	table, err := pool.table()
	if err != nil {
		return "", err
	}
	var w string
	err = s.withDB(ctx, func(db *sql.DB) error {
		err := db.QueryRowContext(ctx, `SELECT word FROM `+table+` ORDER BY RANDOM() LIMIT 1`).Scan(&w)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEmptyPool
		}
		return err
	})
	return strings.ToLower(w), err
}

// HasWord reports whether word is stored in pool. Stored words are
// lowercase, so word is lowercased before the indexed lookup.
func (s *SQLite) HasWord(ctx context.Context, pool Pool, word string) (bool, error) {
	table, err := pool.table()
	if err != nil {
		return false, err
	}
	var found bool
	err = s.withDB(ctx, func(db *sql.DB) error {
		var one int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM `+table+` WHERE word=? LIMIT 1`, strings.ToLower(word)).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

// AddCustom inserts word into user_words, ignoring duplicates.
func (s *SQLite) AddCustom(ctx context.Context, word string) (bool, error) {
	var added bool
	err := s.withDB(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO user_words (word) VALUES (?)`, word)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		added = n > 0
		return err
	})
	return added, err
}

// DeleteCustom removes word from user_words.
func (s *SQLite) DeleteCustom(ctx context.Context, word string) (bool, error) {
	var deleted bool
	err := s.withDB(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, `DELETE FROM user_words WHERE word=?`, word)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		deleted = n > 0
		return err
	})
	return deleted, err
}

// ListCustom returns all custom words in alphabetical order.
func (s *SQLite) ListCustom(ctx context.Context) ([]string, error) {
	out := []string{}
	err := s.withDB(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, `SELECT word FROM user_words ORDER BY word ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var w string
			if err := rows.Scan(&w); err != nil {
				return err
			}
			out = append(out, w)
		}
		return rows.Err()
	})
	if err != nil {
		return []string{}, err
	}
	return out, nil
}

// Count returns the number of rows in pool.
func (s *SQLite) Count(ctx context.Context, pool Pool) (int, error) {
	table, err := pool.table()
	if err != nil {
		return 0, err
	}
	var n int
	err = s.withDB(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+table).Scan(&n)
	})
	return n, err
}

/* ------------------------------ preparation ------------------------------ */

// Prepare creates (if missing) and migrates the database at path, then
// loads seed into the dictionary if it holds no words yet.
//
//   - Ensures the parent directory exists for relative paths (e.g. ./data/words.db).
//   - Configures WAL journaling.
//   - Seeding runs inside a single transaction.
func Prepare(ctx context.Context, path string, seed []string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn(path, "rwc"))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(ctx, db, assets.Migrations()); err != nil {
		return nil, err
	}
	if err := seedDictionary(ctx, db, seed); err != nil {
		return nil, err
	}
	return NewSQLite(path), nil
}

// migrate applies *.sql files from migrations in lexical order.
//
// - Uses a _migrations table to track applied files.
// - Each file runs inside a dedicated transaction.
func migrate(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// seedDictionary inserts seed into words when the table is empty.
func seedDictionary(ctx context.Context, db *sql.DB, seed []string) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n); err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if n > 0 || len(seed) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word) VALUES (?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, w := range seed {
		if _, err := stmt.ExecContext(ctx, strings.ToLower(w)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed %q: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Info().Int("words", len(seed)).Msg("dictionary seeded")
	return nil
}
