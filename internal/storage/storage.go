package storage

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const dayLayout = "2006-01-02"

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS reflections (
	day TEXT PRIMARY KEY,
	body TEXT NOT NULL DEFAULT '',
	updated_at TEXT NOT NULL DEFAULT ''
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}
	// Databases created before updated_at existed.
	return s.ensureColumns(map[string]map[string]string{
		"records": {
			"updated_at": "ALTER TABLE records ADD COLUMN updated_at TEXT NOT NULL DEFAULT '';",
		},
		"reflections": {
			"updated_at": "ALTER TABLE reflections ADD COLUMN updated_at TEXT NOT NULL DEFAULT '';",
		},
	})
}

func (s *Store) ensureColumns(required map[string]map[string]string) error {
	for table, cols := range required {
		existing, err := s.columns(table)
		if err != nil {
			return err
		}
		for col, alter := range cols {
			if _, ok := existing[col]; ok {
				continue
			}
			if _, err := s.db.Exec(alter); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) columns(table string) (map[string]struct{}, error) {
	rows, err := s.db.Query(`PRAGMA table_info(` + table + `);`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	existing := map[string]struct{}{}
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		existing[name] = struct{}{}
	}
	return existing, rows.Err()
}

// Get returns the record stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?;`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Put(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`, key, value, now)
	return err
}

func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM records WHERE key = ?;`, key)
	return err
}

// SaveReflection stores the review note for the calendar day of day.
// An empty body removes it.
func (s *Store) SaveReflection(day time.Time, body string) error {
	key := day.Format(dayLayout)
	if strings.TrimSpace(body) == "" {
		_, err := s.db.Exec(`DELETE FROM reflections WHERE day = ?;`, key)
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO reflections (day, body, updated_at) VALUES (?, ?, ?)
ON CONFLICT(day) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at;`, key, body, now)
	return err
}

// Reflection returns the note for day, or "" when none was written.
func (s *Store) Reflection(day time.Time) (string, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM reflections WHERE day = ?;`, day.Format(dayLayout)).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return body, err
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
