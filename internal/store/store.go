package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/store/migrations"
	"github.com/shadeworks/shade/internal/themectx"
)

// timeLayout is fixed width so created_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store keeps the theme change history in SQLite.
// It implements domain.ThemeEventStore.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the database at path and applies pending
// migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB wraps an already migrated connection. Used by tests.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Path returns the database file, or "" for a wrapped connection.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configureSQLite lets a second shade process wait for the writer instead of
// failing with SQLITE_BUSY.
func configureSQLite(db *sql.DB, path string) error {
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return err
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
		return nil
	}
	_, err := db.Exec("PRAGMA journal_mode = WAL")
	return err
}

// setDBPermissions restricts the database and its WAL/SHM files to the owner.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Insert records a theme change and returns its ID. A zero At is stamped
// with the current time.
func (s *Store) Insert(event domain.ThemeEvent) (int64, error) {
	if event.Session == "" {
		return 0, fmt.Errorf("store: theme event without session")
	}
	at := event.At
	if at.IsZero() {
		at = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO theme_events (session, from_mode, to_mode, origin_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		event.Session,
		event.From.String(),
		event.To.String(),
		int(event.Origin),
		at.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// List returns events matching filter, newest first.
func (s *Store) List(filter domain.ThemeEventFilter) ([]domain.ThemeEvent, error) {
	query := `
		SELECT id, session, from_mode, to_mode, origin_id, created_at
		FROM theme_events
	`

	var (
		clauses []string
		args    []any
	)

	if filter.Session != "" {
		clauses = append(clauses, "session = ?")
		args = append(args, filter.Session)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	// id breaks ties between events stamped in the same instant
	query += " ORDER BY created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.ThemeEvent
	for rows.Next() {
		e, err := scanThemeEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// CountBySession returns how many changes were recorded for a session.
func (s *Store) CountBySession(session string) (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM theme_events WHERE session = ?", session).Scan(&n)
	return n, err
}

func scanThemeEvent(rows *sql.Rows) (domain.ThemeEvent, error) {
	var (
		e        domain.ThemeEvent
		from, to string
		originID int
		ts       string
	)

	if err := rows.Scan(&e.ID, &e.Session, &from, &to, &originID, &ts); err != nil {
		return domain.ThemeEvent{}, err
	}

	var err error
	if e.From, err = themectx.ParseMode(from); err != nil {
		return domain.ThemeEvent{}, fmt.Errorf("event %d: %w", e.ID, err)
	}
	if e.To, err = themectx.ParseMode(to); err != nil {
		return domain.ThemeEvent{}, fmt.Errorf("event %d: %w", e.ID, err)
	}
	if e.At, err = time.Parse(timeLayout, ts); err != nil {
		return domain.ThemeEvent{}, fmt.Errorf("event %d: %w", e.ID, err)
	}
	e.Origin = domain.Origin(originID)

	return e, nil
}

var _ domain.ThemeEventStore = (*Store)(nil)
