package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/store"
	"github.com/shadeworks/shade/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedEvents inserts a slice of events into the store.
func SeedEvents(t *testing.T, s domain.ThemeEventStore, events []domain.ThemeEvent) {
	t.Helper()

	for _, event := range events {
		_, err := s.Insert(event)
		require.NoError(t, err, "failed to seed event: %+v", event)
	}
}
