package testsupport

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"moviegenre/internal/history"
)

// MustOpenHistory opens a journal in a temp directory and closes it on cleanup.
func MustOpenHistory(t testing.TB) *history.Store {
	t.Helper()

	store, err := history.Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// BumpSchemaVersion rewrites the schema version of the journal at path so
// the next Open sees a mismatch.
func BumpSchemaVersion(t testing.TB, path string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("UPDATE schema_version SET version = version + 1"); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
}
