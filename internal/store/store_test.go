// store_test.go provides shared test helpers for store tests. Unit tests
// run against go-sqlmock; integration tests are skipped if PostgreSQL is
// not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"sitekit/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "sitekit")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "sitekit")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(testDSN())
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// mockDB returns a sqlmock-backed *sql.DB and verifies all expectations
// were met when the test finishes.
func mockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sql expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

// cleanGenerations removes test generations by template ID. Call in t.Cleanup().
func cleanGenerations(t *testing.T, db *sql.DB, templateIDs ...string) {
	t.Helper()
	for _, id := range templateIDs {
		db.Exec("DELETE FROM generations WHERE template_id = $1", id)
	}
}
