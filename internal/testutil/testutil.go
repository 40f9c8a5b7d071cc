// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"schoolwidget/internal/db"
	"schoolwidget/internal/models"
	"schoolwidget/internal/responder"
	"schoolwidget/internal/widget"
)

// TestDB creates a test database connection and returns a cleanup function.
// Uses the TEST_DATABASE_URL environment variable; the test is skipped when it
// is not set so the suite runs without Postgres.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	cleanupTestData(ctx, database.Pool)

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM keyword_lookups")
}

// NewWidget returns a widget over the default answer table and school info.
func NewWidget(t *testing.T, opts ...widget.Option) *widget.Widget {
	t.Helper()
	school := models.DefaultSchoolInfo()
	return widget.New(responder.New(responder.DefaultTable(school)), school, opts...)
}
