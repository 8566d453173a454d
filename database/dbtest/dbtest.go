// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"student-manager/config"
	"student-manager/database"
)

// NewProvider returns a provider for a migrated, empty sqlite file that is
// removed when the test ends.
func NewProvider(t testing.TB) *database.Provider {
	t.Helper()

	path := filepath.Join(t.TempDir(), "students.db")
	p, err := database.NewProvider(
		config.Credentials{Database: path},
		database.Options{Driver: database.DriverSQLite},
		nil,
	)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if err := p.Migrate(context.Background(), false); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return p
}
