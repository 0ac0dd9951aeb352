package storage

import (
	"io/fs"
	"strings"
	"testing"

	daymark "github.com/claude/daymark"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// TestEmbeddedMigrations verifies the embedded migration set is readable by
// the iofs source driver, so migrating works regardless of the working
// directory the binary starts in.
func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(daymark.MigrationsFS, "migrations")
	if err != nil {
		t.Fatalf("iofs source: %v", err)
	}
	defer src.Close()

	if _, err := src.First(); err != nil {
		t.Fatalf("no first migration: %v", err)
	}
}

// TestMigrationPairs verifies every up migration ships with a matching down.
func TestMigrationPairs(t *testing.T) {
	entries, err := fs.ReadDir(daymark.MigrationsFS, "migrations")
	if err != nil {
		t.Fatalf("reading migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migration files embedded")
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}
	for name := range names {
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
		if !names[down] {
			t.Errorf("%s has no matching down migration", name)
		}
	}
}
