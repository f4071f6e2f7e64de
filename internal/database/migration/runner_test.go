package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrationsOrdersByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V10__add_ratings.sql", "CREATE TABLE ratings ();")
	writeMigration(t, dir, "V2__add_skills.sql", "CREATE TABLE skills ();")
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE users ();")
	writeMigration(t, dir, "notes.txt", "ignore me")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	for i, want := range []int64{1, 2, 10} {
		if migs[i].Version != want {
			t.Fatalf("position %d: expected version %d, got %d", i, want, migs[i].Version)
		}
	}
	if migs[0].Name != "init" {
		t.Fatalf("unexpected name: %q", migs[0].Name)
	}
}

func TestLoadMigrationsRejectsDuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE users ();")
	writeMigration(t, dir, "V1__init_again.sql", "CREATE TABLE skills ();")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrationsRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__init.sql", "   \n  ")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected empty file error")
	}
}

func TestLoadMigrationsMissingDir(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if migs != nil {
		t.Fatalf("expected nil migrations for missing dir")
	}
}

func TestChecksumStableAcrossLoads(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE users ();")

	first, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first[0].Checksum != second[0].Checksum {
		t.Fatalf("checksum not stable")
	}
}
