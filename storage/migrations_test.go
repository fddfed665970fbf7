package storage

import (
	"database/sql"
	"testing"
)

func TestMigrations(t *testing.T) {
	tempDir := t.TempDir()

	store := NewSQLiteStorage(tempDir)
	err := store.Initialize()
	if err != nil {
		t.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Test getting database version
	version, err := store.GetDatabaseVersion()
	if err != nil {
		t.Fatalf("Failed to get database version: %v", err)
	}

	if version < 1 {
		t.Errorf("Expected database version >= 1, got %d", version)
	}

	// Test that migrations created the titles table
	db, err := store.GetDB()
	if err != nil {
		t.Fatalf("Failed to get database: %v", err)
	}

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='titles'").Scan(&tableName)
	if err != nil {
		t.Fatalf("Titles table was not created: %v", err)
	}

	if tableName != "titles" {
		t.Errorf("Expected table name 'titles', got '%s'", tableName)
	}

	// Test running migrations again (should be idempotent)
	err = store.RunMigrations()
	if err != nil {
		t.Fatalf("Failed to run migrations again: %v", err)
	}

	newVersion, err := store.GetDatabaseVersion()
	if err != nil {
		t.Fatalf("Failed to get database version after re-running migrations: %v", err)
	}

	if newVersion < version {
		t.Errorf("Database version went backwards: %d -> %d", version, newVersion)
	}
}

func TestMigrationManager(t *testing.T) {
	// Create in-memory database for testing
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	defer db.Close()

	migrationManager := NewMigrationManager(db)
	err = migrationManager.Initialize()
	if err != nil {
		t.Fatalf("Failed to initialize migration manager: %v", err)
	}

	version, err := migrationManager.Version()
	if err != nil {
		t.Fatalf("Failed to get initial version: %v", err)
	}

	if version != 0 {
		t.Errorf("Expected initial version 0, got %d", version)
	}

	err = migrationManager.Up()
	if err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	version, err = migrationManager.Version()
	if err != nil {
		t.Fatalf("Failed to get version after migrations: %v", err)
	}

	if version < 1 {
		t.Errorf("Expected version >= 1 after migrations, got %d", version)
	}

	// Test rollback
	err = migrationManager.Down()
	if err != nil {
		t.Fatalf("Failed to rollback migration: %v", err)
	}

	newVersion, err := migrationManager.Version()
	if err != nil {
		t.Fatalf("Failed to get version after rollback: %v", err)
	}

	if newVersion >= version {
		t.Errorf("Expected version to decrease after rollback: %d -> %d", version, newVersion)
	}
}
