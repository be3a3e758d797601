// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"reachout/config"
	"reachout/database"

	"gorm.io/gorm"
)

// New returns a fresh, migrated in-memory database closed at the end of the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{DBDriver: "sqlite", DBName: ":memory:"})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
