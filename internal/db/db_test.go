package db_test

import (
	"path/filepath"
	"testing"

	"tradeboard/internal/db"
	"tradeboard/internal/models"
)

func TestMigrateSeedsAdminOnce(t *testing.T) {
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// running migrations twice must not fail or duplicate the seed
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var admins []models.User
	if err := gdb.Where("username = ?", models.AdminUsername).Find(&admins).Error; err != nil {
		t.Fatal(err)
	}
	if len(admins) != 1 {
		t.Fatalf("want exactly one admin row, got %d", len(admins))
	}
	if !models.CheckPassword(admins[0].PasswordHash, "admin") {
		t.Error("admin seed password does not verify")
	}
}
