package db

import (
	"errors"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tradeboard/internal/models"
)

// Open connects to the database named by dsn. Postgres DSNs use the
// postgres driver; anything else is treated as a sqlite file path.
func Open(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}
	return gorm.Open(dial, &gorm.Config{})
}

// Migrate creates the tables and seeds the admin account. Re-running it
// against an initialized database is a no-op.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.User{}, &models.Product{}, &models.Post{}); err != nil {
		return err
	}
	return seedAdmin(gdb)
}

func seedAdmin(gdb *gorm.DB) error {
	var cnt int64
	if err := gdb.Model(&models.User{}).Where("username = ?", models.AdminUsername).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	hash, err := models.HashPassword(models.AdminUsername)
	if err != nil {
		return err
	}
	err = gdb.Create(&models.User{Username: models.AdminUsername, PasswordHash: hash}).Error
	if err != nil && isDuplicate(err) {
		// another process seeded it first
		return nil
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key")
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	return err != nil && isDuplicate(err)
}
