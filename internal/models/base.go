package models

import "time"

// Base holds the columns shared by all record tables. IDs are assigned by
// the database and never reused after deletion.
type Base struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
