package models

import "golang.org/x/crypto/bcrypt"

// AdminUsername is the fixed superuser name. A session logged in under it
// may edit or delete any record and run the bulk resets.
const AdminUsername = "admin"

// GuestAuthor is recorded as the author of records created without a session.
const GuestAuthor = "Guest"

// User is a registered account.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// HashPassword turns a plain password into a bcrypt hash.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
