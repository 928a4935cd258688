package store

import (
	"errors"

	"gorm.io/gorm"

	"tradeboard/internal/db"
	"tradeboard/internal/httperr"
	"tradeboard/internal/models"
)

// Users persists registered accounts.
type Users struct {
	db *gorm.DB
}

func NewUsers(gdb *gorm.DB) *Users { return &Users{db: gdb} }

// Create inserts a new account, Conflict when the username is taken.
func (s *Users) Create(u *models.User) error {
	err := s.db.Create(u).Error
	if db.IsDuplicate(err) {
		return httperr.NewConflict("username already exists", err)
	}
	if err != nil {
		return httperr.NewStorage("could not create user", err)
	}
	return nil
}

// ByUsername fetches one account, NotFound when absent.
func (s *Users) ByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NewNotFound("user not found")
	}
	if err != nil {
		return nil, httperr.NewStorage("could not load user", err)
	}
	return &u, nil
}
