package store

import (
	"errors"

	"gorm.io/gorm"

	"tradeboard/internal/httperr"
	"tradeboard/internal/models"
)

// Posts persists Post rows; same contract as Products.
type Posts struct {
	db *gorm.DB
}

func NewPosts(db *gorm.DB) *Posts { return &Posts{db: db} }

func (s *Posts) Create(p *models.Post) error {
	if err := s.db.Create(p).Error; err != nil {
		return httperr.NewStorage("could not create post", err)
	}
	return nil
}

func (s *Posts) ByID(id uint) (*models.Post, error) {
	var p models.Post
	err := s.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NewNotFound("post not found")
	}
	if err != nil {
		return nil, httperr.NewStorage("could not load post", err)
	}
	return &p, nil
}

func (s *Posts) Update(p *models.Post) error {
	if err := s.db.Save(p).Error; err != nil {
		return httperr.NewStorage("could not update post", err)
	}
	return nil
}

func (s *Posts) Delete(id uint) error {
	res := s.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return httperr.NewStorage("could not delete post", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NewNotFound("post not found")
	}
	return nil
}

// Search matches query against title and content.
func (s *Posts) Search(query string, page int) (Page[models.Post], error) {
	return searchPage[models.Post](s.db, "title LIKE ? OR content LIKE ?", query, page)
}

// Reset drops and recreates the posts table (admin bulk delete).
func (s *Posts) Reset() error {
	if err := s.db.Migrator().DropTable(&models.Post{}); err != nil {
		return httperr.NewStorage("could not reset posts", err)
	}
	if err := s.db.AutoMigrate(&models.Post{}); err != nil {
		return httperr.NewStorage("could not recreate posts", err)
	}
	return nil
}
