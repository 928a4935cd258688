package store

import (
	"errors"

	"gorm.io/gorm"

	"tradeboard/internal/httperr"
	"tradeboard/internal/models"
)

// Products persists Product rows. Authorization is the caller's job;
// Update and Delete are unconditional here.
type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products { return &Products{db: db} }

// Create inserts p and fills in its assigned ID.
func (s *Products) Create(p *models.Product) error {
	if err := s.db.Create(p).Error; err != nil {
		return httperr.NewStorage("could not create product", err)
	}
	return nil
}

// ByID fetches one product, NotFound when absent.
func (s *Products) ByID(id uint) (*models.Product, error) {
	var p models.Product
	err := s.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NewNotFound("product not found")
	}
	if err != nil {
		return nil, httperr.NewStorage("could not load product", err)
	}
	return &p, nil
}

// Update saves the full row.
func (s *Products) Update(p *models.Product) error {
	if err := s.db.Save(p).Error; err != nil {
		return httperr.NewStorage("could not update product", err)
	}
	return nil
}

// Delete removes the row, NotFound when it was already gone.
func (s *Products) Delete(id uint) error {
	res := s.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return httperr.NewStorage("could not delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NewNotFound("product not found")
	}
	return nil
}

// Search returns one page of products whose name or description contain
// query, with the total page count for the full match set.
func (s *Products) Search(query string, page int) (Page[models.Product], error) {
	return searchPage[models.Product](s.db, "name LIKE ? OR description LIKE ?", query, page)
}

// Reset drops and recreates the products table (admin bulk delete).
func (s *Products) Reset() error {
	if err := s.db.Migrator().DropTable(&models.Product{}); err != nil {
		return httperr.NewStorage("could not reset products", err)
	}
	if err := s.db.AutoMigrate(&models.Product{}); err != nil {
		return httperr.NewStorage("could not recreate products", err)
	}
	return nil
}
