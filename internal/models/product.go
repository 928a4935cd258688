package models

// Product is a marketplace listing. Author is the username that created it,
// or "Guest" for anonymous submissions.
type Product struct {
	Base
	Name        string  `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Author      string  `gorm:"not null"`
}
