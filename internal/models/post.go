package models

// Post is a bulletin-board entry with an optional uploaded attachment.
// FilePath is the public path of the stored upload, empty when none was
// attached. An edit that carries no replacement upload keeps the old path.
type Post struct {
	Base
	Title    string `gorm:"not null"`
	Content  string `gorm:"type:text;not null"`
	Author   string `gorm:"not null"`
	FilePath string
}
