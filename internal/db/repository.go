package db

import (
	"gorm.io/gorm"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn inside a single atomic transaction
func (r *Repository) Transaction(fn func(tx *gorm.DB) error) error {
	return Translate(r.db.Transaction(fn))
}

// Session returns the underlying gorm handle for read-model queries
func (r *Repository) Session() *gorm.DB {
	return r.db
}
