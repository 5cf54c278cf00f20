package repositories

import (
	"gorm.io/gorm"
	"solene-digital.backend/internal/domain/repositories"
)

// Storage implements repositories.Storage on top of GORM. It works with any
// dialect GORM supports; production uses postgres and tests use sqlite.
type Storage struct {
	db *gorm.DB
}

var _ repositories.Storage = (*Storage)(nil)

func NewStorage(db *gorm.DB) *Storage {
	return &Storage{db: db}
}
