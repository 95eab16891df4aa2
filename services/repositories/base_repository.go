package repositories

import (
	"gorm.io/gorm"
)

// BaseRepository carries the shared gorm handle for the per-aggregate
// repositories.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}
