package repository

import (
	"gorm.io/gorm"
)

// Repository defines the operations shared by all repositories.
type Repository interface {
	Create(entity interface{}) error
	FindByID(id interface{}, entity interface{}) error
	Delete(entity interface{}) error
	Transaction(fn func(tx *gorm.DB) error) error
}

// BaseRepository implements the shared operations on top of GORM.
type BaseRepository struct {
	DB *gorm.DB
}

// NewBaseRepository creates a new base repository.
func NewBaseRepository(db *gorm.DB) *BaseRepository {
	return &BaseRepository{DB: db}
}

// Create inserts a new entity.
func (r *BaseRepository) Create(entity interface{}) error {
	return r.DB.Create(entity).Error
}

// FindByID loads an entity by primary key.
func (r *BaseRepository) FindByID(id interface{}, entity interface{}) error {
	return r.DB.First(entity, id).Error
}

// Delete soft-deletes an entity.
func (r *BaseRepository) Delete(entity interface{}) error {
	return r.DB.Delete(entity).Error
}

// Transaction runs operations in a transaction.
func (r *BaseRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.DB.Transaction(fn)
}
