package repository

import (
	"gorm.io/gorm"
)

// Factory manages all repositories.
type Factory struct {
	GenerationRepository GenerationRepository
}

// NewRepositoryFactory creates a repository factory with all repositories.
func NewRepositoryFactory(db *gorm.DB) *Factory {
	return &Factory{
		GenerationRepository: NewGenerationRepository(db),
	}
}
