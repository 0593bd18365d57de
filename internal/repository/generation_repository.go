package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contentwerk/seo-engine/internal/models"
)

// GenerationRepository manages persisted generation runs.
type GenerationRepository interface {
	Repository
	FindByUserAndID(userID, id uuid.UUID) (*models.Generation, error)
	ListByUser(userID uuid.UUID, limit, offset int) ([]models.Generation, int64, error)
}

type generationRepository struct {
	*BaseRepository
}

// NewGenerationRepository creates a generation repository.
func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{BaseRepository: NewBaseRepository(db)}
}

// FindByUserAndID loads one generation scoped to its owner.
func (r *generationRepository) FindByUserAndID(userID, id uuid.UUID) (*models.Generation, error) {
	var generation models.Generation
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&generation).Error
	if err != nil {
		return nil, err
	}
	return &generation, nil
}

// ListByUser returns a page of the user's generations, newest first, plus
// the total count for pagination.
func (r *generationRepository) ListByUser(userID uuid.UUID, limit, offset int) ([]models.Generation, int64, error) {
	var total int64
	if err := r.DB.Model(&models.Generation{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var generations []models.Generation
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&generations).Error
	if err != nil {
		return nil, 0, err
	}
	return generations, total, nil
}
