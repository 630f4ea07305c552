package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advising-studio/engine/internal/models"
)

// InteractionFilter narrows an interaction listing. Empty Type matches all types.
type InteractionFilter struct {
	Type      string
	StudentID *uuid.UUID
	Limit     int
}

type InteractionRepository interface {
	BaseRepository[models.Interaction]
	List(ctx context.Context, filter InteractionFilter) ([]models.Interaction, error)
}

type interactionRepository struct {
	BaseRepository[models.Interaction]
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{BaseRepository: NewBaseRepository[models.Interaction](db, "interaction"), db: db}
}

func (r *interactionRepository) List(ctx context.Context, filter InteractionFilter) ([]models.Interaction, error) {
	q := r.db.WithContext(ctx).Model(&models.Interaction{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.StudentID != nil {
		q = q.Where("student_id = ?", *filter.StudentID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	out := []models.Interaction{}
	if err := q.Order("occurred_at DESC").Find(&out).Error; err != nil {
		return nil, translate(err, "interactions", "list")
	}
	return out, nil
}
