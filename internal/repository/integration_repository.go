package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/advising-studio/engine/internal/models"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

type IntegrationRepository interface {
	BaseRepository[models.Integration]
	List(ctx context.Context) ([]models.Integration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, checkedAt time.Time, lastError string, probe datatypes.JSONMap) error
}

type integrationRepository struct {
	BaseRepository[models.Integration]
	db *gorm.DB
}

func NewIntegrationRepository(db *gorm.DB) IntegrationRepository {
	return &integrationRepository{BaseRepository: NewBaseRepository[models.Integration](db, "integration"), db: db}
}

func (r *integrationRepository) List(ctx context.Context) ([]models.Integration, error) {
	out := []models.Integration{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, translate(err, "integrations", "list")
	}
	return out, nil
}

func (r *integrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, checkedAt time.Time, lastError string, probe datatypes.JSONMap) error {
	res := r.db.WithContext(ctx).Model(&models.Integration{}).Where("id = ?", id).Updates(map[string]any{
		"status":          status,
		"last_checked_at": checkedAt,
		"last_error":      lastError,
		"last_probe":      probe,
	})
	if res.Error != nil {
		return translate(res.Error, "integration", "update status of")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "integration not found")
	}
	return nil
}
