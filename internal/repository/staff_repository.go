package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/advising-studio/engine/internal/models"
)

type StaffRepository interface {
	BaseRepository[models.Staff]
	List(ctx context.Context) ([]models.Staff, error)
	GetByEmail(ctx context.Context, email string, dest *models.Staff) error
}

type staffRepository struct {
	BaseRepository[models.Staff]
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{BaseRepository: NewBaseRepository[models.Staff](db, "staff member"), db: db}
}

func (r *staffRepository) List(ctx context.Context) ([]models.Staff, error) {
	out := []models.Staff{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, translate(err, "staff", "list")
	}
	return out, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string, dest *models.Staff) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		return translate(err, "staff member", "get")
	}
	return nil
}
