package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/advising-studio/engine/internal/models"
)

// StudentFilter narrows a student listing. Limit 0 means no limit.
type StudentFilter struct {
	Query  string
	Limit  int
	Offset int
}

type StudentRepository interface {
	BaseRepository[models.Student]
	Search(ctx context.Context, filter StudentFilter) ([]models.Student, int64, error)
}

type studentRepository struct {
	BaseRepository[models.Student]
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{BaseRepository: NewBaseRepository[models.Student](db, "student"), db: db}
}

func (r *studentRepository) Search(ctx context.Context, filter StudentFilter) ([]models.Student, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Student{})
	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + escapeLike(s) + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR student_number ILIKE ? OR email ILIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "students", "count")
	}

	out := []models.Student{}
	q = q.Order("last_name ASC, first_name ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, translate(err, "students", "list")
	}
	return out, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
