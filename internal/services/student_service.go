package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
	appErr "github.com/advising-studio/engine/pkg/errors"
	"github.com/advising-studio/engine/pkg/logger"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type StudentService interface {
	ListStudents(ctx context.Context, filters *StudentFilters) (*StudentPage, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	CreateStudent(ctx context.Context, input *CreateStudentInput) (*models.Student, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, input *UpdateStudentInput) (*models.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
}

type StudentFilters struct {
	Query    string
	Page     int
	PageSize int
}

// normalize clamps paging to sane bounds.
func (f *StudentFilters) normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > MaxPageSize {
		f.PageSize = DefaultPageSize
	}
}

type StudentPage struct {
	Items    []models.Student
	Page     int
	PageSize int
	Total    int64
}

type CreateStudentInput struct {
	StudentNumber string
	FirstName     string
	LastName      string
	Email         string
	Program       string
	Year          int
	AdvisorID     *uuid.UUID
}

type UpdateStudentInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Program   *string
	Year      *int
	AdvisorID *uuid.UUID
}

type studentService struct {
	students repository.StudentRepository
	staff    repository.StaffRepository
}

func NewStudentService(students repository.StudentRepository, staff repository.StaffRepository) StudentService {
	return &studentService{students: students, staff: staff}
}

var _ StudentService = (*studentService)(nil)

func (s *studentService) ListStudents(ctx context.Context, filters *StudentFilters) (*StudentPage, error) {
	f := StudentFilters{}
	if filters != nil {
		f = *filters
	}
	f.normalize()

	items, total, err := s.students.Search(ctx, repository.StudentFilter{
		Query:  f.Query,
		Limit:  f.PageSize,
		Offset: (f.Page - 1) * f.PageSize,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Student{}
	}
	return &StudentPage{Items: items, Page: f.Page, PageSize: f.PageSize, Total: total}, nil
}

func (s *studentService) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	var st models.Student
	if err := s.students.GetByID(ctx, id, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *studentService) CreateStudent(ctx context.Context, input *CreateStudentInput) (*models.Student, error) {
	logger.L().Info("create student called", zap.String("student_number", input.StudentNumber))

	if err := s.checkAdvisor(ctx, input.AdvisorID); err != nil {
		return nil, err
	}

	st := &models.Student{
		StudentNumber: strings.TrimSpace(input.StudentNumber),
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         strings.TrimSpace(input.Email),
		Program:       strings.TrimSpace(input.Program),
		Year:          input.Year,
		AdvisorID:     input.AdvisorID,
	}
	if st.Year == 0 {
		st.Year = 1
	}
	if err := s.students.Create(ctx, st); err != nil {
		return nil, err
	}

	logger.L().Info("student created", zap.String("student_id", st.ID.String()))
	return st, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id uuid.UUID, input *UpdateStudentInput) (*models.Student, error) {
	st, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		st.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		st.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		st.Email = strings.TrimSpace(*input.Email)
	}
	if input.Program != nil {
		st.Program = strings.TrimSpace(*input.Program)
	}
	if input.Year != nil {
		st.Year = *input.Year
	}
	if input.AdvisorID != nil {
		if err := s.checkAdvisor(ctx, input.AdvisorID); err != nil {
			return nil, err
		}
		st.AdvisorID = input.AdvisorID
	}
	if st.FirstName == "" || st.LastName == "" {
		return nil, appErr.New(appErr.CodeInvalid, "first_name and last_name cannot be empty")
	}

	if err := s.students.Update(ctx, st); err != nil {
		return nil, err
	}
	logger.L().Info("student updated", zap.String("student_id", st.ID.String()))
	return st, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	logger.L().Info("student deleted", zap.String("student_id", id.String()))
	return nil
}

func (s *studentService) checkAdvisor(ctx context.Context, advisorID *uuid.UUID) error {
	if advisorID == nil {
		return nil
	}
	var st models.Staff
	if err := s.staff.GetByID(ctx, *advisorID, &st); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return appErr.New(appErr.CodeInvalid, "advisor_id does not reference a staff member")
		}
		return err
	}
	return nil
}
