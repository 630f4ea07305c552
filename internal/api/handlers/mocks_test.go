package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
	"github.com/advising-studio/engine/internal/services"
)

type mockStudentService struct {
	mock.Mock
}

func (m *mockStudentService) ListStudents(ctx context.Context, filters *services.StudentFilters) (*services.StudentPage, error) {
	args := m.Called(ctx, filters)
	if v := args.Get(0); v != nil {
		return v.(*services.StudentPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentService) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentService) CreateStudent(ctx context.Context, input *services.CreateStudentInput) (*models.Student, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentService) UpdateStudent(ctx context.Context, id uuid.UUID, input *services.UpdateStudentInput) (*models.Student, error) {
	args := m.Called(ctx, id, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Student), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockInteractionService struct {
	mock.Mock
}

func (m *mockInteractionService) ListInteractions(ctx context.Context, filters *services.InteractionFilters) ([]models.Interaction, error) {
	args := m.Called(ctx, filters)
	if v := args.Get(0); v != nil {
		return v.([]models.Interaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInteractionService) LogInteraction(ctx context.Context, input *services.LogInteractionInput) (*models.Interaction, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Interaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInteractionService) DeleteInteraction(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockIntegrationService struct {
	mock.Mock
}

func (m *mockIntegrationService) ListIntegrations(ctx context.Context) ([]services.IntegrationStatus, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]services.IntegrationStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIntegrationService) GetIntegration(ctx context.Context, id uuid.UUID) (*models.Integration, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Integration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIntegrationService) RequestCheck(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockIntegrationService) RecordCheck(ctx context.Context, id uuid.UUID, result services.CheckResult) error {
	return m.Called(ctx, id, result).Error(0)
}

type mockStaffRepository struct {
	mock.Mock
}

func (m *mockStaffRepository) Create(ctx context.Context, obj *models.Staff) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockStaffRepository) GetByID(ctx context.Context, id any, dest *models.Staff) error {
	return m.Called(ctx, id, dest).Error(0)
}

func (m *mockStaffRepository) Update(ctx context.Context, obj *models.Staff) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockStaffRepository) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStaffRepository) List(ctx context.Context) ([]models.Staff, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Staff), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStaffRepository) GetByEmail(ctx context.Context, email string, dest *models.Staff) error {
	return m.Called(ctx, email, dest).Error(0)
}

type mockMaintenanceRepository struct {
	mock.Mock
}

func (m *mockMaintenanceRepository) Flush(ctx context.Context) (repository.FlushReport, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(repository.FlushReport), args.Error(1)
	}
	return nil, args.Error(1)
}
