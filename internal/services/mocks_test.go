package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"

	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
)

type mockStudentRepository struct {
	mock.Mock
}

func (m *mockStudentRepository) Create(ctx context.Context, obj *models.Student) error {
	args := m.Called(ctx, obj)
	if args.Error(0) == nil && obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockStudentRepository) GetByID(ctx context.Context, id any, dest *models.Student) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		src := args.Get(1).(*models.Student)
		*dest = *src
	}
	return args.Error(0)
}

func (m *mockStudentRepository) Update(ctx context.Context, obj *models.Student) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockStudentRepository) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStudentRepository) Search(ctx context.Context, filter repository.StudentFilter) ([]models.Student, int64, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]models.Student), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

type mockStaffRepository struct {
	mock.Mock
}

func (m *mockStaffRepository) Create(ctx context.Context, obj *models.Staff) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockStaffRepository) GetByID(ctx context.Context, id any, dest *models.Staff) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Staff)
	}
	return args.Error(0)
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

type mockInteractionRepository struct {
	mock.Mock
}

func (m *mockInteractionRepository) Create(ctx context.Context, obj *models.Interaction) error {
	args := m.Called(ctx, obj)
	if args.Error(0) == nil && obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockInteractionRepository) GetByID(ctx context.Context, id any, dest *models.Interaction) error {
	return m.Called(ctx, id, dest).Error(0)
}

func (m *mockInteractionRepository) Update(ctx context.Context, obj *models.Interaction) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockInteractionRepository) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInteractionRepository) List(ctx context.Context, filter repository.InteractionFilter) ([]models.Interaction, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]models.Interaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockIntegrationRepository struct {
	mock.Mock
}

func (m *mockIntegrationRepository) Create(ctx context.Context, obj *models.Integration) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockIntegrationRepository) GetByID(ctx context.Context, id any, dest *models.Integration) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Integration)
	}
	return args.Error(0)
}

func (m *mockIntegrationRepository) Update(ctx context.Context, obj *models.Integration) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockIntegrationRepository) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockIntegrationRepository) List(ctx context.Context) ([]models.Integration, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Integration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIntegrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, checkedAt time.Time, lastError string, probe datatypes.JSONMap) error {
	return m.Called(ctx, id, status, checkedAt, lastError, probe).Error(0)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if v := args.Get(0); v != nil {
		return v.(*asynq.TaskInfo), args.Error(1)
	}
	return nil, args.Error(1)
}
