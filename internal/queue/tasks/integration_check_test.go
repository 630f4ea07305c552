package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/queue"
	"github.com/advising-studio/engine/internal/services"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

type mockProber struct {
	mock.Mock
}

func (m *mockProber) Probe(ctx context.Context, it models.Integration) services.CheckResult {
	return m.Called(ctx, it).Get(0).(services.CheckResult)
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

type mockIntegrationRepository struct {
	mock.Mock
}

func (m *mockIntegrationRepository) Create(ctx context.Context, obj *models.Integration) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockIntegrationRepository) GetByID(ctx context.Context, id any, dest *models.Integration) error {
	return m.Called(ctx, id, dest).Error(0)
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

func TestHandleCheck(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	it := &models.Integration{ID: id, Name: "calendar", HealthURL: "http://calendar.internal/health"}
	result := services.CheckResult{Status: models.IntegrationHealthy, CheckedAt: time.Now()}

	prober := new(mockProber)
	svc := new(mockIntegrationService)
	svc.On("GetIntegration", ctx, id).Return(it, nil)
	prober.On("Probe", ctx, *it).Return(result)
	svc.On("RecordCheck", ctx, id, result).Return(nil)

	task, err := queue.NewIntegrationCheckTask(id)
	require.NoError(t, err)

	h := NewIntegrationCheckHandler(prober, svc, new(mockIntegrationRepository), 2)
	require.NoError(t, h.HandleCheck(ctx, task))

	prober.AssertExpectations(t)
	svc.AssertExpectations(t)
}

func TestHandleCheckSkipsRetryForBadInput(t *testing.T) {
	ctx := context.Background()
	h := NewIntegrationCheckHandler(new(mockProber), new(mockIntegrationService), new(mockIntegrationRepository), 1)

	err := h.HandleCheck(ctx, asynq.NewTask(queue.TypeIntegrationCheck, []byte(`{"integration_id":"x"}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	id := uuid.New()
	svc := new(mockIntegrationService)
	svc.On("GetIntegration", ctx, id).Return(nil, appErr.New(appErr.CodeNotFound, "integration not found"))
	h = NewIntegrationCheckHandler(new(mockProber), svc, new(mockIntegrationRepository), 1)
	task, _ := queue.NewIntegrationCheckTask(id)
	assert.ErrorIs(t, h.HandleCheck(ctx, task), asynq.SkipRetry)
}

func TestHandleCheckAll(t *testing.T) {
	ctx := context.Background()
	items := []models.Integration{
		{ID: uuid.New(), Name: "calendar"},
		{ID: uuid.New(), Name: "mail"},
		{ID: uuid.New(), Name: "sis"},
	}

	repo := new(mockIntegrationRepository)
	prober := new(mockProber)
	svc := new(mockIntegrationService)
	repo.On("List", ctx).Return(items, nil)
	prober.On("Probe", mock.Anything, mock.Anything).Return(services.CheckResult{Status: models.IntegrationHealthy})
	svc.On("RecordCheck", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewIntegrationCheckHandler(prober, svc, repo, 2)
	require.NoError(t, h.HandleCheckAll(ctx, queue.NewIntegrationCheckAllTask()))

	prober.AssertNumberOfCalls(t, "Probe", 3)
	svc.AssertNumberOfCalls(t, "RecordCheck", 3)
}

func TestHandleCheckAllReportsRecordFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockIntegrationRepository)
	prober := new(mockProber)
	svc := new(mockIntegrationService)
	repo.On("List", ctx).Return([]models.Integration{{ID: uuid.New(), Name: "sis"}}, nil)
	prober.On("Probe", mock.Anything, mock.Anything).Return(services.CheckResult{Status: models.IntegrationDown, Err: errors.New("refused")})
	svc.On("RecordCheck", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db gone"))

	h := NewIntegrationCheckHandler(prober, svc, repo, 1)
	assert.EqualError(t, h.HandleCheckAll(ctx, queue.NewIntegrationCheckAllTask()), "db gone")
}

func TestHandleCheckAllKeepsProbingAfterRecordFailure(t *testing.T) {
	ctx := context.Background()
	items := []models.Integration{
		{ID: uuid.New(), Name: "calendar"},
		{ID: uuid.New(), Name: "mail"},
		{ID: uuid.New(), Name: "sis"},
	}

	repo := new(mockIntegrationRepository)
	prober := new(mockProber)
	svc := new(mockIntegrationService)
	repo.On("List", ctx).Return(items, nil)
	prober.On("Probe", mock.Anything, mock.Anything).Return(services.CheckResult{Status: models.IntegrationHealthy})
	svc.On("RecordCheck", mock.Anything, items[0].ID, mock.Anything).Return(errors.New("db gone"))
	svc.On("RecordCheck", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewIntegrationCheckHandler(prober, svc, repo, 1)
	err := h.HandleCheckAll(ctx, queue.NewIntegrationCheckAllTask())
	assert.EqualError(t, err, "db gone")

	prober.AssertNumberOfCalls(t, "Probe", 3)
	for _, call := range prober.Calls {
		assert.NoError(t, call.Arguments.Get(0).(context.Context).Err())
	}
}
