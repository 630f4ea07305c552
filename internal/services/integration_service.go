package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/advising-studio/engine/internal/catalog"
	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/queue"
	"github.com/advising-studio/engine/internal/repository"
	appErr "github.com/advising-studio/engine/pkg/errors"
	"github.com/advising-studio/engine/pkg/logger"
)

// TaskEnqueuer is the subset of *asynq.Client the service needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type IntegrationService interface {
	ListIntegrations(ctx context.Context) ([]IntegrationStatus, error)
	GetIntegration(ctx context.Context, id uuid.UUID) (*models.Integration, error)
	RequestCheck(ctx context.Context, id uuid.UUID) (string, error)
	RecordCheck(ctx context.Context, id uuid.UUID, result CheckResult) error
}

// IntegrationStatus is the read model served to clients.
type IntegrationStatus struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Kind          string         `json:"kind"`
	Status        string         `json:"status"`
	LastCheckedAt *time.Time     `json:"last_checked_at,omitempty"`
	LastError     string         `json:"last_error,omitempty"`
	LastProbe     map[string]any `json:"last_probe,omitempty"`
	Icon          catalog.Icon   `json:"icon"`
}

// CheckResult is the outcome of one health probe.
type CheckResult struct {
	Status    string
	CheckedAt time.Time
	Err       error
	// Details is stored verbatim as the integration's last probe.
	Details map[string]any
}

type integrationService struct {
	integrations repository.IntegrationRepository
	enqueuer     TaskEnqueuer
}

// NewIntegrationService wires the service. enqueuer may be nil when the
// process has no queue (the worker); RequestCheck then reports unavailable.
func NewIntegrationService(integrations repository.IntegrationRepository, enqueuer TaskEnqueuer) IntegrationService {
	return &integrationService{integrations: integrations, enqueuer: enqueuer}
}

var _ IntegrationService = (*integrationService)(nil)

func (s *integrationService) ListIntegrations(ctx context.Context) ([]IntegrationStatus, error) {
	items, err := s.integrations.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]IntegrationStatus, 0, len(items))
	for _, it := range items {
		status := it.Status
		if status == "" {
			status = models.IntegrationUnknown
		}
		out = append(out, IntegrationStatus{
			ID:            it.ID,
			Name:          it.Name,
			Kind:          it.Kind,
			Status:        status,
			LastCheckedAt: it.LastCheckedAt,
			LastError:     it.LastError,
			LastProbe:     it.LastProbe,
			Icon:          catalog.ResolveIcon(it.Icon),
		})
	}
	return out, nil
}

func (s *integrationService) GetIntegration(ctx context.Context, id uuid.UUID) (*models.Integration, error) {
	var it models.Integration
	if err := s.integrations.GetByID(ctx, id, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *integrationService) RequestCheck(ctx context.Context, id uuid.UUID) (string, error) {
	if s.enqueuer == nil {
		return "", appErr.New(appErr.CodeUnavailable, "background checks are not configured")
	}
	if _, err := s.GetIntegration(ctx, id); err != nil {
		return "", err
	}

	task, err := queue.NewIntegrationCheckTask(id)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "build check task failed")
	}
	info, err := s.enqueuer.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			return "", appErr.Wrap(err, appErr.CodeConflict, "a check for this integration is already queued")
		}
		return "", appErr.Wrap(err, appErr.CodeUnavailable, "enqueue check failed")
	}

	logger.L().Info("integration check queued", zap.String("integration_id", id.String()), zap.String("task_id", info.ID))
	return info.ID, nil
}

func (s *integrationService) RecordCheck(ctx context.Context, id uuid.UUID, result CheckResult) error {
	lastErr := ""
	if result.Err != nil {
		lastErr = result.Err.Error()
	}
	checkedAt := result.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now()
	}
	var probe datatypes.JSONMap
	if len(result.Details) > 0 {
		probe = datatypes.JSONMap(result.Details)
	}
	return s.integrations.UpdateStatus(ctx, id, result.Status, checkedAt.UTC(), lastErr, probe)
}
