package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/advising-studio/engine/internal/integrations"
	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/queue"
	"github.com/advising-studio/engine/internal/repository"
	"github.com/advising-studio/engine/internal/services"
	appErr "github.com/advising-studio/engine/pkg/errors"
	"github.com/advising-studio/engine/pkg/logger"
)

// IntegrationCheckHandler handles single and sweeping integration health checks.
type IntegrationCheckHandler struct {
	prober      integrations.Prober
	svc         services.IntegrationService
	repo        repository.IntegrationRepository
	concurrency int
}

func NewIntegrationCheckHandler(prober integrations.Prober, svc services.IntegrationService, repo repository.IntegrationRepository, concurrency int) *IntegrationCheckHandler {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &IntegrationCheckHandler{prober: prober, svc: svc, repo: repo, concurrency: concurrency}
}

// Register mounts the handlers on an asynq mux.
func (h *IntegrationCheckHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeIntegrationCheck, h.HandleCheck)
	mux.HandleFunc(queue.TypeIntegrationCheckAll, h.HandleCheckAll)
}

func (h *IntegrationCheckHandler) HandleCheck(ctx context.Context, t *asynq.Task) error {
	id, err := queue.ParseIntegrationCheck(t)
	if err != nil {
		logger.L().Error("invalid integration check task", zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	it, err := h.svc.GetIntegration(ctx, id)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			logger.L().Warn("integration vanished before check", zap.String("integration_id", id.String()))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return err
	}

	return h.check(ctx, *it)
}

func (h *IntegrationCheckHandler) HandleCheckAll(ctx context.Context, _ *asynq.Task) error {
	items, err := h.repo.List(ctx)
	if err != nil {
		logger.L().Error("list integrations for sweep failed", zap.Error(err))
		return err
	}

	logger.L().Info("integration sweep started", zap.Int("count", len(items)))

	// A plain group: one failed write must not cancel the remaining probes,
	// or their breakers would count the cancellation as an outage.
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(h.concurrency)
	for _, it := range items {
		it := it
		g.Go(func() error {
			if err := h.check(ctx, it); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	if err := errors.Join(errs...); err != nil {
		logger.L().Error("integration sweep incomplete", zap.Int("failed", len(errs)), zap.Error(err))
		return err
	}
	logger.L().Info("integration sweep finished", zap.Int("count", len(items)))
	return nil
}

func (h *IntegrationCheckHandler) check(ctx context.Context, it models.Integration) error {
	res := h.prober.Probe(ctx, it)

	fields := []zap.Field{
		zap.String("integration_id", it.ID.String()),
		zap.String("integration", it.Name),
		zap.String("status", res.Status),
	}
	if res.Err != nil {
		logger.L().Warn("integration check failed", append(fields, zap.Error(res.Err))...)
	} else {
		logger.L().Info("integration check passed", fields...)
	}

	if err := h.svc.RecordCheck(ctx, it.ID, res); err != nil {
		logger.L().Error("record integration check failed", append(fields, zap.Error(err))...)
		return err
	}
	return nil
}
