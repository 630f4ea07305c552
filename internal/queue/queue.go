// Package queue defines the background task types shared by the API, which
// enqueues them, and the worker, which handles them.
package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeIntegrationCheck    = "integration:check"
	TypeIntegrationCheckAll = "integration:check_all"

	// QueueIntegrations isolates health checks from any future queues.
	QueueIntegrations = "integrations"
)

// IntegrationCheckPayload is the task payload for a single integration check.
type IntegrationCheckPayload struct {
	IntegrationID string `json:"integration_id"`
}

// NewIntegrationCheckTask builds a task that probes one integration. A
// uniqueness window stops repeated clicks from stacking duplicate checks.
func NewIntegrationCheckTask(id uuid.UUID) (*asynq.Task, error) {
	b, err := json.Marshal(IntegrationCheckPayload{IntegrationID: id.String()})
	if err != nil {
		return nil, fmt.Errorf("marshal integration check payload: %w", err)
	}
	return asynq.NewTask(TypeIntegrationCheck, b,
		asynq.Queue(QueueIntegrations),
		asynq.MaxRetry(2),
		asynq.Timeout(time.Minute),
		asynq.Unique(30*time.Second),
	), nil
}

// NewIntegrationCheckAllTask builds the periodic sweep over every integration.
func NewIntegrationCheckAllTask() *asynq.Task {
	return asynq.NewTask(TypeIntegrationCheckAll, nil,
		asynq.Queue(QueueIntegrations),
		asynq.MaxRetry(0),
		asynq.Timeout(5*time.Minute),
	)
}

// ParseIntegrationCheck decodes and validates a check payload.
func ParseIntegrationCheck(t *asynq.Task) (uuid.UUID, error) {
	var p IntegrationCheckPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return uuid.Nil, fmt.Errorf("invalid integration check payload: %w", err)
	}
	id, err := uuid.Parse(p.IntegrationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid integration id in task: %w", err)
	}
	return id, nil
}
