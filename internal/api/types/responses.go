package types

import (
	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type StudentResponse struct {
	Message string          `json:"message"`
	Student *models.Student `json:"student"`
}

type InteractionResponse struct {
	Message     string              `json:"message"`
	Interaction *models.Interaction `json:"interaction"`
}

type CheckQueuedResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"task_id"`
}

type FlushResponse struct {
	Message string                 `json:"message"`
	Deleted repository.FlushReport `json:"deleted"`
}
