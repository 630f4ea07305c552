package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Integration health states.
const (
	IntegrationUnknown  = "unknown"
	IntegrationHealthy  = "healthy"
	IntegrationDegraded = "degraded"
	IntegrationDown     = "down"
)

// Integration is an external system (SIS, calendar, mail) whose health is
// tracked by the worker.
type Integration struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"name" validate:"required"`
	Kind          string     `gorm:"type:varchar(32);not null" json:"kind"`
	Icon          string     `gorm:"type:varchar(64)" json:"icon"`
	HealthURL     string     `gorm:"type:text" json:"-"`
	Status        string     `gorm:"type:varchar(16);not null;default:unknown;index" json:"status"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	LastError     string     `gorm:"type:text" json:"last_error,omitempty"`
	// LastProbe holds details of the most recent probe such as latency and HTTP status.
	LastProbe datatypes.JSONMap `gorm:"type:jsonb" json:"last_probe,omitempty" swaggertype:"object"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
