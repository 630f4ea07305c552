package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is an advisee record.
type Student struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentNumber string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"student_number" validate:"required"`
	FirstName     string         `gorm:"not null" json:"first_name" validate:"required"`
	LastName      string         `gorm:"not null;index" json:"last_name" validate:"required"`
	Email         string         `gorm:"index" json:"email" validate:"omitempty,email"`
	Program       string         `gorm:"type:varchar(128)" json:"program"`
	Year          int            `gorm:"not null;default:1" json:"year" validate:"gte=1,lte=8"`
	AdvisorID     *uuid.UUID     `gorm:"type:uuid;index" json:"advisor_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
}
