package models

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is a logged contact between staff and a student.
type Interaction struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID  uuid.UUID  `gorm:"type:uuid;index:idx_interactions_student_occurred;not null" json:"student_id" validate:"required"`
	StaffID    *uuid.UUID `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	Type       string     `gorm:"type:varchar(32);index;not null" json:"type" validate:"required"`
	Summary    string     `gorm:"type:text;not null" json:"summary" validate:"required"`
	OccurredAt time.Time  `gorm:"index:idx_interactions_student_occurred;not null" json:"occurred_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
