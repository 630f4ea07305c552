package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdvisor = "advisor"
	RoleAdmin   = "admin"
)

// Staff is an advising staff member. Accounts are provisioned by the
// identity provider; the engine only mirrors them.
type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	Name      string    `gorm:"not null" json:"name" validate:"required"`
	Role      string    `gorm:"type:varchar(16);not null;default:advisor" json:"role" validate:"required,oneof=advisor admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }
