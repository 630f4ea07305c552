package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/advising-studio/engine/internal/models"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

// FlushReport counts the rows removed per table.
type FlushReport map[string]int64

// MaintenanceRepository holds whole-database operations.
type MaintenanceRepository interface {
	// Flush hard-deletes every row of every domain table. It is irreversible.
	Flush(ctx context.Context) (FlushReport, error)
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// flushOrder lists tables children first so foreign keys never block a delete.
var flushOrder = []struct {
	table string
	model any
}{
	{"interactions", &models.Interaction{}},
	{"students", &models.Student{}},
	{"integrations", &models.Integration{}},
	{"staff", &models.Staff{}},
}

// Flush deletes all rows in a single transaction so a failure leaves data untouched.
func (r *maintenanceRepository) Flush(ctx context.Context) (FlushReport, error) {
	report := FlushReport{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range flushOrder {
			res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(t.model)
			if res.Error != nil {
				return appErr.Wrap(res.Error, appErr.CodeInternal, "flush "+t.table+" failed")
			}
			report[t.table] = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
