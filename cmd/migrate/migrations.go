package main

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/advising-studio/engine/internal/models"
)

// registerModels returns all models that need migration, parents first.
func registerModels() []interface{} {
	return []interface{}{
		&models.Staff{},
		&models.Student{},
		&models.Interaction{},
		&models.Integration{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	// gen_random_uuid() column defaults need pgcrypto on postgres < 13.
	if err := enableUUIDExtension(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addStudentSearchIndexes,
		addForeignKeys,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addStudentSearchIndexes backs the case-insensitive name search.
func addStudentSearchIndexes(db *gorm.DB) error {
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_students_name_lower
		ON students (lower(last_name), lower(first_name))
		WHERE deleted_at IS NULL
	`).Error
}

func addForeignKeys(db *gorm.DB) error {
	stmts := []string{
		`DO $$ BEGIN
			ALTER TABLE interactions ADD CONSTRAINT fk_interactions_student
				FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE interactions ADD CONSTRAINT fk_interactions_staff
				FOREIGN KEY (staff_id) REFERENCES staff(id) ON DELETE SET NULL;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE students ADD CONSTRAINT fk_students_advisor
				FOREIGN KEY (advisor_id) REFERENCES staff(id) ON DELETE SET NULL;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

// defaultIntegrations are the systems a fresh install reports on. Health URLs
// are filled in per deployment; without one a check reports unknown.
var defaultIntegrations = []models.Integration{
	{Name: "Student Information System", Kind: "sis", Icon: "database"},
	{Name: "Calendar", Kind: "calendar", Icon: "calendar"},
	{Name: "Email", Kind: "mail", Icon: "mail"},
	{Name: "Learning Management System", Kind: "lms", Icon: "graduation-cap"},
}

func seedIntegrations(db *gorm.DB) (int64, error) {
	rows := make([]models.Integration, len(defaultIntegrations))
	copy(rows, defaultIntegrations)
	for i := range rows {
		rows[i].Status = models.IntegrationUnknown
	}
	res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}
