package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates tables for models and then the foreign keys between them.
func Migrate(db *gorm.DB, models ...any) error {
	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}
	return MigrateConstraints(db)
}
