package database

import (
	"fmt"
	"log"

	classroomModel "classroom_backend/internals/features/classroom/model"
	userModel "classroom_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table. Foreign keys (ON DELETE CASCADE),
// unique indexes and CHECKs come from the model tags, so the database
// enforces them, not only the services.
func Migrate(db *gorm.DB) error {
	models := append([]any{&userModel.UserModel{}}, classroomModel.AllModels()...)
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Printf("[INFO] migrated %d tables", len(models))
	return nil
}
