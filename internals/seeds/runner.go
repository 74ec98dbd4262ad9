package seeds

import (
	"context"
	"log"

	"classroom_backend/internals/seeds/classroom"

	"gorm.io/gorm"
)

// RunAllSeeds loads the demo data set. Failures are logged, not fatal, so a
// half-seeded database never blocks boot.
func RunAllSeeds(db *gorm.DB) {
	log.Println("[INFO] Running seeds...")
	if err := classroom.SeedClassroomFromJSON(context.Background(), db, classroom.DefaultData); err != nil {
		log.Printf("[ERROR] classroom seed: %v", err)
		return
	}
	log.Println("[INFO] Seeds done.")
}
