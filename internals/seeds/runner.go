package seeds

import (
	"log"

	"gorm.io/gorm"

	users "monitorias_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	if err := users.SeedDefaultUsers(db); err != nil {
		log.Printf("[ERROR] seed de usuarios: %v", err)
	}
}
