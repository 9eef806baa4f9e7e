package migrations

import (
	"aydf-backend/models"
	"aydf-backend/utils"
)

func MigrateContent() {
	utils.DB.AutoMigrate(
		&models.Blog{},
		&models.GalleryItem{},
		&models.Program{},
		&models.ProgramInitiative{},
		&models.BoardMember{},
		&models.VillageProfile{},
	)
}

func MigrateIntake() {
	utils.DB.AutoMigrate(&models.Volunteer{}, &models.Contact{})
}
