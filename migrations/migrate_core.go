package migrations

import (
	"aydf-backend/models"
	"aydf-backend/utils"
)

func MigrateUsers() {
	utils.DB.AutoMigrate(&models.User{})
}

func MigratePayments() {
	utils.DB.AutoMigrate(&models.Donation{}, &models.Member{})
}
