package seed

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"aydf-backend/models"
	"aydf-backend/utils"
)

// SeedAdmin creates the admin account once.
func SeedAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	err := utils.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "AYDF Admin",
		Email:    email,
		Password: string(hashed),
		Phone:    "9999999999",
		Role:     "admin",
		IsActive: true,
	}

	if err := utils.DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully.")
	return nil
}

// SeedPrograms loads the foundation's four programs once.
func SeedPrograms() error {
	var count int64
	if err := utils.DB.Model(&models.Program{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Programs already exist. Skipping seeding.")
		return nil
	}

	programs := []models.Program{
		{
			ID:          "healthcare",
			Title:       "Healthcare Initiatives",
			Description: "Improving healthcare access in rural communities",
			Category:    "healthcare",
			Order:       1,
			IsActive:    true,
			Initiatives: []models.ProgramInitiative{
				{Name: "Blood Donation Camps", Description: "Regular blood donation camps in collaboration with district blood banks", Icon: "droplet"},
				{Name: "Medical Equipment Bank", Description: "Establishing and expanding medical equipment bank for needy patients", Icon: "heart-pulse"},
				{Name: "Health Checkup & Awareness", Description: "Conducting health checkups, cancer awareness camps, and specialist consultations", Icon: "stethoscope"},
				{Name: "Multi-City Patient Support", Description: "Providing ambulance, accommodation, and guidance for multi-city medical needs", Icon: "ambulance"},
			},
		},
		{
			ID:          "education",
			Title:       "Education Initiatives",
			Description: "Empowering students through education and guidance",
			Category:    "education",
			Order:       2,
			IsActive:    true,
			Initiatives: []models.ProgramInitiative{
				{Name: "Scholarships", Description: "Offering scholarships to deserving rural students", Icon: "graduation-cap"},
				{Name: "Career Guidance", Description: "Subject-based seminars and career guidance sessions in schools", Icon: "users"},
				{Name: "School Awareness Sessions", Description: "Building platforms to connect donors, corporates, and students", Icon: "book-open"},
			},
		},
		{
			ID:          "rural-development",
			Title:       "City & Rural Development",
			Description: "Sustainable community development initiatives",
			Category:    "rural-development",
			Order:       3,
			IsActive:    true,
			Initiatives: []models.ProgramInitiative{
				{Name: "Environment & Cleanliness", Description: "Addressing environmental issues like dumping grounds and cleanliness", Icon: "recycle"},
				{Name: "Infrastructure Support", Description: "Working on rural/urban infrastructure improvements", Icon: "building"},
				{Name: "Community Development", Description: "Taking initiatives on local issues affecting community wellbeing", Icon: "home"},
			},
		},
		{
			ID:          "social-justice",
			Title:       "Social Justice & Legal Support",
			Description: "Empowering communities through legal awareness and support",
			Category:    "social-justice",
			Order:       4,
			IsActive:    true,
			Initiatives: []models.ProgramInitiative{
				{Name: "Legal Guidance", Description: "Providing guidance, motivation, and support to victims seeking justice", Icon: "scale"},
				{Name: "Rights Awareness", Description: "Spreading legal awareness, especially among disadvantaged groups", Icon: "shield"},
			},
		},
	}

	for _, program := range programs {
		if err := utils.DB.Create(&program).Error; err != nil {
			return err
		}
	}

	log.Println("Programs seeded successfully.")
	return nil
}
