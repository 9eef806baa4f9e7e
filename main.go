package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"aydf-backend/handlers/auth"
	"aydf-backend/handlers/blog"
	"aydf-backend/handlers/board"
	"aydf-backend/handlers/contact"
	"aydf-backend/handlers/donations"
	"aydf-backend/handlers/gallery"
	"aydf-backend/handlers/members"
	"aydf-backend/handlers/programs"
	"aydf-backend/handlers/villageprofiles"
	"aydf-backend/handlers/volunteers"
	"aydf-backend/migrations"
	"aydf-backend/seed"
	"aydf-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	r := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigrateUsers()
	migrations.MigratePayments()
	migrations.MigrateContent()
	migrations.MigrateIntake()

	// Seed Initial Data
	if err := seed.SeedAdmin(); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := seed.SeedPrograms(); err != nil {
		log.Fatalf("Failed to seed programs: %v", err)
	}

	// Payment gateway client, shared by the donation and membership flows
	gateway := utils.NewRazorpayClient(utils.RazorpayConfigFromEnv())
	donations.Gateway = gateway
	members.Gateway = gateway

	api := r.Group("/api")
	{
		auth.RegisterAuthRoutes(api.Group("/auth"))
		members.RegisterMemberRoutes(api.Group("/members"))
		donations.RegisterDonationRoutes(api.Group("/donations"))
		volunteers.RegisterVolunteerRoutes(api.Group("/volunteers"))
		programs.RegisterProgramRoutes(api.Group("/programs"))
		blog.RegisterBlogRoutes(api.Group("/blog"))
		gallery.RegisterGalleryRoutes(api.Group("/gallery"))
		contact.RegisterContactRoutes(api.Group("/contact"))
		board.RegisterBoardRoutes(api.Group("/board"))
		villageprofiles.RegisterVillageProfileRoutes(api.Group("/village-profiles"))

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":   "AYDF API is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
