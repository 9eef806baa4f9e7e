package donations

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterDonationRoutes(r *gin.RouterGroup) {
	r.POST("/create", CreateDonation)
	r.POST("/verify", VerifyDonation)
	r.GET("/stats", DonationStats)

	admin := r.Group("")
	admin.Use(auth.Protect(), auth.RequireRole("admin"))
	{
		admin.GET("", ListDonations)
		admin.GET("/admin/all", ListDonations)
		admin.GET("/export", ExportDonations)
	}
}
