package villageprofiles

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterVillageProfileRoutes(r *gin.RouterGroup) {
	r.GET("", ListProfiles)
	r.GET("/filters/options", FilterOptions)
	r.GET("/:id", GetProfile)

	admin := r.Group("")
	admin.Use(auth.Protect(), auth.RequireRole("admin"))
	{
		admin.GET("/admin/all", ListAllProfiles)
		admin.POST("", CreateProfile)
		admin.PUT("/:id", UpdateProfile)
		admin.DELETE("/:id", DeleteProfile)
	}
}
