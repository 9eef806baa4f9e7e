package gallery

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterGalleryRoutes(r *gin.RouterGroup) {
	r.GET("", ListGallery)

	admin := r.Group("")
	admin.Use(auth.Protect(), auth.RequireRole("admin"))
	{
		admin.GET("/admin/all", ListGallery)
		admin.POST("", CreateGalleryItem)
		admin.DELETE("/admin/:id", DeleteGalleryItem)
	}
}
