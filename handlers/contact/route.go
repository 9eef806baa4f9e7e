package contact

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterContactRoutes(r *gin.RouterGroup) {
	r.POST("", Submit)

	admin := r.Group("")
	admin.Use(auth.Protect(), auth.RequireRole("admin"))
	{
		admin.GET("", ListContacts)
		admin.GET("/:id", GetContact)
		admin.PUT("/:id/status", UpdateContactStatus)
		admin.DELETE("/:id", DeleteContact)
	}
}
