package volunteers

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterVolunteerRoutes(r *gin.RouterGroup) {
	r.POST("/apply", Apply)

	admin := r.Group("")
	admin.Use(auth.Protect(), auth.RequireRole("admin"))
	{
		admin.GET("", ListVolunteers)
		admin.GET("/:id", GetVolunteer)
		admin.PUT("/:id/approve", Approve)
		admin.PUT("/:id/reject", Reject)
		admin.PATCH("/:id/status", UpdateStatus)
	}
}
