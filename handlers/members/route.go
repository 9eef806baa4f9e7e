package members

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterMemberRoutes(r *gin.RouterGroup) {
	r.POST("/register", RegisterMember)
	r.POST("/verify-payment", VerifyMembershipPayment)
	r.GET("/profile", auth.Protect(), auth.RequireRole("member", "admin"), GetProfile)

	admin := r.Group("")
	admin.Use(auth.Protect(), auth.RequireRole("admin"))
	{
		admin.GET("", ListMembers)
		admin.GET("/:id", GetMember)
		admin.PUT("/:id/status", UpdateMemberStatus)
		admin.DELETE("/admin/:id", DeleteMember)
	}
}
