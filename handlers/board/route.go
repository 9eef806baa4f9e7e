package board

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterBoardRoutes(r *gin.RouterGroup) {
	r.GET("", ListBoard)

	admin := r.Group("")
	admin.Use(auth.Protect(), auth.RequireRole("admin"))
	{
		admin.GET("/admin/all", ListAllBoard)
		admin.POST("", CreateBoardMember)
		admin.PUT("/:id", UpdateBoardMember)
		admin.DELETE("/admin/:id", DeleteBoardMember)
	}
}
