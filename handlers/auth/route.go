package auth

import "github.com/gin-gonic/gin"

func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.POST("/register", Register)
	r.POST("/login", Login)
}
