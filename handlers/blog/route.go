package blog

import (
	"github.com/gin-gonic/gin"

	"aydf-backend/handlers/auth"
)

func RegisterBlogRoutes(r *gin.RouterGroup) {
	r.GET("", ListBlogs)
	r.GET("/:slug", GetBlogBySlug)
	r.POST("", auth.Protect(), auth.RequireRole("admin"), CreateBlog)
}
