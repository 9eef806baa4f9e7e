package programs

import "github.com/gin-gonic/gin"

func RegisterProgramRoutes(r *gin.RouterGroup) {
	r.GET("", ListPrograms)
	r.GET("/:id", GetProgram)
}
