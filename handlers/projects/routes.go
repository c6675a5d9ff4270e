package projects

import "github.com/gin-gonic/gin"

func RegisterProjectRoutes(r *gin.RouterGroup) {
	r.POST("/add-project", CreateProject)
	r.GET("/projects", GetProjects)
	r.GET("/project/:id", GetProject)
	r.PUT("/project/:id", UpdateProject)
	r.DELETE("/project/:id", DeleteProject)
}
