package auth

import "github.com/gin-gonic/gin"

func RegisterUserRoutes(r *gin.RouterGroup) {
	r.POST("/users", RequireAdmin(), CreateUser)
	r.GET("/users", RequireAdmin(), GetUsers)
	r.GET("/users/:user_id", RequireAdmin(), GetUser)
	r.PUT("/users/:user_id", RequireAdmin(), UpdateUser)
	r.PUT("/users/:user_id/password", ResetPassword)
	r.DELETE("/users/:user_id", RequireAdmin(), DeleteUser)
}
