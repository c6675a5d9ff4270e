package logs

import (
	"realty-admin-server/handlers/auth"

	"github.com/gin-gonic/gin"
)

func RegisterLogRoutes(r *gin.RouterGroup) {
	r.GET("/all", auth.RequireAdmin(), GetAllLogs)
	r.GET("/user/:userId", GetUserLogs)
}
