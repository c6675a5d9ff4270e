package logs

import (
	"net/http"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
)

// GetAllLogs lists the audit trail; admins only.
func GetAllLogs(c *gin.Context) {
	var entries []models.Log
	if err := utils.DB.Order("created_at desc").Limit(500).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch logs", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// GetUserLogs lists one user's activity. Admins can read anyone's trail;
// other users only their own.
func GetUserLogs(c *gin.Context) {
	actor := auth.CurrentUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}

	userID := c.Param("userId")
	if !actor.IsAdmin() && actor.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You are not permitted to view these logs"})
		return
	}

	var entries []models.Log
	if err := utils.DB.Where("user_id = ?", userID).Order("created_at desc").Limit(500).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch logs", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}
