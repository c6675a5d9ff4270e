package stock

import (
	"net/http"

	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
)

// The check endpoints back the stock-entry form: the UI calls them as the
// operator fills in ids, before submitting the full entry.

func CheckProject(c *gin.Context) {
	var input struct {
		ProjectID uint `json:"project_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project id is required"})
		return
	}

	var project models.Project
	if err := utils.DB.First(&project, input.ProjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

func CheckProperty(c *gin.Context) {
	var input struct {
		PropertyID uint `json:"property_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Property id is required"})
		return
	}

	var property models.Property
	if err := utils.DB.First(&property, input.PropertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": property})
}

// CheckStockProperty reports whether a (project, property) pair is already
// listed, so the form can flag the duplicate before submission.
func CheckStockProperty(c *gin.Context) {
	var input struct {
		ProjectID  uint `json:"project_id" binding:"required"`
		PropertyID uint `json:"property_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project id and property id are required"})
		return
	}

	var entry models.Stock
	if err := utils.DB.Where("project_id = ? AND property_id = ?", input.ProjectID, input.PropertyID).First(&entry).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"exists": false}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"exists": true, "stock": entry}})
}
