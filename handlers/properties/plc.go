package properties

import (
	"net/http"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func CreatePLC(c *gin.Context) {
	var input struct {
		Name         string          `json:"name" binding:"required"`
		Value        decimal.Decimal `json:"value" binding:"required"`
		IsPercentage bool            `json:"is_percentage"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "PLC name and value are required"})
		return
	}

	var existing models.PLC
	if err := utils.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "PLC with this name already exists"})
		return
	}

	plc := models.PLC{
		Name:         input.Name,
		Value:        input.Value,
		IsPercentage: input.IsPercentage,
	}

	if err := utils.DB.Create(&plc).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "PLC with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create PLC", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "PLC", plc.Name, "Added PLC "+plc.Name)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": plc})
}

func GetPLCs(c *gin.Context) {
	var plcs []models.PLC
	if err := utils.DB.Order("name").Find(&plcs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch PLCs", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plcs})
}

func UpdatePLC(c *gin.Context) {
	var plc models.PLC
	if err := utils.DB.First(&plc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "PLC not found"})
		return
	}

	var input struct {
		Name         *string          `json:"name"`
		Value        *decimal.Decimal `json:"value"`
		IsPercentage *bool            `json:"is_percentage"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid PLC data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != plc.Name {
		var other models.PLC
		if err := utils.DB.Where("name = ? AND id <> ?", *input.Name, plc.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "PLC with this name already exists"})
			return
		}
		updates["name"] = *input.Name
	}
	if input.Value != nil {
		updates["value"] = *input.Value
	}
	if input.IsPercentage != nil {
		updates["is_percentage"] = *input.IsPercentage
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&plc).Updates(updates).Error; err != nil {
			if utils.IsDuplicateEntry(err) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "PLC with this name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update PLC", "error": utils.ErrDetail(err)})
			return
		}
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "PLC", plc.Name, "Updated PLC "+plc.Name)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plc})
}

func DeletePLC(c *gin.Context) {
	var plc models.PLC
	if err := utils.DB.First(&plc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "PLC not found"})
		return
	}

	if err := utils.DB.Delete(&plc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete PLC", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "PLC", plc.Name, "Deleted PLC "+plc.Name)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "PLC deleted successfully"})
}
