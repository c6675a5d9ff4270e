package properties

import (
	"net/http"
	"strconv"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func CreatePropertySize(c *gin.Context) {
	var input struct {
		Size          decimal.Decimal `json:"size" binding:"required"`
		MeasuringUnit string          `json:"measuring_unit" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Size and measuring unit are required"})
		return
	}

	var existing models.PropertySize
	if err := utils.DB.Where("size = ? AND measuring_unit = ?", input.Size, input.MeasuringUnit).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "This size and measuring unit already exist"})
		return
	}

	size := models.PropertySize{
		Size:          input.Size,
		MeasuringUnit: input.MeasuringUnit,
	}

	if err := utils.DB.Create(&size).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create property size", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "PropertySize", strconv.FormatUint(uint64(size.ID), 10), "Added property size "+size.Size.String()+" "+size.MeasuringUnit)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": size})
}

func GetPropertySizes(c *gin.Context) {
	var sizes []models.PropertySize
	if err := utils.DB.Order("size").Find(&sizes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch property sizes", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sizes})
}

func DeletePropertySize(c *gin.Context) {
	var size models.PropertySize
	if err := utils.DB.First(&size, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property size not found"})
		return
	}

	if err := utils.DB.Delete(&size).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete property size", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "PropertySize", strconv.FormatUint(uint64(size.ID), 10), "Deleted property size")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property size deleted successfully"})
}
