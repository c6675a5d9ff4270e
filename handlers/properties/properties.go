package properties

import (
	"net/http"
	"strconv"
	"time"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func CreateProperty(c *gin.Context) {
	var input struct {
		PropertyType  string           `json:"property_type" binding:"required"`
		Size          decimal.Decimal  `json:"size" binding:"required"`
		MeasuringUnit string           `json:"measuring_unit"`
		CustomerID    *string          `json:"customer_id"`
		AllotmentDate *time.Time       `json:"allotment_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Property type and size are required"})
		return
	}

	if input.CustomerID != nil {
		var customer models.Customer
		if err := utils.DB.Where("customer_id = ?", *input.CustomerID).First(&customer).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected customer does not exist"})
			return
		}
	}

	property := models.Property{
		PropertyType:  input.PropertyType,
		Size:          input.Size,
		MeasuringUnit: input.MeasuringUnit,
		CustomerID:    input.CustomerID,
		AllotmentDate: input.AllotmentDate,
	}

	if err := utils.DB.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create property", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "Property", strconv.FormatUint(uint64(property.ID), 10), "Added property of type "+property.PropertyType)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": property})
}

func GetProperties(c *gin.Context) {
	var list []models.Property
	query := utils.DB
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if err := query.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch properties", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func GetProperty(c *gin.Context) {
	var property models.Property
	if err := utils.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": property})
}

func UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := utils.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property not found"})
		return
	}

	var input struct {
		PropertyType  *string          `json:"property_type"`
		Size          *decimal.Decimal `json:"size"`
		MeasuringUnit *string          `json:"measuring_unit"`
		CustomerID    *string          `json:"customer_id"`
		AllotmentDate *time.Time       `json:"allotment_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid property data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.PropertyType != nil {
		updates["property_type"] = *input.PropertyType
	}
	if input.Size != nil {
		updates["size"] = *input.Size
	}
	if input.MeasuringUnit != nil {
		updates["measuring_unit"] = *input.MeasuringUnit
	}
	if input.CustomerID != nil {
		var customer models.Customer
		if err := utils.DB.Where("customer_id = ?", *input.CustomerID).First(&customer).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected customer does not exist"})
			return
		}
		updates["customer_id"] = *input.CustomerID
	}
	if input.AllotmentDate != nil {
		updates["allotment_date"] = *input.AllotmentDate
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&property).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update property", "error": utils.ErrDetail(err)})
			return
		}
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "Property", strconv.FormatUint(uint64(property.ID), 10), "Updated property")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": property})
}

func DeleteProperty(c *gin.Context) {
	var property models.Property
	if err := utils.DB.First(&property, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property not found"})
		return
	}

	var stockCount int64
	if err := utils.DB.Model(&models.Stock{}).Where("property_id = ?", property.ID).Count(&stockCount).Error; err == nil && stockCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Property is listed in stock and cannot be deleted"})
		return
	}

	if err := utils.DB.Delete(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete property", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "Property", strconv.FormatUint(uint64(property.ID), 10), "Deleted property")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property deleted successfully"})
}
