package brokers

import (
	"net/http"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
)

func CreateBroker(c *gin.Context) {
	var input struct {
		BrokerCode string `json:"broker_code" binding:"required"`
		Name       string `json:"name" binding:"required"`
		Mobile     string `json:"mobile" binding:"omitempty,mobile"`
		Email      string `json:"email" binding:"omitempty,email"`
		PANNumber  string `json:"pan_number" binding:"omitempty,pan"`
		Address    string `json:"address"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Broker code and name are required", "error": err.Error()})
		return
	}

	var existing models.Broker
	if err := utils.DB.Where("broker_code = ?", input.BrokerCode).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Broker with this code already exists"})
		return
	}

	broker := models.Broker{
		BrokerCode: input.BrokerCode,
		Name:       input.Name,
		Mobile:     input.Mobile,
		Email:      input.Email,
		PANNumber:  input.PANNumber,
		Address:    input.Address,
	}

	if err := utils.DB.Create(&broker).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Broker with this code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create broker", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "Broker", broker.BrokerCode, "Added broker "+broker.Name)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": broker})
}

func GetBrokers(c *gin.Context) {
	var brokers []models.Broker
	if err := utils.DB.Order("name").Find(&brokers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch brokers", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": brokers})
}

func GetBroker(c *gin.Context) {
	var broker models.Broker
	if err := utils.DB.Where("broker_code = ?", c.Param("broker_code")).First(&broker).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Broker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": broker})
}

func UpdateBroker(c *gin.Context) {
	var broker models.Broker
	if err := utils.DB.Where("broker_code = ?", c.Param("broker_code")).First(&broker).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Broker not found"})
		return
	}

	var input struct {
		Name      *string `json:"name"`
		Mobile    *string `json:"mobile" binding:"omitempty,mobile"`
		Email     *string `json:"email" binding:"omitempty,email"`
		PANNumber *string `json:"pan_number" binding:"omitempty,pan"`
		Address   *string `json:"address"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid broker data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	setIfPresent := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIfPresent("name", input.Name)
	setIfPresent("mobile", input.Mobile)
	setIfPresent("email", input.Email)
	setIfPresent("pan_number", input.PANNumber)
	setIfPresent("address", input.Address)

	if len(updates) > 0 {
		if err := utils.DB.Model(&broker).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update broker", "error": utils.ErrDetail(err)})
			return
		}
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "Broker", broker.BrokerCode, "Updated broker "+broker.BrokerCode)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": broker})
}

func DeleteBroker(c *gin.Context) {
	var broker models.Broker
	if err := utils.DB.Where("broker_code = ?", c.Param("broker_code")).First(&broker).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Broker not found"})
		return
	}

	if err := utils.DB.Delete(&broker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete broker", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "Broker", broker.BrokerCode, "Deleted broker "+broker.BrokerCode)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Broker deleted successfully"})
}
