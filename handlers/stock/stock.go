package stock

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

// CreateStock lists a property for sale within a project. The
// (project_id, property_id) pair must not already be listed; the unique
// composite index catches the race the pre-check can lose.
func CreateStock(c *gin.Context) {
	var input struct {
		ProjectID  uint             `json:"project_id" binding:"required"`
		PropertyID uint             `json:"property_id" binding:"required"`
		BSP        decimal.Decimal  `json:"bsp" binding:"required"`
		BrokerID   *uint            `json:"broker_id"`
		Status     string           `json:"status"`
		TillDate   *time.Time       `json:"till_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project id, property id and BSP are required"})
		return
	}

	var project models.Project
	if err := utils.DB.First(&project, input.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected project does not exist"})
		return
	}

	var property models.Property
	if err := utils.DB.First(&property, input.PropertyID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected property does not exist"})
		return
	}

	if input.BrokerID != nil {
		var broker models.Broker
		if err := utils.DB.First(&broker, *input.BrokerID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected broker does not exist"})
			return
		}
	}

	var existing models.Stock
	if err := utils.DB.Where("project_id = ? AND property_id = ?", input.ProjectID, input.PropertyID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Property already exists in stock for this project"})
		return
	}

	status := input.Status
	if status == "" {
		status = models.StockStatusFree
	}
	tillDate, err := normalizeStatus(status, input.TillDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	entry := models.Stock{
		ProjectID:  input.ProjectID,
		PropertyID: input.PropertyID,
		BSP:        input.BSP,
		BrokerID:   input.BrokerID,
		Status:     status,
		TillDate:   tillDate,
	}

	if err := utils.DB.Create(&entry).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Property already exists in stock for this project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create stock entry", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "Stock", strconv.FormatUint(uint64(entry.ID), 10), "Added property to stock for project "+project.Name)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

func GetStock(c *gin.Context) {
	var entries []models.Stock
	query := utils.DB
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch stock", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// UpdateStock edits a stock entry. Setting status to Hold requires a
// till-date; setting it to Free clears any stored till-date.
func UpdateStock(c *gin.Context) {
	var entry models.Stock
	if err := utils.DB.First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Stock entry not found"})
		return
	}

	var input struct {
		BSP      *decimal.Decimal `json:"bsp"`
		BrokerID *uint            `json:"broker_id"`
		Status   *string          `json:"status"`
		TillDate *time.Time       `json:"till_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.BSP != nil {
		updates["bsp"] = *input.BSP
	}
	if input.BrokerID != nil {
		var broker models.Broker
		if err := utils.DB.First(&broker, *input.BrokerID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected broker does not exist"})
			return
		}
		updates["broker_id"] = *input.BrokerID
	}
	if input.Status != nil {
		tillDate, err := normalizeStatus(*input.Status, input.TillDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		updates["status"] = *input.Status
		updates["till_date"] = tillDate
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&entry).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update stock entry", "error": utils.ErrDetail(err)})
			return
		}
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "Stock", strconv.FormatUint(uint64(entry.ID), 10), "Updated stock entry")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

func DeleteStock(c *gin.Context) {
	var entry models.Stock
	if err := utils.DB.First(&entry, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Stock entry not found"})
		return
	}

	if err := utils.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete stock entry", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "Stock", strconv.FormatUint(uint64(entry.ID), 10), "Removed stock entry")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Stock entry deleted successfully"})
}
