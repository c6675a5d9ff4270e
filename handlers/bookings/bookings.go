package bookings

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

// CreateBooking records a sale against a listed property. The customer,
// project and property must all exist, and the property must be listed in
// the project's stock.
func CreateBooking(c *gin.Context) {
	var input struct {
		CustomerID  string           `json:"customer_id" binding:"required"`
		ProjectID   uint             `json:"project_id" binding:"required"`
		PropertyID  uint             `json:"property_id" binding:"required"`
		BrokerID    *uint            `json:"broker_id"`
		BookingDate *time.Time       `json:"booking_date"`
		BSP         decimal.Decimal  `json:"bsp"`
		PLCCharges  decimal.Decimal  `json:"plc_charges"`
		TotalCost   decimal.Decimal  `json:"total_cost" binding:"required"`
		Remarks     string           `json:"remarks"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Customer, project, property and total cost are required"})
		return
	}

	var customer models.Customer
	if err := utils.DB.Where("customer_id = ?", input.CustomerID).First(&customer).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected customer does not exist"})
		return
	}

	var project models.Project
	if err := utils.DB.First(&project, input.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected project does not exist"})
		return
	}

	var stockEntry models.Stock
	if err := utils.DB.Where("project_id = ? AND property_id = ?", input.ProjectID, input.PropertyID).First(&stockEntry).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Property is not listed in stock for this project"})
		return
	}

	bookingDate := time.Now()
	if input.BookingDate != nil {
		bookingDate = *input.BookingDate
	}

	booking := models.Booking{
		CustomerID:  input.CustomerID,
		ProjectID:   input.ProjectID,
		PropertyID:  input.PropertyID,
		BrokerID:    input.BrokerID,
		BookingDate: bookingDate,
		BSP:         input.BSP,
		PLCCharges:  input.PLCCharges,
		TotalCost:   input.TotalCost,
		Remarks:     input.Remarks,
	}

	if err := utils.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create booking", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "Booking", strconv.FormatUint(uint64(booking.ID), 10), "Booked property for customer "+input.CustomerID)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": booking})
}

func GetBookings(c *gin.Context) {
	var list []models.Booking
	query := utils.DB
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if err := query.Order("booking_date desc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch bookings", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

func UpdateBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	}

	var input struct {
		BrokerID    *uint            `json:"broker_id"`
		BookingDate *time.Time       `json:"booking_date"`
		BSP         *decimal.Decimal `json:"bsp"`
		PLCCharges  *decimal.Decimal `json:"plc_charges"`
		TotalCost   *decimal.Decimal `json:"total_cost"`
		Remarks     *string          `json:"remarks"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid booking data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.BrokerID != nil {
		updates["broker_id"] = *input.BrokerID
	}
	if input.BookingDate != nil {
		updates["booking_date"] = *input.BookingDate
	}
	if input.BSP != nil {
		updates["bsp"] = *input.BSP
	}
	if input.PLCCharges != nil {
		updates["plc_charges"] = *input.PLCCharges
	}
	if input.TotalCost != nil {
		updates["total_cost"] = *input.TotalCost
	}
	if input.Remarks != nil {
		updates["remarks"] = *input.Remarks
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&booking).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update booking", "error": utils.ErrDetail(err)})
			return
		}
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "Booking", strconv.FormatUint(uint64(booking.ID), 10), "Updated booking")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}

func DeleteBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	}

	if err := utils.DB.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete booking", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "Booking", strconv.FormatUint(uint64(booking.ID), 10), "Deleted booking")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}
