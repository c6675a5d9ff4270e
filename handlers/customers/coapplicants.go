package customers

import (
	"net/http"
	"strconv"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
)

func CreateCoApplicant(c *gin.Context) {
	var input struct {
		CustomerID   string `json:"customer_id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Relation     string `json:"relation"`
		Email        string `json:"email" binding:"omitempty,email"`
		Mobile       string `json:"mobile" binding:"omitempty,mobile"`
		PANNumber    string `json:"pan_number" binding:"omitempty,pan"`
		AadharNumber string `json:"aadhar_number" binding:"omitempty,aadhar"`
		Address      string `json:"address"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid co-applicant data", "error": err.Error()})
		return
	}

	var customer models.Customer
	if err := utils.DB.Where("customer_id = ?", input.CustomerID).First(&customer).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Selected customer does not exist"})
		return
	}

	coApplicant := models.CoApplicant{
		CustomerID:   input.CustomerID,
		Name:         input.Name,
		Relation:     input.Relation,
		Email:        input.Email,
		Mobile:       input.Mobile,
		PANNumber:    input.PANNumber,
		AadharNumber: input.AadharNumber,
		Address:      input.Address,
	}

	if err := utils.DB.Create(&coApplicant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create co-applicant", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "CoApplicant", strconv.FormatUint(uint64(coApplicant.ID), 10), "Added co-applicant for customer "+input.CustomerID)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": coApplicant})
}

func GetCoApplicants(c *gin.Context) {
	var list []models.CoApplicant
	query := utils.DB
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if err := query.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch co-applicants", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func UpdateCoApplicant(c *gin.Context) {
	var coApplicant models.CoApplicant
	if err := utils.DB.First(&coApplicant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Co-applicant not found"})
		return
	}

	var input struct {
		Name         *string `json:"name"`
		Relation     *string `json:"relation"`
		Email        *string `json:"email" binding:"omitempty,email"`
		Mobile       *string `json:"mobile" binding:"omitempty,mobile"`
		PANNumber    *string `json:"pan_number" binding:"omitempty,pan"`
		AadharNumber *string `json:"aadhar_number" binding:"omitempty,aadhar"`
		Address      *string `json:"address"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid co-applicant data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	setIfPresent := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIfPresent("name", input.Name)
	setIfPresent("relation", input.Relation)
	setIfPresent("email", input.Email)
	setIfPresent("mobile", input.Mobile)
	setIfPresent("pan_number", input.PANNumber)
	setIfPresent("aadhar_number", input.AadharNumber)
	setIfPresent("address", input.Address)

	if len(updates) > 0 {
		if err := utils.DB.Model(&coApplicant).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update co-applicant", "error": utils.ErrDetail(err)})
			return
		}
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "CoApplicant", strconv.FormatUint(uint64(coApplicant.ID), 10), "Updated co-applicant")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": coApplicant})
}

func DeleteCoApplicant(c *gin.Context) {
	var coApplicant models.CoApplicant
	if err := utils.DB.First(&coApplicant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Co-applicant not found"})
		return
	}

	if err := utils.DB.Delete(&coApplicant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete co-applicant", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "CoApplicant", strconv.FormatUint(uint64(coApplicant.ID), 10), "Deleted co-applicant")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Co-applicant deleted successfully"})
}
