package installments

import (
	"errors"
	"net/http"
	"time"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func CreatePlan(c *gin.Context) {
	var input struct {
		PlanName         string `json:"plan_name" binding:"required"`
		NoOfInstallments int    `json:"no_of_installments" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Plan name and number of installments are required"})
		return
	}

	var existing models.InstallmentPlan
	if err := utils.DB.Where("plan_name = ?", input.PlanName).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Installment plan with this name already exists"})
		return
	}

	plan := models.InstallmentPlan{
		PlanName:         input.PlanName,
		NoOfInstallments: input.NoOfInstallments,
	}

	if err := utils.DB.Create(&plan).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Installment plan with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create installment plan", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "InstallmentPlan", plan.PlanName, "Created installment plan "+plan.PlanName)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": plan})
}

func GetPlans(c *gin.Context) {
	var plans []models.InstallmentPlan
	if err := utils.DB.Order("plan_name").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch installment plans", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": plans})
}

func GetPlan(c *gin.Context) {
	planName := c.Param("plan_name")

	var plan models.InstallmentPlan
	if err := utils.DB.Where("plan_name = ?", planName).First(&plan).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Installment plan not found"})
		return
	}

	var details []models.InstallmentDetail
	if err := utils.DB.Where("plan_name = ?", planName).Order("installment_number").Find(&details).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch installment details", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"plan":    plan,
		"details": details,
	}})
}

type detailInput struct {
	InstallmentNumber int              `json:"installment_number"`
	Amount            *decimal.Decimal `json:"amount"`
	Percentage        *decimal.Decimal `json:"percentage"`
	DueAfterDays      int              `json:"due_after_days"`
	DueDate           string           `json:"due_date"`
	Remarks           string           `json:"remarks"`
}

// UpdatePlan changes the installment count and/or replaces the full detail
// schedule. Replacement deletes every existing row and re-inserts the
// supplied set; the whole update runs in one transaction so a failure
// mid-replacement never leaves the plan with a partial schedule.
func UpdatePlan(c *gin.Context) {
	planName := c.Param("plan_name")

	var plan models.InstallmentPlan
	if err := utils.DB.Where("plan_name = ?", planName).First(&plan).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Installment plan not found"})
		return
	}

	var input struct {
		NoOfInstallments *int           `json:"no_of_installments"`
		Details          *[]detailInput `json:"details"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input data", "error": err.Error()})
		return
	}

	count := plan.NoOfInstallments
	if input.NoOfInstallments != nil {
		if *input.NoOfInstallments < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Number of installments must be positive"})
			return
		}
		count = *input.NoOfInstallments
	}

	if input.Details != nil {
		numbers := make([]int, len(*input.Details))
		for i, d := range *input.Details {
			numbers[i] = d.InstallmentNumber
		}
		if err := validateInstallmentNumbers(numbers, count); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	now := time.Now()
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if input.NoOfInstallments != nil {
			if err := tx.Model(&plan).Update("no_of_installments", count).Error; err != nil {
				return err
			}
		}

		if input.Details == nil {
			return nil
		}

		if err := tx.Where("plan_name = ?", planName).Delete(&models.InstallmentDetail{}).Error; err != nil {
			return err
		}

		for _, d := range *input.Details {
			amount, percentage := coalesceMoney(d.Amount, d.Percentage)
			row := models.InstallmentDetail{
				PlanName:          planName,
				InstallmentNumber: d.InstallmentNumber,
				Amount:            amount,
				Percentage:        percentage,
				DueDate:           resolveDueDate(d.DueDate, d.DueAfterDays, now),
				Remarks:           d.Remarks,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update installment plan", "error": utils.ErrDetail(err)})
		return
	}

	var details []models.InstallmentDetail
	if err := utils.DB.Where("plan_name = ?", planName).Order("installment_number").Find(&details).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch installment details", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "InstallmentPlan", planName, "Updated installment plan "+planName)
	}

	plan.NoOfInstallments = count
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"plan":    plan,
		"details": details,
	}})
}

// DeletePlan removes the schedule rows first and the plan row second:
// children before parent.
func DeletePlan(c *gin.Context) {
	planName := c.Param("plan_name")

	var plan models.InstallmentPlan
	if err := utils.DB.Where("plan_name = ?", planName).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Installment plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch installment plan", "error": utils.ErrDetail(err)})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_name = ?", planName).Delete(&models.InstallmentDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete installment plan", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "InstallmentPlan", planName, "Deleted installment plan "+planName)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Installment plan deleted successfully"})
}
