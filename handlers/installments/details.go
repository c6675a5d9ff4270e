package installments

import (
	"net/http"
	"time"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddDetails attaches schedule rows to an existing plan. The request
// carries parallel arrays, one entry per installment; shorter arrays are
// treated as absent entries for the trailing rows.
func AddDetails(c *gin.Context) {
	var input struct {
		PlanName          string             `json:"plan_name" binding:"required"`
		InstallmentNumber []int              `json:"installment_number" binding:"required,min=1"`
		Amount            []*decimal.Decimal `json:"amount"`
		Percentage        []*decimal.Decimal `json:"percentage"`
		DueAfterDays      []int              `json:"due_after_days"`
		DueDate           []string           `json:"due_date"`
		Remarks           []string           `json:"remarks"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Plan name and installment numbers are required"})
		return
	}

	var plan models.InstallmentPlan
	if err := utils.DB.Where("plan_name = ?", input.PlanName).First(&plan).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Installment plan not found"})
		return
	}

	if err := validateInstallmentNumbers(input.InstallmentNumber, plan.NoOfInstallments); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	now := time.Now()
	details := make([]models.InstallmentDetail, 0, len(input.InstallmentNumber))
	for i, number := range input.InstallmentNumber {
		amount, percentage := coalesceMoney(decimalAt(input.Amount, i), decimalAt(input.Percentage, i))
		details = append(details, models.InstallmentDetail{
			PlanName:          input.PlanName,
			InstallmentNumber: number,
			Amount:            amount,
			Percentage:        percentage,
			DueDate:           resolveDueDate(stringAt(input.DueDate, i), intAt(input.DueAfterDays, i), now),
			Remarks:           stringAt(input.Remarks, i),
		})
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		for i := range details {
			if err := tx.Create(&details[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add installment details", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "InstallmentDetail", input.PlanName, "Added installment details to plan "+input.PlanName)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": details})
}

func decimalAt(values []*decimal.Decimal, i int) *decimal.Decimal {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func stringAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func intAt(values []int, i int) int {
	if i < len(values) {
		return values[i]
	}
	return 0
}
