package banks

import (
	"net/http"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
)

func CreateBank(c *gin.Context) {
	var input struct {
		IFSCCode string `json:"ifsc_code" binding:"required,ifsc"`
		BankName string `json:"bank_name" binding:"required"`
		Branch   string `json:"branch"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A valid IFSC code and bank name are required"})
		return
	}

	var existing models.Bank
	if err := utils.DB.Where("ifsc_code = ?", input.IFSCCode).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Bank with this IFSC code already exists"})
		return
	}

	bank := models.Bank{
		IFSCCode: input.IFSCCode,
		BankName: input.BankName,
		Branch:   input.Branch,
		Address:  input.Address,
		City:     input.City,
		State:    input.State,
	}

	if err := utils.DB.Create(&bank).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Bank with this IFSC code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create bank", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "Bank", bank.IFSCCode, "Added bank "+bank.BankName+" ("+bank.IFSCCode+")")
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": bank})
}

func GetBanks(c *gin.Context) {
	var banks []models.Bank
	if err := utils.DB.Order("bank_name").Find(&banks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch banks", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": banks})
}

func GetBank(c *gin.Context) {
	var bank models.Bank
	if err := utils.DB.Where("ifsc_code = ?", c.Param("ifsc_code")).First(&bank).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Bank not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bank})
}

func UpdateBank(c *gin.Context) {
	var bank models.Bank
	if err := utils.DB.Where("ifsc_code = ?", c.Param("ifsc_code")).First(&bank).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Bank not found"})
		return
	}

	var input struct {
		BankName *string `json:"bank_name"`
		Branch   *string `json:"branch"`
		Address  *string `json:"address"`
		City     *string `json:"city"`
		State    *string `json:"state"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid bank data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	setIfPresent := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIfPresent("bank_name", input.BankName)
	setIfPresent("branch", input.Branch)
	setIfPresent("address", input.Address)
	setIfPresent("city", input.City)
	setIfPresent("state", input.State)

	if len(updates) > 0 {
		if err := utils.DB.Model(&bank).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update bank", "error": utils.ErrDetail(err)})
			return
		}
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "Bank", bank.IFSCCode, "Updated bank "+bank.IFSCCode)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bank})
}

func DeleteBank(c *gin.Context) {
	var bank models.Bank
	if err := utils.DB.Where("ifsc_code = ?", c.Param("ifsc_code")).First(&bank).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Bank not found"})
		return
	}

	if err := utils.DB.Delete(&bank).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete bank", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "Bank", bank.IFSCCode, "Deleted bank "+bank.IFSCCode)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bank deleted successfully"})
}
