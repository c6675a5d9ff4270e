package customers

import (
	"errors"
	"net/http"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errConflict aborts the create/edit transaction once conflicts are found;
// the handler responds from the conflicts slice, not from this error.
var errConflict = errors.New("duplicate customer fields")

func CreateCustomer(c *gin.Context) {
	var input struct {
		CustomerID   string `json:"customer_id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		FatherName   string `json:"father_name"`
		Email        string `json:"email" binding:"required,email"`
		Mobile       string `json:"mobile" binding:"required,mobile"`
		PANNumber    string `json:"pan_number" binding:"required,pan"`
		AadharNumber string `json:"aadhar_number" binding:"required,aadhar"`
		DOB          string `json:"dob"`
		Address      string `json:"address"`
		City         string `json:"city"`
		State        string `json:"state"`
		Pincode      string `json:"pincode" binding:"omitempty,pincode"`
		Occupation   string `json:"occupation"`
		Nationality  string `json:"nationality"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid customer data", "error": err.Error()})
		return
	}

	customer := models.Customer{
		CustomerID:   input.CustomerID,
		Name:         input.Name,
		FatherName:   input.FatherName,
		Email:        input.Email,
		Mobile:       input.Mobile,
		PANNumber:    input.PANNumber,
		AadharNumber: input.AadharNumber,
		DOB:          input.DOB,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		Occupation:   input.Occupation,
		Nationality:  input.Nationality,
	}

	var conflicts []FieldConflict
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		conflicts, txErr = findConflicts(tx, []uniqueField{
			{"customer_id", input.CustomerID, "customer_id", CodeDuplicateID, "A customer with this customer id already exists"},
			{"email", input.Email, "email", CodeDuplicateEmail, "A customer with this email already exists"},
			{"mobile", input.Mobile, "mobile", CodeDuplicateMobile, "A customer with this mobile number already exists"},
			{"pan_number", input.PANNumber, "pan_number", CodeDuplicatePAN, "A customer with this PAN already exists"},
			{"aadhar_number", input.AadharNumber, "aadhar_number", CodeDuplicateAadhar, "A customer with this Aadhar already exists"},
		}, 0)
		if txErr != nil {
			return txErr
		}
		if len(conflicts) > 0 {
			return errConflict
		}
		return tx.Create(&customer).Error
	})

	if errors.Is(err, errConflict) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Customer already exists", "errors": conflicts})
		return
	}
	if err != nil {
		// A concurrent insert can slip between the check and the create;
		// the unique constraints are the authoritative answer.
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Customer already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create customer", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "Customer", customer.CustomerID, "Registered customer "+customer.Name)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": customer})
}

func GetCustomers(c *gin.Context) {
	var list []models.Customer
	if err := utils.DB.Order("name").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch customers", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

func GetCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.Where("customer_id = ?", c.Param("customer_id")).First(&customer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": customer})
}

// UpdateCustomer re-checks uniqueness only for the fields that actually
// changed, excluding the record being edited.
func UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.Where("customer_id = ?", c.Param("customer_id")).First(&customer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}

	var input struct {
		Name         *string `json:"name"`
		FatherName   *string `json:"father_name"`
		Email        *string `json:"email" binding:"omitempty,email"`
		Mobile       *string `json:"mobile" binding:"omitempty,mobile"`
		PANNumber    *string `json:"pan_number" binding:"omitempty,pan"`
		AadharNumber *string `json:"aadhar_number" binding:"omitempty,aadhar"`
		DOB          *string `json:"dob"`
		Address      *string `json:"address"`
		City         *string `json:"city"`
		State        *string `json:"state"`
		Pincode      *string `json:"pincode" binding:"omitempty,pincode"`
		Occupation   *string `json:"occupation"`
		Nationality  *string `json:"nationality"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid customer data", "error": err.Error()})
		return
	}

	var checks []uniqueField
	if input.Email != nil && *input.Email != customer.Email {
		checks = append(checks, uniqueField{"email", *input.Email, "email", CodeDuplicateEmail, "A customer with this email already exists"})
	}
	if input.Mobile != nil && *input.Mobile != customer.Mobile {
		checks = append(checks, uniqueField{"mobile", *input.Mobile, "mobile", CodeDuplicateMobile, "A customer with this mobile number already exists"})
	}
	if input.PANNumber != nil && *input.PANNumber != customer.PANNumber {
		checks = append(checks, uniqueField{"pan_number", *input.PANNumber, "pan_number", CodeDuplicatePAN, "A customer with this PAN already exists"})
	}
	if input.AadharNumber != nil && *input.AadharNumber != customer.AadharNumber {
		checks = append(checks, uniqueField{"aadhar_number", *input.AadharNumber, "aadhar_number", CodeDuplicateAadhar, "A customer with this Aadhar already exists"})
	}

	updates := map[string]interface{}{}
	setIfPresent := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIfPresent("name", input.Name)
	setIfPresent("father_name", input.FatherName)
	setIfPresent("email", input.Email)
	setIfPresent("mobile", input.Mobile)
	setIfPresent("pan_number", input.PANNumber)
	setIfPresent("aadhar_number", input.AadharNumber)
	setIfPresent("dob", input.DOB)
	setIfPresent("address", input.Address)
	setIfPresent("city", input.City)
	setIfPresent("state", input.State)
	setIfPresent("pincode", input.Pincode)
	setIfPresent("occupation", input.Occupation)
	setIfPresent("nationality", input.Nationality)

	var conflicts []FieldConflict
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		conflicts, txErr = findConflicts(tx, checks, customer.ID)
		if txErr != nil {
			return txErr
		}
		if len(conflicts) > 0 {
			return errConflict
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&customer).Updates(updates).Error
	})

	if errors.Is(err, errConflict) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Customer details conflict with an existing customer", "errors": conflicts})
		return
	}
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Customer details conflict with an existing customer"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update customer", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "Customer", customer.CustomerID, "Updated customer "+customer.CustomerID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": customer})
}

func DeleteCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.Where("customer_id = ?", c.Param("customer_id")).First(&customer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customer.CustomerID).Delete(&models.CoApplicant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete customer", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "Customer", customer.CustomerID, "Deleted customer "+customer.CustomerID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted successfully"})
}
