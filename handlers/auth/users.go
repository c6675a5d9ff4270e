package auth

import (
	"net/http"

	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser registers a back-office account. SUPERADMIN accounts may only
// create ADMIN accounts and ADMIN accounts may only create EMPLOYEE accounts.
func CreateUser(c *gin.Context) {
	actor := CurrentUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}

	var input struct {
		UserID   string `json:"user_id" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Mobile   string `json:"mobile" binding:"omitempty,mobile"`
		Role     string `json:"role" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input data", "error": err.Error()})
		return
	}

	if !actor.CanCreateRole(input.Role) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You are not permitted to create a user with this role"})
		return
	}

	var existing models.User
	if err := utils.DB.Where("user_id = ? OR email = ?", input.UserID, input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A user with this user id or email already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user", "error": utils.ErrDetail(err)})
		return
	}

	user := models.User{
		UserID:   input.UserID,
		Name:     input.Name,
		Email:    input.Email,
		Mobile:   input.Mobile,
		Role:     input.Role,
		Password: string(hashed),
		Active:   true,
	}

	if err := utils.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A user with this user id or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user", "error": utils.ErrDetail(err)})
		return
	}

	utils.LogAction(actor.UserID, "CREATE", "User", user.UserID, "Created user "+user.UserID+" with role "+user.Role)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

func GetUsers(c *gin.Context) {
	var users []models.User
	if err := utils.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

func GetUser(c *gin.Context) {
	var user models.User
	if err := utils.DB.Where("user_id = ?", c.Param("user_id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// UpdateUser edits profile fields and the active flag. Role changes go
// through the same hierarchy check as creation.
func UpdateUser(c *gin.Context) {
	actor := CurrentUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}

	var user models.User
	if err := utils.DB.Where("user_id = ?", c.Param("user_id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	var input struct {
		Name   *string `json:"name"`
		Email  *string `json:"email" binding:"omitempty,email"`
		Mobile *string `json:"mobile" binding:"omitempty,mobile"`
		Role   *string `json:"role"`
		Active *bool   `json:"active"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		var other models.User
		if err := utils.DB.Where("email = ? AND user_id <> ?", *input.Email, user.UserID).First(&other).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A user with this email already exists"})
			return
		}
		updates["email"] = *input.Email
	}
	if input.Mobile != nil {
		updates["mobile"] = *input.Mobile
	}
	if input.Role != nil && *input.Role != user.Role {
		if !actor.CanCreateRole(*input.Role) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You are not permitted to assign this role"})
			return
		}
		updates["role"] = *input.Role
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&user).Updates(updates).Error; err != nil {
			if utils.IsDuplicateEntry(err) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "A user with this email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user", "error": utils.ErrDetail(err)})
			return
		}
	}

	utils.LogAction(actor.UserID, "UPDATE", "User", user.UserID, "Updated user "+user.UserID)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// ResetPassword lets an admin set a new password for a managed account.
func ResetPassword(c *gin.Context) {
	actor := CurrentUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}

	var user models.User
	if err := utils.DB.Where("user_id = ?", c.Param("user_id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if user.UserID != actor.UserID && !actor.CanCreateRole(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You are not permitted to reset this user's password"})
		return
	}

	var input struct {
		Password string `json:"password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 8 characters"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to reset password", "error": utils.ErrDetail(err)})
		return
	}

	if err := utils.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to reset password", "error": utils.ErrDetail(err)})
		return
	}

	utils.LogAction(actor.UserID, "UPDATE", "User", user.UserID, "Reset password for "+user.UserID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
}

func DeleteUser(c *gin.Context) {
	actor := CurrentUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}

	var user models.User
	if err := utils.DB.Where("user_id = ?", c.Param("user_id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if user.UserID == actor.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot delete your own account"})
		return
	}

	if !actor.CanCreateRole(user.Role) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You are not permitted to delete this user"})
		return
	}

	if err := utils.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user", "error": utils.ErrDetail(err)})
		return
	}

	utils.LogAction(actor.UserID, "DELETE", "User", user.UserID, "Deleted user "+user.UserID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}
