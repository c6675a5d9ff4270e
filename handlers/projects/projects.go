package projects

import (
	"net/http"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateProject accepts a multipart form so the optional sign_image file
// can ride along with the project fields.
func CreateProject(c *gin.Context) {
	var input struct {
		Name          string `form:"name" binding:"required"`
		PlanName      string `form:"plan_name" binding:"required"`
		Address       string `form:"address"`
		City          string `form:"city"`
		State         string `form:"state"`
		Pincode       string `form:"pincode" binding:"omitempty,pincode"`
		CompanyName   string `form:"company_name"`
		Size          string `form:"size"`
		MeasuringUnit string `form:"measuring_unit"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project name and installment plan are required", "error": err.Error()})
		return
	}

	var plan models.InstallmentPlan
	if err := utils.DB.Where("plan_name = ?", input.PlanName).First(&plan).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid installment plan selected"})
		return
	}

	var existing models.Project
	if err := utils.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project with this name already exists"})
		return
	}

	project := models.Project{
		Name:          input.Name,
		PlanName:      input.PlanName,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		CompanyName:   input.CompanyName,
		MeasuringUnit: input.MeasuringUnit,
	}

	if input.Size != "" {
		size, err := decimal.NewFromString(input.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Size must be a number"})
			return
		}
		project.Size = &size
	}

	if file, err := c.FormFile("sign_image"); err == nil {
		path, err := saveSignImage(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		project.SignImage = path
	}

	if err := utils.DB.Create(&project).Error; err != nil {
		removeSignImage(project.SignImage)
		if utils.IsDuplicateEntry(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create project", "error": utils.ErrDetail(err)})
		return
	}

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "CREATE", "Project", project.Name, "Created project "+project.Name)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": project})
}

func GetProjects(c *gin.Context) {
	var projects []models.Project
	if err := utils.DB.Order("name").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch projects", "error": utils.ErrDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": projects})
}

func GetProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

// UpdateProject rechecks the plan reference and name uniqueness (excluding
// the project itself) and swaps the sign image file when a new one is sent.
func UpdateProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Project not found"})
		return
	}

	var input struct {
		Name          string `form:"name"`
		PlanName      string `form:"plan_name"`
		Address       string `form:"address"`
		City          string `form:"city"`
		State         string `form:"state"`
		Pincode       string `form:"pincode" binding:"omitempty,pincode"`
		CompanyName   string `form:"company_name"`
		Size          string `form:"size"`
		MeasuringUnit string `form:"measuring_unit"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid project data", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}

	if input.PlanName != "" && input.PlanName != project.PlanName {
		var plan models.InstallmentPlan
		if err := utils.DB.Where("plan_name = ?", input.PlanName).First(&plan).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid installment plan selected"})
			return
		}
		updates["plan_name"] = input.PlanName
	}

	if input.Name != "" && input.Name != project.Name {
		var other models.Project
		if err := utils.DB.Where("name = ? AND id <> ?", input.Name, project.ID).First(&other).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project with this name already exists"})
			return
		}
		updates["name"] = input.Name
	}

	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.City != "" {
		updates["city"] = input.City
	}
	if input.State != "" {
		updates["state"] = input.State
	}
	if input.Pincode != "" {
		updates["pincode"] = input.Pincode
	}
	if input.CompanyName != "" {
		updates["company_name"] = input.CompanyName
	}
	if input.MeasuringUnit != "" {
		updates["measuring_unit"] = input.MeasuringUnit
	}
	if input.Size != "" {
		size, err := decimal.NewFromString(input.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Size must be a number"})
			return
		}
		updates["size"] = size
	}

	oldImage := ""
	if file, err := c.FormFile("sign_image"); err == nil {
		path, err := saveSignImage(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		oldImage = project.SignImage
		updates["sign_image"] = path
	}

	if len(updates) > 0 {
		if err := utils.DB.Model(&project).Updates(updates).Error; err != nil {
			if utils.IsDuplicateEntry(err) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project with this name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update project", "error": utils.ErrDetail(err)})
			return
		}
	}

	// The replaced file is only removed once the row update sticks.
	removeSignImage(oldImage)

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "UPDATE", "Project", project.Name, "Updated project "+project.Name)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

func DeleteProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Project not found"})
		return
	}

	var stockCount int64
	if err := utils.DB.Model(&models.Stock{}).Where("project_id = ?", project.ID).Count(&stockCount).Error; err == nil && stockCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Project has stock entries and cannot be deleted"})
		return
	}

	if err := utils.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete project", "error": utils.ErrDetail(err)})
		return
	}

	removeSignImage(project.SignImage)

	if actor := auth.CurrentUser(c); actor != nil {
		utils.LogAction(actor.UserID, "DELETE", "Project", project.Name, "Deleted project "+project.Name)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}
