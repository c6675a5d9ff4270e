package stock_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"realty-admin-server/handlers/stock"
	"realty-admin-server/migrations"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func setupIntegration(t *testing.T) *gin.Engine {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires MySQL and DB_* env)")
	}

	gin.SetMode(gin.TestMode)
	utils.ConnectDatabase()
	migrations.MigrateMasters()

	r := gin.New()
	api := r.Group("/api/master")
	stock.RegisterStockRoutes(api)
	return r
}

func TestStockDuplicatePair(t *testing.T) {
	r := setupIntegration(t)

	plan := models.InstallmentPlan{
		PlanName:         fmt.Sprintf("STOCKPLAN-%d", time.Now().UnixNano()),
		NoOfInstallments: 1,
	}
	if err := utils.DB.Create(&plan).Error; err != nil {
		t.Fatalf("create plan: %v", err)
	}
	project := models.Project{
		Name:     fmt.Sprintf("Stock Test Project %d", time.Now().UnixNano()),
		PlanName: plan.PlanName,
	}
	if err := utils.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	property := models.Property{
		PropertyType: "Flat",
		Size:         decimal.NewFromInt(1200),
	}
	if err := utils.DB.Create(&property).Error; err != nil {
		t.Fatalf("create property: %v", err)
	}
	t.Cleanup(func() {
		utils.DB.Where("project_id = ?", project.ID).Delete(&models.Stock{})
		utils.DB.Unscoped().Delete(&property)
		utils.DB.Unscoped().Delete(&project)
		utils.DB.Delete(&plan)
	})

	body, _ := json.Marshal(map[string]interface{}{
		"project_id":  project.ID,
		"property_id": property.ID,
		"bsp":         2500000,
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/master/stock", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := send(); w.Code != http.StatusCreated {
		t.Fatalf("first stock create status = %d, body %s", w.Code, w.Body.String())
	}
	if w := send(); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate stock create status = %d, want 400", w.Code)
	}

	var count int64
	utils.DB.Model(&models.Stock{}).Where("project_id = ? AND property_id = ?", project.ID, property.ID).Count(&count)
	if count != 1 {
		t.Errorf("%d stock rows for the pair, want 1", count)
	}
}
