package installments_test

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

	"realty-admin-server/handlers/installments"
	"realty-admin-server/migrations"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
)

// Exercises the plan workflow end to end against a real MySQL, pointed at
// by the usual DB_* environment variables.
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
	installments.RegisterInstallmentRoutes(api)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlanWorkflow(t *testing.T) {
	r := setupIntegration(t)

	planName := fmt.Sprintf("STD12-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		utils.DB.Where("plan_name = ?", planName).Delete(&models.InstallmentDetail{})
		utils.DB.Where("plan_name = ?", planName).Delete(&models.InstallmentPlan{})
	})

	// Create the plan.
	w := postJSON(t, r, "/api/master/add-new-installment-plan", map[string]interface{}{
		"plan_name":          planName,
		"no_of_installments": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create plan status = %d, body %s", w.Code, w.Body.String())
	}

	// A second plan with the same name is rejected.
	w = postJSON(t, r, "/api/master/add-new-installment-plan", map[string]interface{}{
		"plan_name":          planName,
		"no_of_installments": 5,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate plan status = %d, want 400", w.Code)
	}

	// Attach two detail rows: one due today, one after 30 days.
	w = postJSON(t, r, "/api/master/add-installment-details", map[string]interface{}{
		"plan_name":          planName,
		"installment_number": []int{1, 2},
		"percentage":         []float64{50, 50},
		"amount":             []float64{0, 0},
		"due_after_days":     []int{0, 30},
		"due_date":           []string{"", ""},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add details status = %d, body %s", w.Code, w.Body.String())
	}

	var details []models.InstallmentDetail
	if err := utils.DB.Where("plan_name = ?", planName).Order("installment_number").Find(&details).Error; err != nil {
		t.Fatalf("load details: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("persisted %d detail rows, want 2", len(details))
	}

	today := time.Now()
	if d := details[0].DueDate.Sub(today); d < -time.Hour || d > time.Hour {
		t.Errorf("first due date = %v, want about now", details[0].DueDate)
	}
	wantSecond := today.AddDate(0, 0, 30)
	if d := details[1].DueDate.Sub(wantSecond); d < -time.Hour || d > time.Hour {
		t.Errorf("second due date = %v, want about today+30d", details[1].DueDate)
	}

	// Out-of-range installment numbers are rejected.
	w = postJSON(t, r, "/api/master/add-installment-details", map[string]interface{}{
		"plan_name":          planName,
		"installment_number": []int{3},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("out-of-range installment status = %d, want 400", w.Code)
	}

	// Delete removes details before the plan; a second delete is a 404.
	req := httptest.NewRequest(http.MethodDelete, "/api/master/installment-plan/"+planName, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete plan status = %d, body %s", w.Code, w.Body.String())
	}

	var remaining int64
	utils.DB.Model(&models.InstallmentDetail{}).Where("plan_name = ?", planName).Count(&remaining)
	if remaining != 0 {
		t.Errorf("%d detail rows left after plan delete, want 0", remaining)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/master/installment-plan/"+planName, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete missing plan status = %d, want 404", w.Code)
	}
}

func TestAttachDetailsToMissingPlan(t *testing.T) {
	r := setupIntegration(t)

	w := postJSON(t, r, "/api/master/add-installment-details", map[string]interface{}{
		"plan_name":          fmt.Sprintf("NOPE-%d", time.Now().UnixNano()),
		"installment_number": []int{1},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("attach to missing plan status = %d, want 404", w.Code)
	}
}
