package customers_test

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

	"realty-admin-server/handlers/customers"
	"realty-admin-server/migrations"
	"realty-admin-server/models"
	"realty-admin-server/utils"

	"github.com/gin-gonic/gin"
)

func setupIntegration(t *testing.T) *gin.Engine {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires MySQL and DB_* env)")
	}

	gin.SetMode(gin.TestMode)
	utils.RegisterValidations()
	utils.ConnectDatabase()
	migrations.MigrateMasters()

	r := gin.New()
	api := r.Group("/api/master")
	customers.RegisterCustomerRoutes(api)
	return r
}

func postCustomer(t *testing.T, r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/master/add-customer", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerDuplicateEmail(t *testing.T) {
	r := setupIntegration(t)

	suffix := time.Now().UnixNano() % 1_000_000_000
	email := fmt.Sprintf("dup%d@example.com", suffix)
	first := map[string]interface{}{
		"customer_id":   fmt.Sprintf("CUST%d", suffix),
		"name":          "First Customer",
		"email":         email,
		"mobile":        fmt.Sprintf("9%09d", suffix),
		"pan_number":    "ABCDE1234F",
		"aadhar_number": fmt.Sprintf("%012d", suffix),
	}
	t.Cleanup(func() {
		utils.DB.Unscoped().Where("email = ?", email).Delete(&models.Customer{})
	})

	if w := postCustomer(t, r, first); w.Code != http.StatusCreated {
		t.Fatalf("first customer status = %d, body %s", w.Code, w.Body.String())
	}

	second := map[string]interface{}{
		"customer_id":   fmt.Sprintf("CUST%d-2", suffix),
		"name":          "Second Customer",
		"email":         email,
		"mobile":        fmt.Sprintf("8%09d", suffix),
		"pan_number":    "FGHIJ5678K",
		"aadhar_number": fmt.Sprintf("%012d", suffix+1),
	}

	w := postCustomer(t, r, second)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email status = %d, want 409, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field string `json:"field"`
			Code  string `json:"code"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode conflict response: %v", err)
	}
	if resp.Success {
		t.Error("conflict response reports success")
	}
	found := false
	for _, e := range resp.Errors {
		if e.Field == "email" && e.Code == customers.CodeDuplicateEmail {
			found = true
		}
	}
	if !found {
		t.Errorf("conflict errors %v missing email entry", resp.Errors)
	}

	var count int64
	utils.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count)
	if count != 1 {
		t.Errorf("%d customer rows with the email, want 1", count)
	}
}
