package stock

import (
	"testing"
	"time"

	"realty-admin-server/models"
)

func TestNormalizeStatus(t *testing.T) {
	till := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	got, err := normalizeStatus(models.StockStatusHold, &till)
	if err != nil {
		t.Fatalf("Hold with till date rejected: %v", err)
	}
	if got == nil || !got.Equal(till) {
		t.Errorf("Hold should keep the till date, got %v", got)
	}

	if _, err := normalizeStatus(models.StockStatusHold, nil); err == nil {
		t.Error("Hold without a till date accepted")
	}

	got, err = normalizeStatus(models.StockStatusFree, &till)
	if err != nil {
		t.Fatalf("Free rejected: %v", err)
	}
	if got != nil {
		t.Errorf("Free should clear the till date, got %v", got)
	}

	if _, err := normalizeStatus("Reserved", nil); err == nil {
		t.Error("unknown status accepted")
	}
}
