package installments

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestResolveDueDate_SuppliedDateWins(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

	got := resolveDueDate("2026-12-15", 30, now)
	want := time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("resolveDueDate with valid date = %v, want %v", got, want)
	}
}

func TestResolveDueDate_FallsBackToDueAfterDays(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		rawDate string
		days    int
		want    time.Time
	}{
		{"empty date", "", 30, now.AddDate(0, 0, 30)},
		{"unparsable date", "15/12/2026", 30, now.AddDate(0, 0, 30)},
		{"garbage date", "not-a-date", 7, now.AddDate(0, 0, 7)},
		{"missing days defaults to today", "", 0, now},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveDueDate(tc.rawDate, tc.days, now)
			if !got.Equal(tc.want) {
				t.Errorf("resolveDueDate(%q, %d) = %v, want %v", tc.rawDate, tc.days, got, tc.want)
			}
		})
	}
}

func TestResolveDueDate_MonthRollover(t *testing.T) {
	now := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)

	got := resolveDueDate("", 10, now)
	want := time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("resolveDueDate rollover = %v, want %v", got, want)
	}
}

func TestCoalesceMoney(t *testing.T) {
	fifty := decimal.NewFromInt(50)
	lakh := decimal.NewFromInt(100000)

	a, p := coalesceMoney(nil, &fifty)
	if !a.IsZero() {
		t.Errorf("nil amount should coalesce to 0, got %s", a)
	}
	if !p.Equal(fifty) {
		t.Errorf("percentage = %s, want 50", p)
	}

	a, p = coalesceMoney(&lakh, nil)
	if !a.Equal(lakh) {
		t.Errorf("amount = %s, want 100000", a)
	}
	if !p.IsZero() {
		t.Errorf("nil percentage should coalesce to 0, got %s", p)
	}

	a, p = coalesceMoney(nil, nil)
	if !a.IsZero() || !p.IsZero() {
		t.Errorf("both nil should coalesce to 0/0, got %s/%s", a, p)
	}
}

func TestValidateInstallmentNumbers(t *testing.T) {
	if err := validateInstallmentNumbers([]int{1, 2, 3}, 3); err != nil {
		t.Errorf("valid numbers rejected: %v", err)
	}

	if err := validateInstallmentNumbers([]int{1, 2, 2}, 3); err == nil {
		t.Error("duplicate installment number accepted")
	}

	if err := validateInstallmentNumbers([]int{0, 1}, 3); err == nil {
		t.Error("installment number 0 accepted")
	}

	if err := validateInstallmentNumbers([]int{1, 4}, 3); err == nil {
		t.Error("installment number beyond plan count accepted")
	}

	if err := validateInstallmentNumbers(nil, 3); err != nil {
		t.Errorf("empty set rejected: %v", err)
	}
}
