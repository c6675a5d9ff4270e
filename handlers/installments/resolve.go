package installments

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dueDateLayout = "2006-01-02"

// resolveDueDate picks the concrete due date for one installment row: the
// supplied date when it parses, otherwise now + dueAfterDays (a missing
// due_after_days is treated as 0, i.e. due immediately). Every persisted
// row ends up with a real date either way.
func resolveDueDate(rawDate string, dueAfterDays int, now time.Time) time.Time {
	if rawDate != "" {
		if parsed, err := time.Parse(dueDateLayout, rawDate); err == nil {
			return parsed
		}
	}
	return now.AddDate(0, 0, dueAfterDays)
}

// coalesceMoney normalizes the amount/percentage pair: either may be
// omitted, and an omitted side defaults to zero rather than NULL.
func coalesceMoney(amount, percentage *decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	a := decimal.Zero
	p := decimal.Zero
	if amount != nil {
		a = *amount
	}
	if percentage != nil {
		p = *percentage
	}
	return a, p
}

// validateInstallmentNumbers rejects duplicate or out-of-range installment
// numbers before any row is written.
func validateInstallmentNumbers(numbers []int, noOfInstallments int) error {
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > noOfInstallments {
			return fmt.Errorf("installment number %d is outside 1..%d", n, noOfInstallments)
		}
		if seen[n] {
			return fmt.Errorf("installment number %d appears more than once", n)
		}
		seen[n] = true
	}
	return nil
}
