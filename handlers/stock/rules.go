package stock

import (
	"errors"
	"time"

	"realty-admin-server/models"
)

// normalizeStatus enforces the hold rules: a Hold entry must carry a
// till-date, a Free entry must not. Returns the till-date to persist.
func normalizeStatus(status string, tillDate *time.Time) (*time.Time, error) {
	switch status {
	case models.StockStatusHold:
		if tillDate == nil {
			return nil, errors.New("till date is required when status is Hold")
		}
		return tillDate, nil
	case models.StockStatusFree:
		return nil, nil
	default:
		return nil, errors.New("status must be Hold or Free")
	}
}
