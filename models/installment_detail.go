package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentDetail is one row of a plan's schedule. DueDate is always a
// concrete date by the time the row is persisted; the attachment handler
// resolves it from either the supplied date or due_after_days.
type InstallmentDetail struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	PlanName          string          `gorm:"column:plan_name;index;not null" json:"plan_name"`
	InstallmentNumber int             `gorm:"column:installment_number;not null" json:"installment_number"`
	Amount            decimal.Decimal `gorm:"type:decimal(14,2)" json:"amount"`
	Percentage        decimal.Decimal `gorm:"type:decimal(6,2)" json:"percentage"`
	DueDate           time.Time       `gorm:"column:due_date;not null" json:"due_date"`
	Remarks           string          `json:"remarks"`
}

func (InstallmentDetail) TableName() string {
	return "installment_details"
}
