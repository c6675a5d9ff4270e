package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StockStatusHold = "Hold"
	StockStatusFree = "Free"
)

// Stock lists one property for sale within one project. At most one row may
// exist per (project_id, property_id); the composite unique index backs up
// the handler's pre-insert check.
type Stock struct {
	gorm.Model
	ProjectID  uint            `gorm:"column:project_id;uniqueIndex:idx_project_property;not null" json:"project_id"`
	PropertyID uint            `gorm:"column:property_id;uniqueIndex:idx_project_property;not null" json:"property_id"`
	BSP        decimal.Decimal `gorm:"column:bsp;type:decimal(14,2);not null" json:"bsp"`
	BrokerID   *uint           `gorm:"column:broker_id" json:"broker_id,omitempty"`
	Status     string          `gorm:"not null;default:Free" json:"status"`
	TillDate   *time.Time      `gorm:"column:till_date" json:"till_date,omitempty"`
}

func (Stock) TableName() string {
	return "stocks"
}
