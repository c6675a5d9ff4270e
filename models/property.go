package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	PropertyType  string          `gorm:"column:property_type;not null" json:"property_type"`
	Size          decimal.Decimal `gorm:"type:decimal(14,2)" json:"size"`
	MeasuringUnit string          `gorm:"column:measuring_unit" json:"measuring_unit"`
	CustomerID    *string         `gorm:"column:customer_id" json:"customer_id,omitempty"`
	AllotmentDate *time.Time      `gorm:"column:allotment_date" json:"allotment_date,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}
