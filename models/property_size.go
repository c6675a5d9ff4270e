package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PropertySize is a master record for the size + measuring-unit pairs the
// UI offers when defining projects and properties.
type PropertySize struct {
	gorm.Model
	Size          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"size"`
	MeasuringUnit string          `gorm:"column:measuring_unit;not null" json:"measuring_unit"`
}

func (PropertySize) TableName() string {
	return "property_sizes"
}
