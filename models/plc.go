package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PLC is a Preferential Location Charge: a named surcharge or discount
// applied on top of the basic sale price, either flat or as a percentage.
type PLC struct {
	gorm.Model
	Name         string          `gorm:"unique;not null" json:"name"`
	Value        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"value"`
	IsPercentage bool            `gorm:"column:is_percentage" json:"is_percentage"`
}

func (PLC) TableName() string {
	return "plcs"
}
