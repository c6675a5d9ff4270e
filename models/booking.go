package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model
	CustomerID  string          `gorm:"column:customer_id;not null" json:"customer_id"`
	ProjectID   uint            `gorm:"column:project_id;not null" json:"project_id"`
	PropertyID  uint            `gorm:"column:property_id;not null" json:"property_id"`
	BrokerID    *uint           `gorm:"column:broker_id" json:"broker_id,omitempty"`
	BookingDate time.Time       `gorm:"column:booking_date;not null" json:"booking_date"`
	BSP         decimal.Decimal `gorm:"column:bsp;type:decimal(14,2)" json:"bsp"`
	PLCCharges  decimal.Decimal `gorm:"column:plc_charges;type:decimal(14,2)" json:"plc_charges"`
	TotalCost   decimal.Decimal `gorm:"column:total_cost;type:decimal(14,2);not null" json:"total_cost"`
	Remarks     string          `json:"remarks"`
}

func (Booking) TableName() string {
	return "bookings"
}
