package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Project struct {
	gorm.Model
	Name          string           `gorm:"unique;not null" json:"name"`
	PlanName      string           `gorm:"column:plan_name;not null" json:"plan_name"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	Pincode       string           `json:"pincode"`
	CompanyName   string           `gorm:"column:company_name" json:"company_name"`
	SignImage     string           `gorm:"column:sign_image" json:"sign_image"`
	Size          *decimal.Decimal `gorm:"type:decimal(14,2)" json:"size,omitempty"`
	MeasuringUnit string           `gorm:"column:measuring_unit" json:"measuring_unit,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
