package models

import "gorm.io/gorm"

type Bank struct {
	gorm.Model
	IFSCCode string `gorm:"column:ifsc_code;unique;not null" json:"ifsc_code"`
	BankName string `gorm:"column:bank_name;not null" json:"bank_name"`
	Branch   string `json:"branch"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
}
