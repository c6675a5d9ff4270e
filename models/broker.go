package models

import "gorm.io/gorm"

type Broker struct {
	gorm.Model
	BrokerCode string `gorm:"column:broker_code;unique;not null" json:"broker_code"`
	Name       string `gorm:"not null" json:"name"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	PANNumber  string `gorm:"column:pan_number" json:"pan_number"`
	Address    string `json:"address"`
}
