package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	CustomerID   string `gorm:"column:customer_id;unique;not null" json:"customer_id"`
	Name         string `gorm:"not null" json:"name"`
	FatherName   string `gorm:"column:father_name" json:"father_name"`
	Email        string `gorm:"unique;not null" json:"email"`
	Mobile       string `gorm:"unique;not null" json:"mobile"`
	PANNumber    string `gorm:"column:pan_number;unique;not null" json:"pan_number"`
	AadharNumber string `gorm:"column:aadhar_number;unique;not null" json:"aadhar_number"`
	DOB          string `gorm:"column:dob" json:"dob"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Occupation   string `json:"occupation"`
	Nationality  string `json:"nationality"`
}

func (Customer) TableName() string {
	return "customers"
}
