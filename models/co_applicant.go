package models

import "gorm.io/gorm"

// CoApplicant is an additional applicant attached to a customer's booking
// file. Same identity-format rules as Customer, but no uniqueness across
// co-applicants.
type CoApplicant struct {
	gorm.Model
	CustomerID   string `gorm:"column:customer_id;index;not null" json:"customer_id"`
	Name         string `gorm:"not null" json:"name"`
	Relation     string `json:"relation"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	PANNumber    string `gorm:"column:pan_number" json:"pan_number"`
	AadharNumber string `gorm:"column:aadhar_number" json:"aadhar_number"`
	Address      string `json:"address"`
}

func (CoApplicant) TableName() string {
	return "co_applicants"
}
