package models

type InstallmentPlan struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	PlanName         string `gorm:"column:plan_name;unique;not null" json:"plan_name"`
	NoOfInstallments int    `gorm:"column:no_of_installments;not null" json:"no_of_installments"`
}

func (InstallmentPlan) TableName() string {
	return "installment_plans"
}
