package migrations

import (
	"realty-admin-server/models"
	"realty-admin-server/utils"
)

func MigrateMasters() {
	utils.DB.AutoMigrate(
		&models.Bank{},
		&models.Broker{},
		&models.InstallmentPlan{},
		&models.InstallmentDetail{},
		&models.Project{},
		&models.Property{},
		&models.PropertySize{},
		&models.PLC{},
		&models.Stock{},
		&models.Customer{},
		&models.CoApplicant{},
	)
}

func MigrateTransactions() {
	utils.DB.AutoMigrate(&models.Booking{})
}

func MigrateAdmin() {
	utils.DB.AutoMigrate(&models.User{}, &models.Log{})
}
