package seed

import (
	"errors"
	"log"
	"os"

	"realty-admin-server/models"
	"realty-admin-server/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the bootstrap SUPERADMIN account on first run so
// the system is reachable before any users exist. Skipped when any
// SUPERADMIN is already present.
func SeedSuperAdmin() error {
	var existing models.User
	err := utils.DB.Where("role = ?", models.RoleSuperAdmin).First(&existing).Error
	if err == nil {
		log.Println("SUPERADMIN account already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		UserID:   "superadmin",
		Name:     "Super Admin",
		Email:    "superadmin@localhost",
		Role:     models.RoleSuperAdmin,
		Password: string(hashed),
		Active:   true,
	}

	if err := utils.DB.Create(&user).Error; err != nil {
		return err
	}

	log.Println("SUPERADMIN account seeded successfully.")
	return nil
}
