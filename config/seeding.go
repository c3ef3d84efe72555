package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"p9e.in/safeguard/models"
)

// SeedDefaults creates the initial admin user and a blank company
// profile on a fresh database. It is safe to call on every startup.
func SeedDefaults() {
	seedAdminUser()
	seedCompanyProfile()
}

func seedAdminUser() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user seed")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("could not hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        "admin@safeguard.local",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("could not seed admin user: %v", err)
		return
	}
	log.Println("Seeded default admin user")
}

func seedCompanyProfile() {
	var count int64
	DB.Model(&models.CompanyProfile{}).Count(&count)
	if count > 0 {
		return
	}

	profile := models.CompanyProfile{Name: "Your Company"}
	if err := DB.Create(&profile).Error; err != nil && err != gorm.ErrDuplicatedKey {
		log.Printf("could not seed company profile: %v", err)
		return
	}
	log.Println("Seeded blank company profile")
}
