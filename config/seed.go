package config

import (
	"log"
	"os"

	"littlelemon-api/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedRoles ensures a row exists for every role in the closed enumeration.
func SeedRoles() error {
	for _, name := range models.AllRoles {
		role := models.Role{Name: name}
		if err := DB.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCategories loads the initial reference categories once.
func SeedCategories() error {
	var n int64
	if err := DB.Model(&models.Category{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	categories := []models.Category{
		{Slug: "appetizers", Title: "Appetizers"},
		{Slug: "mains", Title: "Mains"},
		{Slug: "desserts", Title: "Desserts"},
		{Slug: "beverages", Title: "Beverages"},
	}
	return DB.Create(&categories).Error
}

// SeedAdmin creates the staff account from ADMIN_USERNAME / ADMIN_PASSWORD.
// Skipped when the env vars are unset or the account already exists.
func SeedAdmin() error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil
	}

	var existing models.User
	if err := DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded admin account %q", username)
	return nil
}
