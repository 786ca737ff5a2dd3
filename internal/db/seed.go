package db

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lushlooksbeauty/studio-api/internal/config"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

// EnsureAdmin creates or updates the admin account from environment
// credentials.
func EnsureAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	var admin models.AdminUser
	err = db.Where("email = ?", cfg.AdminEmail).First(&admin).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.AdminUser{
			Name:         "Studio Admin",
			Email:        cfg.AdminEmail,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to create admin user: %v", err)
		}
		return
	}
	if err != nil {
		log.Fatalf("failed to look up admin user: %v", err)
	}

	admin.PasswordHash = string(hashed)
	if err := db.Save(&admin).Error; err != nil {
		log.Fatalf("failed to update admin user: %v", err)
	}
}

// EnsureSettings guarantees the singleton settings row exists.
func EnsureSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.SiteSettings{}).Count(&count)
	if count > 0 {
		return
	}

	settings := models.SiteSettings{
		StudioName: "Lush Looks Beauty",
		HeroText:   "Lashes, brows and skin care by appointment.",
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Fatalf("failed to seed site settings: %v", err)
	}
}
