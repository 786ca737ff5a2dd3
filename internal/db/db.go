package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lushlooksbeauty/studio-api/internal/config"
	"github.com/lushlooksbeauty/studio-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.SiteSettings{},
		&models.AdminUser{},
		&models.Service{},
		&models.UnavailableDate{},
		&models.Booking{},
		&models.NewsletterSubscription{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One confirmed booking per (date, slot). Partial so a cancelled
	// booking frees the slot for a new one. Without this index nothing
	// stops two concurrent admissions from double-booking a slot, so a
	// failed creation must not let the server come up.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_date_slot
        ON bookings (date, time_slot)
        WHERE status = 'confirmed'
    `).Error; err != nil {
		log.Fatalf("failed to create booking slot index: %v", err)
	}

	return db
}
