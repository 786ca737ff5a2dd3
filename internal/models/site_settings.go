package models

import "time"

// Single-row table; the admin dashboard edits it in place.
type SiteSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudioName string `gorm:"size:100" json:"studio_name"`
	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	HeroText   string `gorm:"size:500" json:"hero_text"`
	Instagram  string `gorm:"size:100" json:"instagram"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
