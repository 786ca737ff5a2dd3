package models

import "time"

// Admin override: slots blocked on a specific date, on top of
// whatever is already booked.
type UnavailableDate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date      string   `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	TimeSlots []string `gorm:"serializer:json;type:text" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
