package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TicketID string `gorm:"size:20;index" json:"ticket_id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null;index" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	Date     string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	TimeSlot string `gorm:"size:5;not null" json:"time_slot"`   // HH:MM

	Services []Service `gorm:"many2many:booking_services;" json:"services"`

	Notes     string   `gorm:"size:500" json:"notes"`
	PhotoKeys []string `gorm:"serializer:json;type:text" json:"photo_keys"`

	DiscountApplied bool `json:"discount_applied"`

	PaymentReference string `gorm:"size:64;index" json:"payment_reference"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
