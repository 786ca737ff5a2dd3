package models

import "time"

type NewsletterSubscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email            string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	UnsubscribeToken string `gorm:"size:36;uniqueIndex;not null" json:"-"`
	Active           bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
