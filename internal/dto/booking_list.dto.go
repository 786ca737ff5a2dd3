package dto

import "time"

type BookingListDTO struct {
	ID              uint      `json:"id"`
	TicketID        string    `json:"ticket_id"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	TimeSlotDisplay string    `json:"time_slot_display"`
	Status          string    `json:"status"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	ServiceNames    []string  `json:"service_names"`
	DiscountApplied bool      `json:"discount_applied"`
	CreatedAt       time.Time `json:"created_at"`
}
