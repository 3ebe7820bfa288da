package models

import "time"

// Booking is one guest's reserved stay, embedded in its owning room's
// booked_dates column. RoomID is a redundant back-reference kept for
// flattened per-user listings.
type Booking struct {
	ID     string    `json:"bookingId"`
	RoomID uint      `json:"roomId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Date   time.Time `json:"date"`
}
