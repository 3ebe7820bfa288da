package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room is the bookable unit. Bookings and reviews live inside the room row
// as JSON array columns, so a booking or review mutation is always a single
// UPDATE on one row.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string  `json:"title" binding:"required" gorm:"type:varchar(255)"`
	Image       string  `json:"image" binding:"required" gorm:"type:text"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description" gorm:"type:text"`
	Location    string  `json:"location" gorm:"type:varchar(255)"`
	BedType     string  `json:"bedType" gorm:"column:bed_type;type:varchar(100)"`
	Size        string  `json:"size" gorm:"type:varchar(50)"`
	MaxGuests   int     `json:"maxGuests" gorm:"column:max_guests"`

	Features  datatypes.JSONSlice[string] `json:"features"`
	Amenities datatypes.JSONSlice[string] `json:"amenities"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`

	// Availability is false while the room carries any booking entry; any
	// cancellation flips it back to true regardless of remaining entries.
	Availability bool `json:"availability" gorm:"default:true"`

	BookedDates datatypes.JSONSlice[Booking] `json:"bookedDates" gorm:"column:booked_dates"`
	Reviews     datatypes.JSONSlice[Review]  `json:"reviews"`
}
