package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hoteleo-server/models"
)

// BookingService wraps *gorm.DB for the booking lifecycle on a room's
// embedded booked_dates entries.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// UserBooking is one guest's booking flattened out of its owning room.
type UserBooking struct {
	BookingID string    `json:"bookingId"`
	RoomID    uint      `json:"roomId"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Date      time.Time `json:"date"`
}

func parseBookingID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidBookingID
	}
	return id.String(), nil
}

// parseStayDate accepts a plain day or a full RFC 3339 timestamp.
func parseStayDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func removeBookingByID(bookings []models.Booking, bookingID string) ([]models.Booking, bool) {
	out := make([]models.Booking, 0, len(bookings))
	removed := false
	for _, b := range bookings {
		if b.ID == bookingID {
			removed = true
			continue
		}
		out = append(out, b)
	}
	return out, removed
}

func setBookingDate(bookings []models.Booking, bookingID string, date time.Time) bool {
	for i := range bookings {
		if bookings[i].ID == bookingID {
			bookings[i].Date = date
			return true
		}
	}
	return false
}

// Book appends a new booking entry to the room and marks it unavailable,
// both in a single UPDATE. There is no date-conflict or prior-availability
// check: two bookings on the same room both succeed.
func (s *BookingService) Book(rawRoomID, name, email, date string) (models.Room, error) {
	var room models.Room

	roomID, err := parseRoomID(rawRoomID)
	if err != nil {
		return room, err
	}
	stay, err := parseStayDate(date)
	if err != nil {
		return room, err
	}

	entry := models.Booking{
		ID:     uuid.New().String(),
		RoomID: roomID,
		Name:   name,
		Email:  email,
		Date:   stay,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		room.BookedDates = append(room.BookedDates, entry)
		room.Availability = false

		if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
			Updates(map[string]interface{}{
				"availability": false,
				"booked_dates": datatypes.NewJSONSlice([]models.Booking(room.BookedDates)),
			}).Error; err != nil {
			return fmt.Errorf("failed to book room %d: %w", roomID, err)
		}
		return nil
	})
	if txErr != nil {
		return models.Room{}, txErr
	}
	return room, nil
}

// UpdateDate replaces the stay date of one embedded booking entry.
func (s *BookingService) UpdateDate(rawRoomID, rawBookingID, newDate string) error {
	roomID, err := parseRoomID(rawRoomID)
	if err != nil {
		return err
	}
	bookingID, err := parseBookingID(rawBookingID)
	if err != nil {
		return err
	}
	date, err := parseStayDate(newDate)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		if !setBookingDate(room.BookedDates, bookingID, date) {
			return ErrBookingNotFound
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
			Update("booked_dates", datatypes.NewJSONSlice([]models.Booking(room.BookedDates))).Error; err != nil {
			return fmt.Errorf("failed to update booking date: %w", err)
		}
		return nil
	})
}

// Cancel removes one embedded booking entry and marks the room available
// again in the same UPDATE. The flag flips even when other bookings remain.
func (s *BookingService) Cancel(rawRoomID, rawBookingID string) error {
	roomID, err := parseRoomID(rawRoomID)
	if err != nil {
		return err
	}
	bookingID, err := parseBookingID(rawBookingID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		remaining, removed := removeBookingByID(room.BookedDates, bookingID)
		if !removed {
			return ErrBookingNotFound
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
			Updates(map[string]interface{}{
				"availability": true,
				"booked_dates": datatypes.NewJSONSlice(remaining),
			}).Error; err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}
		return nil
	})
}

// MyBookings scans every room and collects the caller's booking entries as
// flattened records. Full scan, no index: fine at this collection size.
func (s *BookingService) MyBookings(email string) ([]UserBooking, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}

	bookings := []UserBooking{}
	for _, room := range rooms {
		for _, b := range room.BookedDates {
			if b.Email == email {
				bookings = append(bookings, UserBooking{
					BookingID: b.ID,
					RoomID:    room.ID,
					Title:     room.Title,
					Image:     room.Image,
					Date:      b.Date,
				})
			}
		}
	}
	return bookings, nil
}
