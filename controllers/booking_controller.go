package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteleo-server/models"
	"hoteleo-server/services"
	"hoteleo-server/utils"
)

// BookingProvider is the booking service surface the controller depends on.
type BookingProvider interface {
	Book(roomID, name, email, date string) (models.Room, error)
	UpdateDate(roomID, bookingID, newDate string) error
	Cancel(roomID, bookingID string) error
	MyBookings(email string) ([]services.UserBooking, error)
}

type BookingController struct {
	Bookings BookingProvider
}

func NewBookingController(bookings BookingProvider) *BookingController {
	return &BookingController{Bookings: bookings}
}

type bookRoomPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

type bookingTargetPayload struct {
	RoomID    string `json:"roomId"`
	BookingID string `json:"bookingId"`
	NewDate   string `json:"newDate,omitempty"`
}

// BookRoom handles PATCH /book-room/:id.
func (bc *BookingController) BookRoom(c *gin.Context) {
	var payload bookRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid booking payload")
		return
	}

	room, err := bc.Bookings.Book(c.Param("id"), payload.Name, payload.Email, payload.Date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRoomID):
			utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid room ID")
		case errors.Is(err, services.ErrInvalidDate):
			utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid date format")
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONMessage(c, http.StatusNotFound, false, "Room not found")
		default:
			log.Printf("book room failed: %v", err)
			utils.JSONMessage(c, http.StatusInternalServerError, false, "Failed to book room")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Room booked successfully",
		"room":    room,
	})
}

// GetMyBookings handles GET /my-bookings. RequireAuth and RequireEmailMatch
// have already verified the email query param against the token claim.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email is required")
		return
	}

	bookings, err := bc.Bookings.MyBookings(email)
	if err != nil {
		log.Printf("my bookings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingDate handles PATCH /booking-date-update.
func (bc *BookingController) UpdateBookingDate(c *gin.Context) {
	var payload bookingTargetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid booking payload")
		return
	}

	if err := bc.Bookings.UpdateDate(payload.RoomID, payload.BookingID, payload.NewDate); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRoomID), errors.Is(err, services.ErrInvalidBookingID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid roomId or bookingId")
		case errors.Is(err, services.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, "Invalid date format")
		case errors.Is(err, services.ErrRoomNotFound), errors.Is(err, services.ErrBookingNotFound):
			utils.JSONMessage(c, http.StatusNotFound, false, "Booking not found or already updated")
		default:
			log.Printf("update booking date failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, true, "Booking date updated successfully")
}

// CancelBooking handles DELETE /booking-cancel.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	var payload bookingTargetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid booking payload")
		return
	}

	if err := bc.Bookings.Cancel(payload.RoomID, payload.BookingID); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRoomID), errors.Is(err, services.ErrInvalidBookingID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid roomId or bookingId")
		case errors.Is(err, services.ErrRoomNotFound), errors.Is(err, services.ErrBookingNotFound):
			utils.JSONMessage(c, http.StatusNotFound, false, "Booking not found or already cancelled")
		default:
			log.Printf("cancel booking failed: %v", err)
			utils.JSONMessage(c, http.StatusInternalServerError, false, "Failed to cancel booking")
		}
		return
	}

	utils.JSONMessage(c, http.StatusOK, true, "Booking cancelled successfully")
}
