package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteleo-server/models"
	"hoteleo-server/services"
)

type fakeBookingProvider struct {
	bookRoom   models.Room
	bookErr    error
	updateErr  error
	cancelErr  error
	myBookings []services.UserBooking
	gotEmail   string
	gotRoomID  string
	gotBooking string
	gotDate    string
}

func (f *fakeBookingProvider) Book(roomID, name, email, date string) (models.Room, error) {
	f.gotRoomID = roomID
	return f.bookRoom, f.bookErr
}

func (f *fakeBookingProvider) UpdateDate(roomID, bookingID, newDate string) error {
	f.gotRoomID, f.gotBooking, f.gotDate = roomID, bookingID, newDate
	return f.updateErr
}

func (f *fakeBookingProvider) Cancel(roomID, bookingID string) error {
	f.gotRoomID, f.gotBooking = roomID, bookingID
	return f.cancelErr
}

func (f *fakeBookingProvider) MyBookings(email string) ([]services.UserBooking, error) {
	f.gotEmail = email
	return f.myBookings, nil
}

func newBookingRouter(f *fakeBookingProvider) *gin.Engine {
	bc := NewBookingController(f)
	r := gin.New()
	r.PATCH("/book-room/:id", bc.BookRoom)
	r.GET("/my-bookings", bc.GetMyBookings)
	r.PATCH("/booking-date-update", bc.UpdateBookingDate)
	r.DELETE("/booking-cancel", bc.CancelBooking)
	return r
}

func jsonReq(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBookRoom_Success(t *testing.T) {
	booked := models.Room{
		ID:           3,
		Title:        "Ocean View",
		Availability: false,
		BookedDates: []models.Booking{
			{ID: "b1", RoomID: 3, Name: "Ana", Email: "a@x.com", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	f := &fakeBookingProvider{bookRoom: booked}
	r := newBookingRouter(f)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodPatch, "/book-room/3",
		`{"name":"Ana","email":"a@x.com","date":"2024-01-01"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", f.gotRoomID)

	var got struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Room    models.Room `json:"room"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "Room booked successfully", got.Message)
	assert.False(t, got.Room.Availability)
	require.Len(t, got.Room.BookedDates, 1)
	assert.Equal(t, "b1", got.Room.BookedDates[0].ID)
}

func TestBookRoom_InvalidID(t *testing.T) {
	r := newBookingRouter(&fakeBookingProvider{bookErr: services.ErrInvalidRoomID})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodPatch, "/book-room/abc",
		`{"name":"Ana","email":"a@x.com","date":"2024-01-01"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid room ID")
}

func TestBookRoom_RoomNotFound(t *testing.T) {
	r := newBookingRouter(&fakeBookingProvider{bookErr: services.ErrRoomNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodPatch, "/book-room/99",
		`{"name":"Ana","email":"a@x.com","date":"2024-01-01"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestBookRoom_InvalidDate(t *testing.T) {
	r := newBookingRouter(&fakeBookingProvider{bookErr: services.ErrInvalidDate})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodPatch, "/book-room/3",
		`{"name":"Ana","email":"a@x.com","date":"soon"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format")
}

func TestGetMyBookings_RequiresEmail(t *testing.T) {
	r := newBookingRouter(&fakeBookingProvider{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-bookings", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
}

func TestGetMyBookings_Success(t *testing.T) {
	f := &fakeBookingProvider{myBookings: []services.UserBooking{
		{BookingID: "b1", RoomID: 3, Title: "Ocean View", Image: "x", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}}
	r := newBookingRouter(f)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-bookings?email=a%40x.com", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", f.gotEmail)

	var got []services.UserBooking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ocean View", got[0].Title)
}

func TestUpdateBookingDate_Success(t *testing.T) {
	f := &fakeBookingProvider{}
	r := newBookingRouter(f)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodPatch, "/booking-date-update",
		`{"roomId":"3","bookingId":"b1","newDate":"2024-05-05"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", f.gotRoomID)
	assert.Equal(t, "b1", f.gotBooking)
	assert.Equal(t, "2024-05-05", f.gotDate)
	assert.Contains(t, w.Body.String(), "Booking date updated successfully")
}

func TestUpdateBookingDate_NotFound(t *testing.T) {
	r := newBookingRouter(&fakeBookingProvider{updateErr: services.ErrBookingNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodPatch, "/booking-date-update",
		`{"roomId":"3","bookingId":"b1","newDate":"2024-05-05"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found or already updated")
}

func TestCancelBooking_Success(t *testing.T) {
	f := &fakeBookingProvider{}
	r := newBookingRouter(f)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodDelete, "/booking-cancel",
		`{"roomId":"3","bookingId":"b1"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Booking cancelled successfully")
}

func TestCancelBooking_InvalidIDs(t *testing.T) {
	r := newBookingRouter(&fakeBookingProvider{cancelErr: services.ErrInvalidBookingID})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodDelete, "/booking-cancel",
		`{"roomId":"3","bookingId":"nope"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid roomId or bookingId")
}

func TestCancelBooking_NotFound(t *testing.T) {
	r := newBookingRouter(&fakeBookingProvider{cancelErr: services.ErrBookingNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonReq(http.MethodDelete, "/booking-cancel",
		`{"roomId":"3","bookingId":"b1"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found or already cancelled")
}
