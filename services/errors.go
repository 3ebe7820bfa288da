package services

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidRoomID    = errors.New("invalid room id")
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidReview    = errors.New("invalid review data")
)
