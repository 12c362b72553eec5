package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrDraftNotFound   = errors.New("draft not found")
	ErrNoSession       = errors.New("no active session")
)

var (
	ErrSlotTaken          = errors.New("time slot is already booked")
	ErrDateUnavailable    = errors.New("date is not available for booking")
	ErrNoDateSelected     = errors.New("select a date first")
	ErrIllegalTransition  = errors.New("booking status transition is not allowed")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
