package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var BookingStatuses = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusPending,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
	return st, nil
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Holds reports whether a booking in this status occupies its slot.
func (s BookingStatus) Holds() bool {
	return s != BookingStatusCancelled
}

// CanTransition allows any move between known statuses, completed included.
func CanTransition(from, to BookingStatus) bool {
	return to.Valid()
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type Booking struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Service     string        `json:"service"`
	ServiceName string        `json:"serviceName"`
	Price       float64       `json:"price"`
	Customer    Customer      `json:"customer"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`
}

// StartsAt returns the slot start in loc, or false when date/time are malformed.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type BookingInput struct {
	Date        string
	Time        string
	Service     string
	ServiceName string
	Price       float64
	Customer    Customer
}

// BookingPatch is a shallow update: nil fields are left untouched and a
// non-nil Customer replaces the embedded record as a whole.
type BookingPatch struct {
	Date        *string
	Time        *string
	Service     *string
	ServiceName *string
	Price       *float64
	Customer    *Customer
	Status      *BookingStatus
}

func (p BookingPatch) Apply(b *Booking) {
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Time != nil {
		b.Time = *p.Time
	}
	if p.Service != nil {
		b.Service = *p.Service
	}
	if p.ServiceName != nil {
		b.ServiceName = *p.ServiceName
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Customer != nil {
		b.Customer = *p.Customer
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
}

type BookingFilter struct {
	Status BookingStatus
	Date   string
	Search string
}
