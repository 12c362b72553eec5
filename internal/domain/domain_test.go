package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	st, err := ParseBookingStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusPending, st)

	_, err = ParseBookingStatus("archived")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to BookingStatus
		want     bool
	}{
		{"confirm pending", BookingStatusPending, BookingStatusConfirmed, true},
		{"reopen cancelled", BookingStatusCancelled, BookingStatusPending, true},
		{"cancel confirmed", BookingStatusConfirmed, BookingStatusCancelled, true},
		{"complete confirmed", BookingStatusConfirmed, BookingStatusCompleted, true},
		{"completed stays", BookingStatusCompleted, BookingStatusCompleted, true},
		{"cancel completed", BookingStatusCompleted, BookingStatusCancelled, true},
		{"reopen completed", BookingStatusCompleted, BookingStatusConfirmed, true},
		{"unknown target", BookingStatusPending, BookingStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBookingStatus_Holds(t *testing.T) {
	assert.True(t, BookingStatusPending.Holds())
	assert.True(t, BookingStatusCompleted.Holds())
	assert.False(t, BookingStatusCancelled.Holds())
}

func TestBookingPatch_Apply(t *testing.T) {
	b := &Booking{Date: "2025-06-11", Time: "09:00", Customer: Customer{Name: "Jane", Notes: "x"}}
	tm := "10:00"
	st := BookingStatusCancelled

	BookingPatch{Time: &tm, Status: &st, Customer: &Customer{Name: "John"}}.Apply(b)

	assert.Equal(t, "2025-06-11", b.Date)
	assert.Equal(t, "10:00", b.Time)
	assert.Equal(t, BookingStatusCancelled, b.Status)
	assert.Equal(t, Customer{Name: "John"}, b.Customer)
}

func TestBooking_StartsAt(t *testing.T) {
	b := &Booking{Date: "2025-06-11", Time: "14:00"}
	at, ok := b.StartsAt(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC), at)

	_, ok = (&Booking{Date: "11/06/2025", Time: "14:00"}).StartsAt(time.UTC)
	assert.False(t, ok)
}

func TestSlots(t *testing.T) {
	assert.Len(t, Slots, 8)
	assert.True(t, IsSlot("09:00"))
	assert.False(t, IsSlot("13:00"))
	assert.False(t, IsSlot("9:00"))
}

func TestSlotLabel(t *testing.T) {
	tests := map[string]string{
		"09:00": "9:00 AM",
		"12:00": "12:00 PM",
		"14:00": "2:00 PM",
		"17:00": "5:00 PM",
		"bogus": "bogus",
	}
	for in, want := range tests {
		assert.Equal(t, want, SlotLabel(in), in)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-14", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d.Weekday())
	assert.Equal(t, "2025-06-14", FormatDate(d))

	_, err = ParseDate("2025-6-14", time.UTC)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("jane@example"))
	assert.False(t, ValidEmail("ja ne@example.com"))
}

func TestMinLen(t *testing.T) {
	assert.True(t, MinLen("Jo", 2))
	assert.False(t, MinLen(" J ", 2))
	assert.True(t, MinLen("Юл", 2))
}

func TestValidationErrors(t *testing.T) {
	var ve ValidationErrors
	assert.NoError(t, ve.Err())

	ve.Add("email", "please enter a valid email address")
	ve.Add("phone", "phone is required")

	err := ve.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, ve.Has("phone"))
	assert.False(t, ve.Has("name"))
	assert.Equal(t, "validation error: email: please enter a valid email address; phone: phone is required", err.Error())
}

func TestUser_Sanitize(t *testing.T) {
	u := &User{ID: 1, Email: "a@b.co", PasswordHash: "hash", Role: RoleAdmin}

	s := u.Sanitize()

	assert.Equal(t, int64(1), s.ID)
	assert.Equal(t, RoleAdmin, s.Role)
}
