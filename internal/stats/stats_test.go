package stats

import (
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

// Tuesday
var now = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func booking(date string, status domain.BookingStatus, price float64, email string) *domain.Booking {
	return &domain.Booking{
		Date:     date,
		Time:     "10:00",
		Price:    price,
		Status:   status,
		Customer: domain.Customer{Email: email},
	}
}

func TestCompute_Empty(t *testing.T) {
	st := Compute(nil, now, time.Sunday)

	assert.Equal(t, domain.Statistics{}, st)
	assert.Zero(t, st.CompletionRate)
}

func TestCompute_Counts(t *testing.T) {
	bookings := []*domain.Booking{
		booking("2025-06-10", domain.BookingStatusConfirmed, 150, "a@example.com"),
		booking("2025-06-10", domain.BookingStatusCancelled, 250, "b@example.com"),
		booking("2025-06-10", domain.BookingStatusPending, 350, "c@example.com"),
		booking("2025-06-02", domain.BookingStatusCompleted, 500, "a@example.com"),
		nil,
	}

	st := Compute(bookings, now, time.Sunday)

	assert.Equal(t, 4, st.TotalBookings)
	assert.Equal(t, 2, st.TodayBookings, "cancelled excluded")
	assert.Equal(t, 1, st.ConfirmedBookings)
	assert.Equal(t, 1, st.PendingBookings)
	assert.Equal(t, 1, st.CancelledBookings)
	assert.Equal(t, 1, st.CompletedBookings)
	assert.Equal(t, 1000.0, st.TotalRevenue)
	assert.Equal(t, 3, st.TotalCustomers)
	assert.Equal(t, 3, st.WeeklyBookings)
	assert.Equal(t, 25, st.CompletionRate)
}

func TestCompute_SameEmailCountedOnce(t *testing.T) {
	bookings := []*domain.Booking{
		booking("2025-06-11", domain.BookingStatusConfirmed, 0, "sara@example.com"),
		booking("2025-06-18", domain.BookingStatusConfirmed, 0, "sara@example.com"),
		booking("2025-06-19", domain.BookingStatusConfirmed, 0, ""),
	}

	st := Compute(bookings, now, time.Sunday)

	assert.Equal(t, 1, st.TotalCustomers)
}

func TestCompute_CompletionRateRounds(t *testing.T) {
	bookings := []*domain.Booking{
		booking("2025-06-01", domain.BookingStatusCompleted, 0, ""),
		booking("2025-06-01", domain.BookingStatusConfirmed, 0, ""),
		booking("2025-06-01", domain.BookingStatusConfirmed, 0, ""),
	}

	assert.Equal(t, 33, Compute(bookings, now, time.Sunday).CompletionRate)

	bookings[1].Status = domain.BookingStatusCompleted
	assert.Equal(t, 67, Compute(bookings, now, time.Sunday).CompletionRate)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name      string
		weekStart time.Weekday
		want      string
	}{
		{name: "sunday", weekStart: time.Sunday, want: "2025-06-08"},
		{name: "monday", weekStart: time.Monday, want: "2025-06-09"},
		{name: "same day", weekStart: time.Tuesday, want: "2025-06-10"},
		{name: "saturday", weekStart: time.Saturday, want: "2025-06-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(now, tt.weekStart)
			assert.Equal(t, tt.want, domain.FormatDate(got))
			assert.Zero(t, got.Hour())
		})
	}
}

func TestTasks(t *testing.T) {
	st := Tasks([]*domain.Task{{ID: 1, Completed: true}, {ID: 2}, {ID: 3}})

	assert.Equal(t, domain.TaskStats{Total: 3, Completed: 1, Pending: 2}, st)
}
