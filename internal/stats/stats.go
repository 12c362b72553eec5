// Package stats derives dashboard figures from the booking collection. It
// scans everything on every call and keeps no state.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

// Compute summarizes bookings as seen at now. Today and the week are the
// calendar days of now's location; the week begins on weekStart.
func Compute(bookings []*domain.Booking, now time.Time, weekStart time.Weekday) domain.Statistics {
	today := domain.FormatDate(now)
	week := domain.FormatDate(WeekStart(now, weekStart))

	var st domain.Statistics
	customers := make(map[string]struct{})

	for _, b := range bookings {
		if b == nil {
			continue
		}
		st.TotalBookings++

		switch b.Status {
		case domain.BookingStatusConfirmed:
			st.ConfirmedBookings++
		case domain.BookingStatusPending:
			st.PendingBookings++
		case domain.BookingStatusCancelled:
			st.CancelledBookings++
		case domain.BookingStatusCompleted:
			st.CompletedBookings++
		}

		if b.Status.Holds() {
			st.TotalRevenue += b.Price
			if b.Date == today {
				st.TodayBookings++
			}
		}

		if email := strings.TrimSpace(b.Customer.Email); email != "" {
			customers[email] = struct{}{}
		}

		// both sides are YYYY-MM-DD, so string order is date order
		if b.Date >= week {
			st.WeeklyBookings++
		}
	}

	st.TotalCustomers = len(customers)
	if st.TotalBookings > 0 {
		st.CompletionRate = int(math.Round(100 * float64(st.CompletedBookings) / float64(st.TotalBookings)))
	}

	return st
}

// WeekStart returns midnight of the most recent weekStart on or before t.
func WeekStart(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	d := t.AddDate(0, 0, -back)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

func Tasks(tasks []*domain.Task) domain.TaskStats {
	var st domain.TaskStats
	for _, t := range tasks {
		if t == nil {
			continue
		}
		st.Total++
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}
