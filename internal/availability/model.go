// Package availability answers which slots and days can still be booked.
// Nothing is cached: every answer is computed from the booking collection as
// it is at call time.
package availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type BookingSource interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Booking, error)
}

type BlockReason string

const (
	ReasonNone        BlockReason = ""
	ReasonPast        BlockReason = "past"
	ReasonRestDay     BlockReason = "rest_day"
	ReasonFullyBooked BlockReason = "fully_booked"
)

type SlotState struct {
	Time      string
	Label     string
	Available bool
}

type DayState struct {
	Date        string
	Weekday     time.Weekday
	Today       bool
	Past        bool
	RestDay     bool
	FullyBooked bool
	Selectable  bool
	Bookings    int
}

type Model struct {
	bookings BookingSource
	now      func() time.Time
	loc      *time.Location
	restDays map[time.Weekday]bool
}

func New(bookings BookingSource, now func() time.Time, loc *time.Location, restDays []time.Weekday) *Model {
	if loc == nil {
		loc = time.UTC
	}
	rd := make(map[time.Weekday]bool, len(restDays))
	for _, d := range restDays {
		rd[d] = true
	}
	return &Model{bookings: bookings, now: now, loc: loc, restDays: rd}
}

// BookedTimes is the set of slot values held by non-cancelled bookings of date.
func (m *Model) BookedTimes(ctx context.Context, date string) (map[string]struct{}, error) {
	bookings, err := m.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.Time] = struct{}{}
	}
	return booked, nil
}

func (m *Model) IsSlotAvailable(ctx context.Context, date, slot string) (bool, error) {
	booked, err := m.BookedTimes(ctx, date)
	if err != nil {
		return false, err
	}
	_, taken := booked[slot]
	return !taken, nil
}

func (m *Model) IsDateBlocked(ctx context.Context, date string) (bool, error) {
	reason, err := m.BlockReason(ctx, date)
	if err != nil {
		return false, err
	}
	return reason != ReasonNone, nil
}

// BlockReason reports the first of past, rest day, fully booked that applies.
// Today is never past.
func (m *Model) BlockReason(ctx context.Context, date string) (BlockReason, error) {
	d, err := domain.ParseDate(date, m.loc)
	if err != nil {
		return ReasonNone, err
	}

	if d.Before(m.today()) {
		return ReasonPast, nil
	}
	if m.restDays[d.Weekday()] {
		return ReasonRestDay, nil
	}

	booked, err := m.BookedTimes(ctx, date)
	if err != nil {
		return ReasonNone, err
	}
	if coversAllSlots(booked) {
		return ReasonFullyBooked, nil
	}

	return ReasonNone, nil
}

// Slots lists the daily grid for date with availability and display labels.
func (m *Model) Slots(ctx context.Context, date string) ([]SlotState, error) {
	if _, err := domain.ParseDate(date, m.loc); err != nil {
		return nil, err
	}

	booked, err := m.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	res := make([]SlotState, 0, len(domain.Slots))
	for _, s := range domain.Slots {
		_, taken := booked[s]
		res = append(res, SlotState{Time: s, Label: domain.SlotLabel(s), Available: !taken})
	}
	return res, nil
}

// Month returns one entry per calendar day of month. The whole collection is
// read once.
func (m *Model) Month(ctx context.Context, year int, month time.Month) ([]DayState, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be 1..12", domain.ErrValidation)
	}

	all, err := m.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("month calendar: %w", err)
	}

	held := make(map[string]map[string]struct{})
	counts := make(map[string]int)
	for _, b := range all {
		counts[b.Date]++
		if !b.Status.Holds() {
			continue
		}
		if held[b.Date] == nil {
			held[b.Date] = make(map[string]struct{})
		}
		held[b.Date][b.Time] = struct{}{}
	}

	today := m.today()
	first := time.Date(year, month, 1, 0, 0, 0, 0, m.loc)
	var days []DayState
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		key := domain.FormatDate(d)
		st := DayState{
			Date:        key,
			Weekday:     d.Weekday(),
			Today:       d.Equal(today),
			Past:        d.Before(today),
			RestDay:     m.restDays[d.Weekday()],
			FullyBooked: coversAllSlots(held[key]),
			Bookings:    counts[key],
		}
		st.Selectable = !st.Past && !st.RestDay && !st.FullyBooked
		days = append(days, st)
	}

	return days, nil
}

func (m *Model) today() time.Time {
	n := m.now().In(m.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, m.loc)
}

func coversAllSlots(booked map[string]struct{}) bool {
	for _, s := range domain.Slots {
		if _, ok := booked[s]; !ok {
			return false
		}
	}
	return true
}

// ParseWeekdays turns names like "friday" or "sat" into weekdays.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	res := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if n == full || n == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: unknown weekday %q", domain.ErrValidation, name)
}
