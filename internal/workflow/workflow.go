// Package workflow holds one customer's way through a booking: pick a date,
// a time and a service, then submit contact details.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type State int

const (
	StateNoDate State = iota
	StateDateSelected
	StateTimeSelected
	StateServiceSelected
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateNoDate:
		return "no_date"
	case StateDateSelected:
		return "date_selected"
	case StateTimeSelected:
		return "time_selected"
	case StateServiceSelected:
		return "service_selected"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

type Availability interface {
	IsDateBlocked(ctx context.Context, date string) (bool, error)
	IsSlotAvailable(ctx context.Context, date, slot string) (bool, error)
}

type Catalog interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

type Reserver interface {
	Reserve(ctx context.Context, in domain.BookingInput) (*domain.Booking, error)
}

type Selection struct {
	Date    string
	Time    string
	Service *domain.Service
}

// Workflow is not safe for concurrent use; callers sharing one guard it.
type Workflow struct {
	avail    Availability
	catalog  Catalog
	bookings Reserver

	date    string
	time    string
	service *domain.Service
}

func New(avail Availability, catalog Catalog, bookings Reserver) *Workflow {
	return &Workflow{avail: avail, catalog: catalog, bookings: bookings}
}

// State is derived from what is selected. Service may be chosen at any point
// and does not by itself move the workflow forward.
func (w *Workflow) State() State {
	switch {
	case w.date == "":
		return StateNoDate
	case w.time == "":
		return StateDateSelected
	case w.service == nil:
		return StateTimeSelected
	default:
		return StateServiceSelected
	}
}

func (w *Workflow) Selection() Selection {
	return Selection{Date: w.date, Time: w.time, Service: w.service}
}

// SelectDate moves to a new day and drops the chosen time.
func (w *Workflow) SelectDate(ctx context.Context, date string) error {
	blocked, err := w.avail.IsDateBlocked(ctx, date)
	if err != nil {
		return fmt.Errorf("select date: %w", err)
	}
	if blocked {
		return domain.ErrDateUnavailable
	}

	w.date = date
	w.time = ""
	return nil
}

func (w *Workflow) SelectTime(ctx context.Context, slot string) error {
	if w.date == "" {
		return domain.ErrNoDateSelected
	}
	if !domain.IsSlot(slot) {
		return fmt.Errorf("%w: %q is not a bookable time", domain.ErrValidation, slot)
	}

	ok, err := w.avail.IsSlotAvailable(ctx, w.date, slot)
	if err != nil {
		return fmt.Errorf("select time: %w", err)
	}
	if !ok {
		return domain.ErrSlotTaken
	}

	w.time = slot
	return nil
}

func (w *Workflow) SelectService(ctx context.Context, id string) error {
	svc, err := w.catalog.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("select service: %w", err)
	}

	w.service = svc
	return nil
}

// Submit validates everything first and writes nothing unless all of it
// passes. On success the booking is returned and the workflow starts over.
func (w *Workflow) Submit(ctx context.Context, c domain.Customer) (*domain.Booking, error) {
	c = trimCustomer(c)

	if err := w.validate(c); err != nil {
		return nil, err
	}

	// the day may have turned past or filled up since it was picked
	blocked, err := w.avail.IsDateBlocked(ctx, w.date)
	if err != nil {
		return nil, fmt.Errorf("submit booking: %w", err)
	}
	if blocked {
		w.date, w.time = "", ""
		return nil, domain.ErrDateUnavailable
	}

	b, err := w.bookings.Reserve(ctx, domain.BookingInput{
		Date:        w.date,
		Time:        w.time,
		Service:     w.service.ID,
		ServiceName: w.service.Name,
		Price:       w.service.Price,
		Customer:    c,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			w.time = ""
		}
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	w.Reset()
	return b, nil
}

func (w *Workflow) Reset() {
	w.date = ""
	w.time = ""
	w.service = nil
}

func (w *Workflow) validate(c domain.Customer) error {
	var ve domain.ValidationErrors

	if w.date == "" {
		ve.Add("date", "please choose a date")
	}
	if w.time == "" {
		ve.Add("time", "please choose a time")
	}
	if w.service == nil {
		ve.Add("service", "please choose a service")
	}
	ValidateCustomer(c, &ve)

	return ve.Err()
}

// ValidateCustomer adds a field error to ve for every contact detail that
// does not pass.
func ValidateCustomer(c domain.Customer, ve *domain.ValidationErrors) {
	c = trimCustomer(c)
	if !domain.MinLen(c.Name, 2) {
		ve.Add("name", "please enter a valid name")
	}
	if !domain.ValidEmail(c.Email) {
		ve.Add("email", "please enter a valid email address")
	}
	if !domain.MinLen(c.Phone, 10) {
		ve.Add("phone", "please enter a valid phone number")
	}
}

func trimCustomer(c domain.Customer) domain.Customer {
	return domain.Customer{
		Name:  strings.TrimSpace(c.Name),
		Phone: strings.TrimSpace(c.Phone),
		Email: strings.TrimSpace(c.Email),
		Notes: strings.TrimSpace(c.Notes),
	}
}
