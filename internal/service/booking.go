package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
	"github.com/stpnv0/SlotBooker/internal/stats"
	"github.com/wb-go/wbf/logger"
)

// Calendar carries the local-time settings dates are judged by.
type Calendar struct {
	Now       func() time.Time
	Location  *time.Location
	WeekStart time.Weekday
}

func (c Calendar) now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return c.Now().In(loc)
}

type BookingService struct {
	bookings ports.BookingRepo
	catalog  ports.ServiceRepo
	notifier ports.BookingNotifier
	calendar Calendar
	logger   logger.Logger
}

func NewBookingService(
	bookings ports.BookingRepo,
	catalog ports.ServiceRepo,
	notifier ports.BookingNotifier,
	calendar Calendar,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		catalog:  catalog,
		notifier: notifier,
		calendar: calendar,
		logger:   logger,
	}
}

// List filters by status, date and a free-text search over customer name,
// email and booking id, newest date first.
func (s *BookingService) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	res := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Date != "" && b.Date != f.Date {
			continue
		}
		if search != "" && !matches(b, search) {
			continue
		}
		res = append(res, b)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date > res[j].Date
	})

	return res, nil
}

func matches(b *domain.Booking, search string) bool {
	return strings.Contains(strings.ToLower(b.Customer.Name), search) ||
		strings.Contains(strings.ToLower(b.Customer.Email), search) ||
		strings.Contains(strconv.FormatInt(b.ID, 10), search)
}

func (s *BookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// Create is the dashboard's manual add: no availability check, the booking
// is confirmed and carries the catalog's current name and price.
func (s *BookingService) Create(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	var ve domain.ValidationErrors
	if _, err := domain.ParseDate(in.Date, s.calendar.Location); err != nil {
		ve.Add("date", "date must be YYYY-MM-DD")
	}
	if !domain.IsSlot(in.Time) {
		ve.Add("time", "time must be one of the daily slots")
	}
	if !domain.MinLen(in.Customer.Name, 2) {
		ve.Add("name", "please enter a valid name")
	}
	if !domain.ValidEmail(strings.TrimSpace(in.Customer.Email)) {
		ve.Add("email", "please enter a valid email address")
	}

	svc, err := s.catalog.GetByID(ctx, in.Service)
	if err != nil {
		if !errors.Is(err, domain.ErrServiceNotFound) {
			return nil, fmt.Errorf("check service: %w", err)
		}
		ve.Add("service", "unknown service")
	}
	if err = ve.Err(); err != nil {
		return nil, err
	}

	in.ServiceName = svc.Name
	in.Price = svc.Price

	b, err := s.bookings.Add(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", b.ID),
		logger.String("date", b.Date),
		logger.String("time", b.Time),
		logger.String("source", "admin"),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), b)

	return b, nil
}

// Update merges patch into the booking. A status change must pass
// domain.CanTransition; a new service refreshes the denormalized name and price.
func (s *BookingService) Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	var ve domain.ValidationErrors
	if patch.Date != nil {
		if _, err := domain.ParseDate(*patch.Date, s.calendar.Location); err != nil {
			ve.Add("date", "date must be YYYY-MM-DD")
		}
	}
	if patch.Time != nil && !domain.IsSlot(*patch.Time) {
		ve.Add("time", "time must be one of the daily slots")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		ve.Add("status", "unknown status")
	}
	if patch.Customer != nil {
		if !domain.MinLen(patch.Customer.Name, 2) {
			ve.Add("name", "please enter a valid name")
		}
		if !domain.ValidEmail(strings.TrimSpace(patch.Customer.Email)) {
			ve.Add("email", "please enter a valid email address")
		}
	}
	if patch.Service != nil {
		svc, err := s.catalog.GetByID(ctx, *patch.Service)
		switch {
		case err == nil:
			patch.ServiceName = &svc.Name
			patch.Price = &svc.Price
		case errors.Is(err, domain.ErrServiceNotFound):
			ve.Add("service", "unknown service")
		default:
			return nil, fmt.Errorf("check service: %w", err)
		}
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	var from domain.BookingStatus
	updated, err := s.bookings.Modify(ctx, id, func(b *domain.Booking) error {
		from = b.Status
		if patch.Status != nil && !domain.CanTransition(b.Status, *patch.Status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, b.Status, *patch.Status)
		}
		patch.Apply(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != from {
		s.logger.Info("booking status changed",
			logger.Int64("booking_id", updated.ID),
			logger.String("from", string(from)),
			logger.String("to", string(updated.Status)),
		)
		go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), updated, from)
	}

	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Remove(ctx, id); err != nil {
		return err
	}

	s.logger.Info("booking deleted", logger.Int64("booking_id", id))
	return nil
}

func (s *BookingService) Statistics(ctx context.Context) (domain.Statistics, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	return stats.Compute(all, s.calendar.now(), s.calendar.WeekStart), nil
}

// CompletePast marks confirmed bookings whose slot has already started as
// completed.
func (s *BookingService) CompletePast(ctx context.Context) ([]*domain.Booking, error) {
	done, err := s.bookings.CompleteBefore(ctx, s.calendar.now())
	if err != nil {
		return nil, fmt.Errorf("complete past: %w", err)
	}

	if len(done) > 0 {
		s.logger.Info("past bookings completed",
			logger.Int("count", len(done)),
		)
	}

	return done, nil
}
