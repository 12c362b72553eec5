package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
	"github.com/stpnv0/SlotBooker/internal/workflow"
	"github.com/wb-go/wbf/logger"
)

// Draft is a snapshot of one booking workflow held for an HTTP client.
type Draft struct {
	ID        string
	State     workflow.State
	Selection workflow.Selection
	TouchedAt time.Time
}

type draft struct {
	mu      sync.Mutex
	wf      *workflow.Workflow
	touched time.Time
}

// BookRequest is the one-shot form of a whole workflow.
type BookRequest struct {
	Date     string
	Time     string
	Service  string
	Customer domain.Customer
}

type DraftService struct {
	avail    ports.Availability
	catalog  ports.ServiceRepo
	bookings ports.BookingRepo
	notifier ports.BookingNotifier
	now      func() time.Time
	idleTTL  time.Duration
	logger   logger.Logger

	mu     sync.Mutex
	drafts map[string]*draft
}

func NewDraftService(
	avail ports.Availability,
	catalog ports.ServiceRepo,
	bookings ports.BookingRepo,
	notifier ports.BookingNotifier,
	now func() time.Time,
	idleTTL time.Duration,
	logger logger.Logger,
) *DraftService {
	return &DraftService{
		avail:    avail,
		catalog:  catalog,
		bookings: bookings,
		notifier: notifier,
		now:      now,
		idleTTL:  idleTTL,
		logger:   logger,
		drafts:   make(map[string]*draft),
	}
}

func (s *DraftService) Create(_ context.Context) *Draft {
	id := uuid.NewString()
	d := &draft{
		wf:      workflow.New(s.avail, s.catalog, s.bookings),
		touched: s.now(),
	}

	res := snapshotDraft(id, d)

	s.mu.Lock()
	s.drafts[id] = d
	s.mu.Unlock()

	return res
}

func (s *DraftService) Get(_ context.Context, id string) (*Draft, error) {
	var res *Draft
	err := s.with(id, func(d *draft) error {
		res = snapshotDraft(id, d)
		return nil
	})
	return res, err
}

func (s *DraftService) SelectDate(ctx context.Context, id, date string) (*Draft, error) {
	return s.step(id, func(wf *workflow.Workflow) error { return wf.SelectDate(ctx, date) })
}

func (s *DraftService) SelectTime(ctx context.Context, id, slot string) (*Draft, error) {
	return s.step(id, func(wf *workflow.Workflow) error { return wf.SelectTime(ctx, slot) })
}

func (s *DraftService) SelectService(ctx context.Context, id, serviceID string) (*Draft, error) {
	return s.step(id, func(wf *workflow.Workflow) error { return wf.SelectService(ctx, serviceID) })
}

// Submit commits the draft. The draft stays usable for another booking.
func (s *DraftService) Submit(ctx context.Context, id string, c domain.Customer) (*domain.Booking, error) {
	var b *domain.Booking
	err := s.with(id, func(d *draft) error {
		var err error
		b, err = d.wf.Submit(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.created(ctx, b, "draft")
	return b, nil
}

// Book runs a fresh workflow start to finish. Malformed date, time, service
// and contact fields come back together as one ValidationErrors.
func (s *DraftService) Book(ctx context.Context, req BookRequest) (*domain.Booking, error) {
	wf := workflow.New(s.avail, s.catalog, s.bookings)
	var ve domain.ValidationErrors

	if err := wf.SelectDate(ctx, req.Date); err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		ve.Add("date", "please choose a valid date")
	}
	if err := wf.SelectTime(ctx, req.Time); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoDateSelected):
			if !domain.IsSlot(req.Time) {
				ve.Add("time", "please choose one of the daily slots")
			}
		case errors.Is(err, domain.ErrValidation):
			ve.Add("time", "please choose one of the daily slots")
		default:
			return nil, err
		}
	}
	if err := wf.SelectService(ctx, req.Service); err != nil {
		if !errors.Is(err, domain.ErrServiceNotFound) {
			return nil, err
		}
		ve.Add("service", "please choose a service")
	}

	if len(ve.Fields) > 0 {
		workflow.ValidateCustomer(req.Customer, &ve)
		return nil, ve.Err()
	}

	b, err := wf.Submit(ctx, req.Customer)
	if err != nil {
		return nil, err
	}

	s.created(ctx, b, "book")
	return b, nil
}

// EvictIdle drops drafts untouched for longer than the idle TTL.
func (s *DraftService) EvictIdle(_ context.Context) int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, d := range s.drafts {
		d.mu.Lock()
		idle := d.touched.Before(cutoff)
		d.mu.Unlock()

		if idle {
			delete(s.drafts, id)
			evicted++
		}
	}

	if evicted > 0 {
		s.logger.Debug("idle drafts evicted", logger.Int("count", evicted))
	}
	return evicted
}

func (s *DraftService) step(id string, fn func(wf *workflow.Workflow) error) (*Draft, error) {
	var res *Draft
	err := s.with(id, func(d *draft) error {
		if err := fn(d.wf); err != nil {
			return err
		}
		res = snapshotDraft(id, d)
		return nil
	})
	return res, err
}

// with runs fn under the draft's own lock; the registry lock is not held
// while fn talks to the store.
func (s *DraftService) with(id string, fn func(d *draft) error) error {
	s.mu.Lock()
	d, ok := s.drafts[id]
	s.mu.Unlock()
	if !ok {
		return domain.ErrDraftNotFound
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.touched = s.now()
	return fn(d)
}

func (s *DraftService) created(ctx context.Context, b *domain.Booking, source string) {
	s.logger.Info("booking created",
		logger.Int64("booking_id", b.ID),
		logger.String("date", b.Date),
		logger.String("time", b.Time),
		logger.String("source", source),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), b)
}

func snapshotDraft(id string, d *draft) *Draft {
	return &Draft{
		ID:        id,
		State:     d.wf.State(),
		Selection: d.wf.Selection(),
		TouchedAt: d.touched,
	}
}
