package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/wb-go/wbf/logger"
)

type BookingRepository struct {
	coll *collection[int64, domain.Booking]
	ids  *idSource
	now  Clock
}

func NewBookingRepo(store kvstore.Store, now Clock, log logger.Logger) *BookingRepository {
	return &BookingRepository{
		coll: newCollection(store, KeyBookings, bookingID, log),
		ids:  &idSource{now: now},
		now:  now,
	}
}

func bookingID(b *domain.Booking) int64 { return b.ID }

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	res, err := r.coll.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return res, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok, err := r.coll.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

// ListByDate returns the bookings of date that still hold their slot.
func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var res []*domain.Booking
	for _, b := range all {
		if b.Date == date && b.Status.Holds() {
			res = append(res, b)
		}
	}
	return res, nil
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var res []*domain.Booking
	for _, b := range all {
		if b.Status == status {
			res = append(res, b)
		}
	}
	return res, nil
}

// Add appends a confirmed booking without looking at slot availability.
func (r *BookingRepository) Add(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	var created *domain.Booking
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Booking]) (bool, error) {
		created = r.newBooking(s, in)
		s.append(created, created.ID)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("add booking: %w", err)
	}
	return created, nil
}

// Reserve is Add guarded by a slot check done under the same lock, so two
// callers in this process cannot both take one (date, time).
func (r *BookingRepository) Reserve(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	var created *domain.Booking
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Booking]) (bool, error) {
		for _, b := range s.items {
			if b.Date == in.Date && b.Time == in.Time && b.Status.Holds() {
				return false, domain.ErrSlotTaken
			}
		}
		created = r.newBooking(s, in)
		s.append(created, created.ID)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reserve slot: %w", err)
	}
	return created, nil
}

func (r *BookingRepository) newBooking(s *snapshot[int64, domain.Booking], in domain.BookingInput) *domain.Booking {
	return &domain.Booking{
		ID:          r.ids.next(maxID(s.items, bookingID)),
		Date:        in.Date,
		Time:        in.Time,
		Service:     in.Service,
		ServiceName: in.ServiceName,
		Price:       in.Price,
		Customer:    in.Customer,
		Status:      domain.BookingStatusConfirmed,
		CreatedAt:   r.now().UTC(),
	}
}

func (r *BookingRepository) Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	return r.Modify(ctx, id, func(b *domain.Booking) error {
		patch.Apply(b)
		return nil
	})
}

// Modify applies fn to the stored record under the collection lock. An error
// from fn aborts the write.
func (r *BookingRepository) Modify(ctx context.Context, id int64, fn func(b *domain.Booking) error) (*domain.Booking, error) {
	var updated *domain.Booking
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Booking]) (bool, error) {
		b, ok := s.get(id)
		if !ok {
			return false, domain.ErrBookingNotFound
		}

		next := *b
		if err := fn(&next); err != nil {
			return false, err
		}
		now := r.now().UTC()
		next.UpdatedAt = &now
		*b = next
		updated = b
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return updated, nil
}

// Remove is idempotent.
func (r *BookingRepository) Remove(ctx context.Context, id int64) error {
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Booking]) (bool, error) {
		return s.remove(id), nil
	})
	if err != nil {
		return fmt.Errorf("remove booking: %w", err)
	}
	return nil
}

// CompleteBefore moves confirmed bookings whose slot started before cutoff to
// completed and returns them.
func (r *BookingRepository) CompleteBefore(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	var done []*domain.Booking
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Booking]) (bool, error) {
		now := r.now().UTC()
		for _, b := range s.items {
			if b.Status != domain.BookingStatusConfirmed {
				continue
			}
			start, ok := b.StartsAt(cutoff.Location())
			if !ok || !start.Before(cutoff) {
				continue
			}
			b.Status = domain.BookingStatusCompleted
			b.UpdatedAt = &now
			done = append(done, b)
		}
		return len(done) > 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("complete past bookings: %w", err)
	}
	return done, nil
}
