package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCompleter interface {
	CompletePast(ctx context.Context) ([]*domain.Booking, error)
}

type draftEvicter interface {
	EvictIdle(ctx context.Context) int
}

// Scheduler runs periodic maintenance. Idle drafts are always dropped; past
// confirmed bookings become completed only when autoComplete is set.
type Scheduler struct {
	bookings     bookingCompleter
	drafts       draftEvicter
	interval     time.Duration
	autoComplete bool
	logger       logger.Logger
}

func New(
	bookings bookingCompleter,
	drafts draftEvicter,
	interval time.Duration,
	autoComplete bool,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookings:     bookings,
		drafts:       drafts,
		interval:     interval,
		autoComplete: autoComplete,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Bool("auto_complete", s.autoComplete),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if evicted := s.drafts.EvictIdle(ctx); evicted > 0 {
		s.logger.Debug("drafts evicted", logger.Int("count", evicted))
	}
	if !s.autoComplete {
		return
	}

	completed, err := s.bookings.CompletePast(ctx)
	if err != nil {
		s.logger.Error("failed to complete past bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range completed {
		s.logger.Info("booking completed",
			logger.Int64("booking_id", b.ID),
			logger.String("date", b.Date),
			logger.String("time", b.Time),
		)
	}
}
