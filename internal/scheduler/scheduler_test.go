package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CompletesPast(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	evicter := mocks.NewMockDraftEvicter(t)

	s := New(completer, evicter, 50*time.Millisecond, true, newTestLogger(t))

	completed := []*domain.Booking{
		{ID: 1, Date: "2025-06-09", Time: "10:00", Status: domain.BookingStatusCompleted},
	}
	evicter.EXPECT().EvictIdle(mock.Anything).Return(0)
	completer.EXPECT().CompletePast(mock.Anything).Return(completed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	evicter := mocks.NewMockDraftEvicter(t)

	s := New(completer, evicter, 50*time.Millisecond, true, newTestLogger(t))

	evicter.EXPECT().EvictIdle(mock.Anything).Return(2)
	completer.EXPECT().CompletePast(mock.Anything).Return(nil, errors.New("store down"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(evicter.Calls), 1)
	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	evicter := mocks.NewMockDraftEvicter(t)

	s := New(completer, evicter, time.Second, true, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	evicter := mocks.NewMockDraftEvicter(t)

	s := New(completer, evicter, 30*time.Millisecond, true, newTestLogger(t))

	evicter.EXPECT().EvictIdle(mock.Anything).Return(0).Times(3)
	completer.EXPECT().CompletePast(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(completer.Calls), 3)
}

func TestScheduler_Tick_AutoCompleteOff(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	evicter := mocks.NewMockDraftEvicter(t)

	s := New(completer, evicter, 30*time.Millisecond, false, newTestLogger(t))

	evicter.EXPECT().EvictIdle(mock.Anything).Return(0)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(evicter.Calls), 1)
	completer.AssertNotCalled(t, "CompletePast", mock.Anything)
}
