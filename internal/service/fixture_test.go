package service

import (
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/auth"
	"github.com/stpnv0/SlotBooker/internal/availability"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/stpnv0/SlotBooker/internal/repository"
	"github.com/stpnv0/SlotBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stack wires the services over an in-memory store the way the app does.
type stack struct {
	now      time.Time
	store    *kvstore.Memory
	bookings *repository.BookingRepository
	users    *repository.UserRepository
	session  *repository.SessionRepository

	admin    *BookingService
	drafts   *DraftService
	catalog  *CatalogService
	auth     *AuthService
	transfer *TransferService
	tasks    *TaskService
}

func newStack(t *testing.T) *stack {
	t.Helper()

	st := &stack{now: testNow, store: kvstore.NewMemory()}
	clock := func() time.Time { return st.now }
	log := newTestLogger(t)

	st.bookings = repository.NewBookingRepo(st.store, clock, log)
	st.users = repository.NewUserRepo(st.store, clock, log)
	st.session = repository.NewSessionRepo(st.store, log)
	services := repository.NewServiceRepo(st.store, clock, log)
	tasks := repository.NewTaskRepo(st.store, clock, log)

	notifier := mocks.NewMockBookingNotifier(t)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	avail := availability.New(st.bookings, clock, time.UTC, []time.Weekday{time.Friday, time.Saturday})

	st.catalog = NewCatalogService(services, log)
	st.admin = NewBookingService(st.bookings, services, notifier, Calendar{
		Now:       clock,
		Location:  time.UTC,
		WeekStart: time.Sunday,
	}, log)
	st.drafts = NewDraftService(avail, services, st.bookings, notifier, clock, 30*time.Minute, log)
	st.auth = NewAuthService(st.users, st.session, auth.NewTokens("test-secret", time.Hour, clock), log)
	st.transfer = NewTransferService(
		repository.NewTransfer(st.bookings, st.users, services, st.session, clock),
		st.catalog, st.auth, "admin123", log,
	)
	st.tasks = NewTaskService(tasks)

	return st
}

func (st *stack) seed(t *testing.T) *stack {
	t.Helper()
	ctx := t.Context()
	require.NoError(t, st.catalog.Seed(ctx))
	require.NoError(t, st.auth.SeedAdmin(ctx, "admin123"))
	return st
}
