package repository

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func fixedClock(ts time.Time) Clock {
	return func() time.Time { return ts }
}

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func sampleInput(date, slot, email string) domain.BookingInput {
	return domain.BookingInput{
		Date:        date,
		Time:        slot,
		Service:     "consultation",
		ServiceName: "General consultation",
		Price:       150,
		Customer: domain.Customer{
			Name:  "Sara Ali",
			Phone: "0501234567",
			Email: email,
		},
	}
}

func TestBookingRepo_List_EmptyWhenKeyMissing(t *testing.T) {
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	res, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestBookingRepo_List_MalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, KeyBookings, []byte(`{not json`)))

	repo := NewBookingRepo(store, fixedClock(testNow), newTestLogger(t))

	res, err := repo.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestBookingRepo_Add_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	in := sampleInput("2025-06-15", "10:00", "sara@example.com")
	created, err := repo.Add(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, testNow.UnixMilli(), created.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, created.Status)
	assert.Equal(t, testNow, created.CreatedAt)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, in.Date, got.Date)
	assert.Equal(t, in.Time, got.Time)
	assert.Equal(t, in.Service, got.Service)
	assert.Equal(t, in.ServiceName, got.ServiceName)
	assert.Equal(t, in.Price, got.Price)
	assert.Equal(t, in.Customer, got.Customer)
	assert.Equal(t, created.ID, got.ID)
}

func TestBookingRepo_Add_IDsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	a, err := repo.Add(ctx, sampleInput("2025-06-15", "09:00", "a@example.com"))
	require.NoError(t, err)
	b, err := repo.Add(ctx, sampleInput("2025-06-15", "10:00", "b@example.com"))
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
}

func TestBookingRepo_Add_IDsSkipPastStoredIDs(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	future := testNow.Add(time.Hour).UnixMilli()
	require.NoError(t, store.Set(ctx, KeyBookings, []byte(`[{"id":`+strconv.FormatInt(future, 10)+`,"date":"2025-06-15","time":"09:00","status":"confirmed"}]`)))

	repo := NewBookingRepo(store, fixedClock(testNow), newTestLogger(t))
	created, err := repo.Add(ctx, sampleInput("2025-06-16", "09:00", "x@example.com"))
	require.NoError(t, err)

	assert.Equal(t, future+1, created.ID)
}

func TestBookingRepo_GetByID_NotFoundAfterRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	b, err := repo.Add(ctx, sampleInput("2025-06-15", "10:00", "sara@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, b.ID))

	_, err = repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	// second remove is a silent no-op
	assert.NoError(t, repo.Remove(ctx, b.ID))
}

func TestBookingRepo_Update_ShallowMerge(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	b, err := repo.Add(ctx, sampleInput("2025-06-15", "10:00", "sara@example.com"))
	require.NoError(t, err)

	status := domain.BookingStatusPending
	customer := domain.Customer{Name: "Omar"}
	updated, err := repo.Update(ctx, b.ID, domain.BookingPatch{Status: &status, Customer: &customer})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingStatusPending, updated.Status)
	assert.Equal(t, "10:00", updated.Time)
	// customer is replaced wholesale, not merged field by field
	assert.Equal(t, domain.Customer{Name: "Omar"}, updated.Customer)
	require.NotNil(t, updated.UpdatedAt)

	stored, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
}

func TestBookingRepo_Update_Missing(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewBookingRepo(store, fixedClock(testNow), newTestLogger(t))

	status := domain.BookingStatusCancelled
	_, err := repo.Update(ctx, 42, domain.BookingPatch{Status: &status})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	_, getErr := store.Get(ctx, KeyBookings)
	assert.ErrorIs(t, getErr, kvstore.ErrNotFound, "nothing written")
}

func TestBookingRepo_ListByDate_SkipsCancelled(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	a, err := repo.Add(ctx, sampleInput("2025-06-15", "09:00", "a@example.com"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, sampleInput("2025-06-15", "10:00", "b@example.com"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, sampleInput("2025-06-16", "10:00", "c@example.com"))
	require.NoError(t, err)

	cancelled := domain.BookingStatusCancelled
	_, err = repo.Update(ctx, a.ID, domain.BookingPatch{Status: &cancelled})
	require.NoError(t, err)

	res, err := repo.ListByDate(ctx, "2025-06-15")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "10:00", res[0].Time)

	byStatus, err := repo.ListByStatus(ctx, domain.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)
}

func TestBookingRepo_Reserve_RejectsTakenSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	_, err := repo.Reserve(ctx, sampleInput("2025-06-15", "09:00", "a@example.com"))
	require.NoError(t, err)

	_, err = repo.Reserve(ctx, sampleInput("2025-06-15", "09:00", "b@example.com"))
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookingRepo_Reserve_CancelledSlotIsFree(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	b, err := repo.Reserve(ctx, sampleInput("2025-06-15", "09:00", "a@example.com"))
	require.NoError(t, err)
	cancelled := domain.BookingStatusCancelled
	_, err = repo.Update(ctx, b.ID, domain.BookingPatch{Status: &cancelled})
	require.NoError(t, err)

	_, err = repo.Reserve(ctx, sampleInput("2025-06-15", "09:00", "b@example.com"))
	assert.NoError(t, err)
}

func TestBookingRepo_Modify_ErrorAbortsWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	b, err := repo.Add(ctx, sampleInput("2025-06-15", "09:00", "a@example.com"))
	require.NoError(t, err)

	_, err = repo.Modify(ctx, b.ID, func(bk *domain.Booking) error {
		bk.Time = "10:00"
		return domain.ErrIllegalTransition
	})
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	stored, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", stored.Time)
}

func TestBookingRepo_CompleteBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	past, err := repo.Add(ctx, sampleInput("2025-06-09", "09:00", "a@example.com"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, sampleInput("2025-06-11", "09:00", "b@example.com"))
	require.NoError(t, err)
	pending, err := repo.Add(ctx, sampleInput("2025-06-08", "09:00", "c@example.com"))
	require.NoError(t, err)
	st := domain.BookingStatusPending
	_, err = repo.Update(ctx, pending.ID, domain.BookingPatch{Status: &st})
	require.NoError(t, err)

	done, err := repo.CompleteBefore(ctx, testNow)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, past.ID, done[0].ID)

	stored, err := repo.GetByID(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, stored.Status)
}
