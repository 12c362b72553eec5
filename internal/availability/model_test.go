package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/stpnv0/SlotBooker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var restDays = []time.Weekday{time.Friday, time.Saturday}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setup(t *testing.T, now time.Time) (*Model, *repository.BookingRepository) {
	t.Helper()
	clock := func() time.Time { return now }
	repo := repository.NewBookingRepo(kvstore.NewMemory(), clock, newTestLogger(t))
	return New(repo, clock, time.UTC, restDays), repo
}

func book(t *testing.T, repo *repository.BookingRepository, date, slot string) *domain.Booking {
	t.Helper()
	b, err := repo.Add(context.Background(), domain.BookingInput{
		Date:     date,
		Time:     slot,
		Service:  "consultation",
		Customer: domain.Customer{Name: "Test", Email: slot + "@example.com"},
	})
	require.NoError(t, err)
	return b
}

func TestModel_IsDateBlocked_RestDayAndOpenDay(t *testing.T) {
	ctx := context.Background()
	m, _ := setup(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	blocked, err := m.IsDateBlocked(ctx, "2025-06-14") // Saturday
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = m.IsDateBlocked(ctx, "2025-06-15") // Sunday
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestModel_IsDateBlocked_FullyBooked(t *testing.T) {
	ctx := context.Background()
	m, repo := setup(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	for _, s := range domain.Slots[:7] {
		book(t, repo, "2025-06-15", s)
	}
	blocked, err := m.IsDateBlocked(ctx, "2025-06-15")
	require.NoError(t, err)
	assert.False(t, blocked, "seven of eight slots taken")

	book(t, repo, "2025-06-15", domain.Slots[7])

	reason, err := m.BlockReason(ctx, "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, ReasonFullyBooked, reason)
}

func TestModel_CancelledBookingFreesSlot(t *testing.T) {
	ctx := context.Background()
	m, repo := setup(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	b := book(t, repo, "2025-06-15", "10:00")

	ok, err := m.IsSlotAvailable(ctx, b.Date, b.Time)
	require.NoError(t, err)
	assert.False(t, ok)

	cancelled := domain.BookingStatusCancelled
	_, err = repo.Update(ctx, b.ID, domain.BookingPatch{Status: &cancelled})
	require.NoError(t, err)

	ok, err = m.IsSlotAvailable(ctx, b.Date, b.Time)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, b.ID)
	assert.NoError(t, err, "record still exists")
}

func TestModel_PastAndToday(t *testing.T) {
	ctx := context.Background()
	m, repo := setup(t, time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC))

	reason, err := m.BlockReason(ctx, "2025-06-11")
	require.NoError(t, err)
	assert.Equal(t, ReasonPast, reason)

	reason, err = m.BlockReason(ctx, "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, ReasonNone, reason, "today is never past")

	for _, s := range domain.Slots {
		book(t, repo, "2025-06-15", s)
	}
	reason, err = m.BlockReason(ctx, "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, ReasonFullyBooked, reason)
}

func TestModel_RestDayWinsOverFullyBooked(t *testing.T) {
	ctx := context.Background()
	m, repo := setup(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	for _, s := range domain.Slots {
		book(t, repo, "2025-06-13", s) // Friday
	}

	reason, err := m.BlockReason(ctx, "2025-06-13")
	require.NoError(t, err)
	assert.Equal(t, ReasonRestDay, reason)
}

func TestModel_InvalidDate(t *testing.T) {
	m, _ := setup(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	_, err := m.IsDateBlocked(context.Background(), "15/06/2025")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestModel_Slots(t *testing.T) {
	ctx := context.Background()
	m, repo := setup(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	book(t, repo, "2025-06-15", "14:00")

	slots, err := m.Slots(ctx, "2025-06-15")
	require.NoError(t, err)
	require.Len(t, slots, len(domain.Slots))

	for _, s := range slots {
		if s.Time == "14:00" {
			assert.False(t, s.Available)
			assert.Equal(t, "2:00 PM", s.Label)
		} else {
			assert.True(t, s.Available, s.Time)
		}
	}
}

func TestModel_Month(t *testing.T) {
	ctx := context.Background()
	m, repo := setup(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

	for _, s := range domain.Slots {
		book(t, repo, "2025-06-16", s)
	}
	b := book(t, repo, "2025-06-17", "09:00")
	cancelled := domain.BookingStatusCancelled
	_, err := repo.Update(ctx, b.ID, domain.BookingPatch{Status: &cancelled})
	require.NoError(t, err)

	days, err := m.Month(ctx, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, days, 30)

	byDate := make(map[string]DayState, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	assert.True(t, byDate["2025-06-09"].Past)
	assert.False(t, byDate["2025-06-09"].Selectable)
	assert.True(t, byDate["2025-06-10"].Today)
	assert.True(t, byDate["2025-06-10"].Selectable)
	assert.True(t, byDate["2025-06-14"].RestDay)
	assert.True(t, byDate["2025-06-16"].FullyBooked)
	assert.Equal(t, 8, byDate["2025-06-16"].Bookings)
	assert.False(t, byDate["2025-06-17"].FullyBooked)
	assert.Equal(t, 1, byDate["2025-06-17"].Bookings)
	assert.True(t, byDate["2025-06-17"].Selectable)

	_, err = m.Month(ctx, 2025, 13)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseWeekdays(t *testing.T) {
	days, err := ParseWeekdays([]string{"Friday", "sat"})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, days)

	_, err = ParseWeekdays([]string{"funday"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
