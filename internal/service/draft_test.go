package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customer = domain.Customer{Name: "Sara Ali", Phone: "0501234567", Email: "sara@example.com"}

func TestDraftService_StepByStep(t *testing.T) {
	st := newStack(t).seed(t)
	ctx := context.Background()

	d := st.drafts.Create(ctx)
	assert.Equal(t, workflow.StateNoDate, d.State)

	d, err := st.drafts.SelectDate(ctx, d.ID, "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, workflow.StateDateSelected, d.State)

	d, err = st.drafts.SelectService(ctx, d.ID, "business")
	require.NoError(t, err)
	d, err = st.drafts.SelectTime(ctx, d.ID, "16:00")
	require.NoError(t, err)
	assert.Equal(t, workflow.StateServiceSelected, d.State)

	b, err := st.drafts.Submit(ctx, d.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, "Business consultation", b.ServiceName)
	assert.Equal(t, 350.0, b.Price)

	d, err = st.drafts.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StateNoDate, d.State, "draft reset after submit")
}

func TestDraftService_UnknownDraft(t *testing.T) {
	st := newStack(t)

	_, err := st.drafts.SelectDate(context.Background(), "missing", "2025-06-15")

	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftService_Submit_InvalidEmail(t *testing.T) {
	st := newStack(t).seed(t)
	ctx := context.Background()
	d := st.drafts.Create(ctx)

	_, err := st.drafts.SelectDate(ctx, d.ID, "2025-06-15")
	require.NoError(t, err)
	_, err = st.drafts.SelectTime(ctx, d.ID, "09:00")
	require.NoError(t, err)
	_, err = st.drafts.SelectService(ctx, d.ID, "consultation")
	require.NoError(t, err)

	c := customer
	c.Email = "not-an-email"
	_, err = st.drafts.Submit(ctx, d.ID, c)

	var ve *domain.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("email"))

	all, err := st.bookings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDraftService_EvictIdle(t *testing.T) {
	st := newStack(t)
	ctx := context.Background()

	stale := st.drafts.Create(ctx)
	st.now = st.now.Add(20 * time.Minute)
	fresh := st.drafts.Create(ctx)
	st.now = st.now.Add(15 * time.Minute)

	assert.Equal(t, 1, st.drafts.EvictIdle(ctx))

	_, err := st.drafts.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	_, err = st.drafts.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestDraftService_Book(t *testing.T) {
	st := newStack(t).seed(t)
	ctx := context.Background()
	req := BookRequest{Date: "2025-06-15", Time: "09:00", Service: "training", Customer: customer}

	b, err := st.drafts.Book(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)

	_, err = st.drafts.Book(ctx, req)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	req.Date = "2025-06-13"
	_, err = st.drafts.Book(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDateUnavailable)
}

func TestDraftService_Book_ReportsFieldsTogether(t *testing.T) {
	st := newStack(t).seed(t)
	ctx := context.Background()
	req := BookRequest{
		Date:     "",
		Time:     "09:00",
		Service:  "consultation",
		Customer: domain.Customer{Email: "not-an-email"},
	}

	_, err := st.drafts.Book(ctx, req)

	var ve *domain.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.ErrorIs(t, err, domain.ErrValidation)
	for _, field := range []string{"date", "name", "email", "phone"} {
		assert.True(t, ve.Has(field), field)
	}
	assert.False(t, ve.Has("time"))
	assert.False(t, ve.Has("service"))

	all, err := st.bookings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDraftService_Book_UnknownServiceAndBadTime(t *testing.T) {
	st := newStack(t).seed(t)
	ctx := context.Background()
	req := BookRequest{Date: "2025-06-15", Time: "09:15", Service: "nope", Customer: customer}

	_, err := st.drafts.Book(ctx, req)

	var ve *domain.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has("time"))
	assert.True(t, ve.Has("service"))
	assert.False(t, ve.Has("email"))
}
