package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testCalendar() Calendar {
	return Calendar{
		Now:       func() time.Time { return testNow },
		Location:  time.UTC,
		WeekStart: time.Sunday,
	}
}

// wait blocks until done is closed by an async notifier call.
func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

type bookingMocks struct {
	bookings *mocks.MockBookingRepo
	catalog  *mocks.MockServiceRepo
	notifier *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	m := bookingMocks{
		bookings: mocks.NewMockBookingRepo(t),
		catalog:  mocks.NewMockServiceRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookings, m.catalog, m.notifier, testCalendar(), newTestLogger(t))
	return svc, m
}

var consultation = &domain.Service{ID: "consultation", Name: "General consultation", Price: 150, Duration: 30}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	in := domain.BookingInput{
		Date:     "2025-06-15",
		Time:     "10:00",
		Service:  "consultation",
		Customer: domain.Customer{Name: "Sara", Email: "sara@example.com"},
	}
	want := in
	want.ServiceName = "General consultation"
	want.Price = 150
	created := &domain.Booking{ID: 1, Date: in.Date, Time: in.Time, Status: domain.BookingStatusConfirmed}
	done := make(chan struct{})

	m.catalog.EXPECT().GetByID(mock.Anything, "consultation").Return(consultation, nil)
	m.bookings.EXPECT().Add(mock.Anything, want).Return(created, nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, created).
		Run(func(ctx context.Context, b *domain.Booking) { close(done) }).Return()

	b, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, created, b)
	wait(t, done)
}

func TestBookingService_Create_ValidationCollectsFields(t *testing.T) {
	svc, m := newBookingService(t)

	m.catalog.EXPECT().GetByID(mock.Anything, "massage").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.Create(context.Background(), domain.BookingInput{
		Date:     "15.06.2025",
		Time:     "13:00",
		Service:  "massage",
		Customer: domain.Customer{Name: "S", Email: "nope"},
	})

	var ve *domain.ValidationErrors
	require.True(t, errors.As(err, &ve))
	for _, f := range []string{"date", "time", "name", "email", "service"} {
		assert.True(t, ve.Has(f), f)
	}
}

func TestBookingService_Create_CatalogError(t *testing.T) {
	svc, m := newBookingService(t)
	storeErr := errors.New("store down")

	m.catalog.EXPECT().GetByID(mock.Anything, "consultation").Return(nil, storeErr)

	_, err := svc.Create(context.Background(), domain.BookingInput{
		Date:     "2025-06-15",
		Time:     "10:00",
		Service:  "consultation",
		Customer: domain.Customer{Name: "Sara", Email: "sara@example.com"},
	})

	assert.ErrorIs(t, err, storeErr)
}

func TestBookingService_Update_StatusChangeNotifies(t *testing.T) {
	svc, m := newBookingService(t)
	stored := &domain.Booking{ID: 7, Status: domain.BookingStatusPending}
	cancelled := domain.BookingStatusCancelled
	done := make(chan struct{})

	m.bookings.EXPECT().Modify(mock.Anything, int64(7), mock.Anything).
		RunAndReturn(func(ctx context.Context, id int64, fn func(*domain.Booking) error) (*domain.Booking, error) {
			if err := fn(stored); err != nil {
				return nil, err
			}
			return stored, nil
		})
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, stored, domain.BookingStatusPending).
		Run(func(ctx context.Context, b *domain.Booking, from domain.BookingStatus) { close(done) }).Return()

	b, err := svc.Update(context.Background(), 7, domain.BookingPatch{Status: &cancelled})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	wait(t, done)
}

func TestBookingService_Update_CompletedCanBeCancelled(t *testing.T) {
	svc, m := newBookingService(t)
	stored := &domain.Booking{ID: 7, Status: domain.BookingStatusCompleted}
	cancelled := domain.BookingStatusCancelled
	done := make(chan struct{})

	m.bookings.EXPECT().Modify(mock.Anything, int64(7), mock.Anything).
		RunAndReturn(func(ctx context.Context, id int64, fn func(*domain.Booking) error) (*domain.Booking, error) {
			if err := fn(stored); err != nil {
				return nil, err
			}
			return stored, nil
		})
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, stored, domain.BookingStatusCompleted).
		Run(func(ctx context.Context, b *domain.Booking, from domain.BookingStatus) { close(done) }).Return()

	b, err := svc.Update(context.Background(), 7, domain.BookingPatch{Status: &cancelled})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	wait(t, done)
}

func TestBookingService_AutoCompletedBookingStaysEditable(t *testing.T) {
	st := newStack(t).seed(t)
	ctx := context.Background()

	b, err := st.drafts.Book(ctx, BookRequest{Date: "2025-06-10", Time: "14:00", Service: "consultation", Customer: customer})
	require.NoError(t, err)

	st.now = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	done, err := st.admin.CompletePast(ctx)
	require.NoError(t, err)
	require.Len(t, done, 1)

	cancelled := domain.BookingStatusCancelled
	updated, err := st.admin.Update(ctx, b.ID, domain.BookingPatch{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, updated.Status)
}

func TestBookingService_Update_ServiceRefreshesDenormalizedFields(t *testing.T) {
	svc, m := newBookingService(t)
	stored := &domain.Booking{ID: 7, Service: "training", ServiceName: "Personal training", Price: 500, Status: domain.BookingStatusConfirmed}
	serviceID := "consultation"

	m.catalog.EXPECT().GetByID(mock.Anything, "consultation").Return(consultation, nil)
	m.bookings.EXPECT().Modify(mock.Anything, int64(7), mock.Anything).
		RunAndReturn(func(ctx context.Context, id int64, fn func(*domain.Booking) error) (*domain.Booking, error) {
			if err := fn(stored); err != nil {
				return nil, err
			}
			return stored, nil
		})

	b, err := svc.Update(context.Background(), 7, domain.BookingPatch{Service: &serviceID})

	require.NoError(t, err)
	assert.Equal(t, "consultation", b.Service)
	assert.Equal(t, "General consultation", b.ServiceName)
	assert.Equal(t, 150.0, b.Price)
}

func TestBookingService_Update_UnknownStatus(t *testing.T) {
	svc, _ := newBookingService(t)
	bogus := domain.BookingStatus("archived")

	_, err := svc.Update(context.Background(), 7, domain.BookingPatch{Status: &bogus})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Update_NotFound(t *testing.T) {
	svc, m := newBookingService(t)
	cancelled := domain.BookingStatusCancelled

	m.bookings.EXPECT().Modify(mock.Anything, int64(404), mock.Anything).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Update(context.Background(), 404, domain.BookingPatch{Status: &cancelled})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_List_FilterSearchSort(t *testing.T) {
	svc, m := newBookingService(t)

	all := []*domain.Booking{
		{ID: 1001, Date: "2025-06-01", Status: domain.BookingStatusConfirmed, Customer: domain.Customer{Name: "Sara Ali", Email: "sara@example.com"}},
		{ID: 1002, Date: "2025-06-20", Status: domain.BookingStatusConfirmed, Customer: domain.Customer{Name: "Omar", Email: "omar@example.com"}},
		{ID: 1003, Date: "2025-06-10", Status: domain.BookingStatusCancelled, Customer: domain.Customer{Name: "sara b", Email: "b@example.com"}},
		{ID: 1004, Date: "2025-06-20", Status: domain.BookingStatusPending, Customer: domain.Customer{Name: "Lina", Email: "lina@example.com"}},
	}
	m.bookings.EXPECT().List(mock.Anything).Return(all, nil)

	ctx := context.Background()

	res, err := svc.List(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1002, 1004, 1003, 1001}, ids(res))

	res, err = svc.List(ctx, domain.BookingFilter{Search: "SARA"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1003, 1001}, ids(res))

	res, err = svc.List(ctx, domain.BookingFilter{Search: "1004"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1004}, ids(res))

	res, err = svc.List(ctx, domain.BookingFilter{Status: domain.BookingStatusConfirmed, Date: "2025-06-20"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1002}, ids(res))
}

func ids(bookings []*domain.Booking) []int64 {
	res := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, b.ID)
	}
	return res
}

func TestBookingService_Statistics(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().List(mock.Anything).Return([]*domain.Booking{
		{Date: "2025-06-10", Status: domain.BookingStatusConfirmed, Price: 150, Customer: domain.Customer{Email: "a@example.com"}},
		{Date: "2025-06-12", Status: domain.BookingStatusCompleted, Price: 250, Customer: domain.Customer{Email: "a@example.com"}},
	}, nil)

	st, err := svc.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalBookings)
	assert.Equal(t, 1, st.TodayBookings)
	assert.Equal(t, 1, st.TotalCustomers)
	assert.Equal(t, 400.0, st.TotalRevenue)
	assert.Equal(t, 50, st.CompletionRate)
}

func TestBookingService_CompletePast(t *testing.T) {
	svc, m := newBookingService(t)
	done := []*domain.Booking{{ID: 1, Status: domain.BookingStatusCompleted}}

	m.bookings.EXPECT().CompleteBefore(mock.Anything, testNow).Return(done, nil)

	res, err := svc.CompletePast(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestBookingService_CompletePast_RepoError(t *testing.T) {
	svc, m := newBookingService(t)
	storeErr := errors.New("store down")

	m.bookings.EXPECT().CompleteBefore(mock.Anything, testNow).Return(nil, storeErr)

	_, err := svc.CompletePast(context.Background())

	assert.ErrorIs(t, err, storeErr)
}

func TestBookingService_Delete(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookings.EXPECT().Remove(mock.Anything, int64(3)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 3))
}
