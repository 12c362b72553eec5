package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type BookingRepo interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Add(ctx context.Context, in domain.BookingInput) (*domain.Booking, error)
	Reserve(ctx context.Context, in domain.BookingInput) (*domain.Booking, error)
	Modify(ctx context.Context, id int64, fn func(b *domain.Booking) error) (*domain.Booking, error)
	Remove(ctx context.Context, id int64) error
	CompleteBefore(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
}

type ServiceRepo interface {
	List(ctx context.Context) ([]*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Add(ctx context.Context, in domain.ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error)
	Remove(ctx context.Context, id string) error
	Seed(ctx context.Context, defaults []domain.Service) (bool, error)
}

type Availability interface {
	IsDateBlocked(ctx context.Context, date string) (bool, error)
	IsSlotAvailable(ctx context.Context, date, slot string) (bool, error)
}
