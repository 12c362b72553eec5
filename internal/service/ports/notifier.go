package ports

import (
	"context"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyStatusChanged(ctx context.Context, b *domain.Booking, from domain.BookingStatus)
}
