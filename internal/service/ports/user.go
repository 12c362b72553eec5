package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type UserRepo interface {
	List(ctx context.Context) ([]*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Add(ctx context.Context, in domain.UserInput) (*domain.User, error)
	AddUnique(ctx context.Context, in domain.UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, fn func(u *domain.User)) (*domain.User, error)
}

type SessionRepo interface {
	Get(ctx context.Context) (*domain.SessionUser, error)
	Set(ctx context.Context, u domain.SessionUser) error
	Clear(ctx context.Context) error
}

type TokenIssuer interface {
	Issue(u domain.SessionUser) (string, time.Time, error)
}
