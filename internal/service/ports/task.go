package ports

import (
	"context"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type TaskRepo interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Add(ctx context.Context, text string) (*domain.Task, error)
	Toggle(ctx context.Context, id int64) (*domain.Task, error)
	Remove(ctx context.Context, id int64) error
}
