package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/wb-go/wbf/logger"
)

// SessionRepository holds the single "current user" pointer.
type SessionRepository struct {
	store kvstore.Store
	log   logger.Logger
}

func NewSessionRepo(store kvstore.Store, log logger.Logger) *SessionRepository {
	return &SessionRepository{store: store, log: log}
}

func (r *SessionRepository) Get(ctx context.Context) (*domain.SessionUser, error) {
	raw, err := r.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var u *domain.SessionUser
	if err = json.Unmarshal(raw, &u); err != nil {
		r.log.Warn("unreadable session treated as logged out",
			logger.String("error", err.Error()),
		)
		return nil, domain.ErrNoSession
	}
	if u == nil {
		return nil, domain.ErrNoSession
	}

	return u, nil
}

func (r *SessionRepository) Set(ctx context.Context, u domain.SessionUser) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = r.store.Set(ctx, KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
