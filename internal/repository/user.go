package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/wb-go/wbf/logger"
)

type UserRepository struct {
	coll *collection[int64, domain.User]
	ids  *idSource
	now  Clock
}

func NewUserRepo(store kvstore.Store, now Clock, log logger.Logger) *UserRepository {
	return &UserRepository{
		coll: newCollection(store, KeyUsers, userID, log),
		ids:  &idSource{now: now},
		now:  now,
	}
}

func userID(u *domain.User) int64 { return u.ID }

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	res, err := r.coll.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return res, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok, err := r.coll.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// FindByEmail compares case-insensitively; the first match wins.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Add(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	return r.add(ctx, in, false)
}

// AddUnique is Add with an email check under the collection lock.
func (r *UserRepository) AddUnique(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	return r.add(ctx, in, true)
}

func (r *UserRepository) add(ctx context.Context, in domain.UserInput, unique bool) (*domain.User, error) {
	var created *domain.User
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.User]) (bool, error) {
		if unique {
			for _, u := range s.items {
				if strings.EqualFold(u.Email, in.Email) {
					return false, domain.ErrEmailTaken
				}
			}
		}

		role := in.Role
		if role == "" {
			role = domain.RoleCustomer
		}
		created = &domain.User{
			ID:           r.ids.next(maxID(s.items, userID)),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: in.PasswordHash,
			Role:         role,
			CreatedAt:    r.now().UTC(),
		}
		s.append(created, created.ID)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, fn func(u *domain.User)) (*domain.User, error) {
	var updated *domain.User
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.User]) (bool, error) {
		u, ok := s.get(id)
		if !ok {
			return false, domain.ErrUserNotFound
		}
		fn(u)
		now := r.now().UTC()
		u.UpdatedAt = &now
		updated = u
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (r *UserRepository) Remove(ctx context.Context, id int64) error {
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.User]) (bool, error) {
		return s.remove(id), nil
	})
	if err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}
