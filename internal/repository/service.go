package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/wb-go/wbf/logger"
)

// ServiceRepository stores the catalog. Ids are strings: either a slug given
// by the caller or a timestamp.
type ServiceRepository struct {
	coll *collection[string, domain.Service]
	ids  *idSource
}

func NewServiceRepo(store kvstore.Store, now Clock, log logger.Logger) *ServiceRepository {
	return &ServiceRepository{
		coll: newCollection(store, KeyServices, serviceID, log),
		ids:  &idSource{now: now},
	}
}

func serviceID(s *domain.Service) string { return s.ID }

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	res, err := r.coll.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return res, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	s, ok, err := r.coll.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return s, nil
}

func (r *ServiceRepository) Add(ctx context.Context, in domain.ServiceInput) (*domain.Service, error) {
	var created *domain.Service
	err := r.coll.mutate(ctx, func(s *snapshot[string, domain.Service]) (bool, error) {
		id := in.ID
		if id == "" {
			id = strconv.FormatInt(r.ids.next(0), 10)
		}
		if _, exists := s.get(id); exists {
			return false, fmt.Errorf("%w: service id %q already exists", domain.ErrValidation, id)
		}
		created = &domain.Service{
			ID:       id,
			Name:     in.Name,
			Price:    in.Price,
			Duration: in.Duration,
			Icon:     in.Icon,
		}
		s.append(created, id)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("add service: %w", err)
	}
	return created, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	var updated *domain.Service
	err := r.coll.mutate(ctx, func(s *snapshot[string, domain.Service]) (bool, error) {
		svc, ok := s.get(id)
		if !ok {
			return false, domain.ErrServiceNotFound
		}
		patch.Apply(svc)
		updated = svc
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return updated, nil
}

func (r *ServiceRepository) Remove(ctx context.Context, id string) error {
	err := r.coll.mutate(ctx, func(s *snapshot[string, domain.Service]) (bool, error) {
		return s.remove(id), nil
	})
	if err != nil {
		return fmt.Errorf("remove service: %w", err)
	}
	return nil
}

// Seed writes defaults only when the catalog is empty. It reports whether
// anything was written.
func (r *ServiceRepository) Seed(ctx context.Context, defaults []domain.Service) (bool, error) {
	seeded := false
	err := r.coll.mutate(ctx, func(s *snapshot[string, domain.Service]) (bool, error) {
		if len(s.items) > 0 {
			return false, nil
		}
		for i := range defaults {
			svc := defaults[i]
			s.append(&svc, svc.ID)
		}
		seeded = true
		return true, nil
	})
	if err != nil {
		return false, fmt.Errorf("seed services: %w", err)
	}
	return seeded, nil
}
