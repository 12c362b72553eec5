package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CatalogService struct {
	repo   ports.ServiceRepo
	logger logger.Logger
}

func NewCatalogService(repo ports.ServiceRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)

	var ve domain.ValidationErrors
	if in.Name == "" {
		ve.Add("name", "name is required")
	}
	if in.Price < 0 {
		ve.Add("price", "price must not be negative")
	}
	if in.Duration <= 0 {
		ve.Add("duration", "duration must be positive")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	svc, err := s.repo.Add(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("service created", logger.String("service_id", svc.ID))
	return svc, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	var ve domain.ValidationErrors
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			ve.Add("name", "name is required")
		}
		patch.Name = &name
	}
	if patch.Price != nil && *patch.Price < 0 {
		ve.Add("price", "price must not be negative")
	}
	if patch.Duration != nil && *patch.Duration <= 0 {
		ve.Add("duration", "duration must be positive")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, patch)
}

// Delete leaves existing bookings alone; they keep their own name and price.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.logger.Info("service deleted", logger.String("service_id", id))
	return nil
}

func (s *CatalogService) Seed(ctx context.Context) error {
	seeded, err := s.repo.Seed(ctx, domain.DefaultServices())
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if seeded {
		s.logger.Info("default services seeded")
	}
	return nil
}
