package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TransferService struct {
	transfer ports.Transfer
	catalog  *CatalogService
	auth     *AuthService
	adminPwd string
	logger   logger.Logger
}

func NewTransferService(
	transfer ports.Transfer,
	catalog *CatalogService,
	auth *AuthService,
	adminPassword string,
	logger logger.Logger,
) *TransferService {
	return &TransferService{
		transfer: transfer,
		catalog:  catalog,
		auth:     auth,
		adminPwd: adminPassword,
		logger:   logger,
	}
}

func (s *TransferService) Export(ctx context.Context) (*domain.ExportDocument, error) {
	doc, err := s.transfer.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return doc, nil
}

// Import validates data and overwrites every collection it names. Users
// carrying a plaintext password get it hashed on the way in.
func (s *TransferService) Import(ctx context.Context, data []byte) error {
	doc, err := s.transfer.Decode(data)
	if err != nil {
		return err
	}

	if doc.Users != nil {
		for _, u := range *doc.Users {
			if u == nil || u.Password == "" {
				continue
			}
			if u.PasswordHash == "" {
				if u.PasswordHash, err = hashPassword(u.Password); err != nil {
					return err
				}
			}
			u.Password = ""
		}
	}

	if err = s.transfer.Apply(ctx, doc); err != nil {
		return err
	}

	s.logger.Info("data imported",
		logger.Int("bookings", countOf(doc.Bookings)),
		logger.Int("users", countOf(doc.Users)),
		logger.Int("services", countOf(doc.Services)),
	)
	return nil
}

// Reset wipes bookings, users and the session, then seeds the catalog and
// the default admin again.
func (s *TransferService) Reset(ctx context.Context) error {
	if err := s.transfer.Clear(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if err := s.catalog.Seed(ctx); err != nil {
		return err
	}
	if err := s.auth.SeedAdmin(ctx, s.adminPwd); err != nil {
		return err
	}

	s.logger.Warn("all data cleared")
	return nil
}

// countOf reports -1 for a collection the document left out.
func countOf[T any](items *[]*T) int {
	if items == nil {
		return -1
	}
	return len(*items)
}
