package app

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SlotBooker/internal/auth"
	"github.com/stpnv0/SlotBooker/internal/availability"
	"github.com/stpnv0/SlotBooker/internal/config"
	"github.com/stpnv0/SlotBooker/internal/notification"
	"github.com/stpnv0/SlotBooker/internal/repository"
	"github.com/stpnv0/SlotBooker/internal/service"
	"github.com/wb-go/wbf/logger"
)

// Core is the storage-backed service graph shared by the HTTP server and
// slotctl.
type Core struct {
	Availability *availability.Model
	Tokens       *auth.Tokens

	Bookings *service.BookingService
	Drafts   *service.DraftService
	Catalog  *service.CatalogService
	Auth     *service.AuthService
	Transfer *service.TransferService
	Tasks    *service.TaskService

	close closer
}

func NewCore(ctx context.Context, cfg *config.Config, log logger.Logger) (*Core, error) {
	if err := cfg.Auth.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	restDays, err := availability.ParseWeekdays(cfg.Booking.RestDays)
	if err != nil {
		return nil, fmt.Errorf("booking.rest_days: %w", err)
	}
	weekStart, err := availability.ParseWeekday(cfg.Booking.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("booking.week_start: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	now := time.Now

	bookingRepo := repository.NewBookingRepo(store, now, log)
	userRepo := repository.NewUserRepo(store, now, log)
	serviceRepo := repository.NewServiceRepo(store, now, log)
	sessionRepo := repository.NewSessionRepo(store, log)
	taskRepo := repository.NewTaskRepo(store, now, log)
	transferRepo := repository.NewTransfer(bookingRepo, userRepo, serviceRepo, sessionRepo, now)

	n, err := notification.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
	if err != nil {
		_ = closeStore(ctx)
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	c := &Core{close: closeStore}
	c.Availability = availability.New(bookingRepo, now, loc, restDays)
	c.Tokens = auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, now)

	c.Bookings = service.NewBookingService(bookingRepo, serviceRepo, n, service.Calendar{
		Now:       now,
		Location:  loc,
		WeekStart: weekStart,
	}, log)
	c.Drafts = service.NewDraftService(c.Availability, serviceRepo, bookingRepo, n, now, cfg.Drafts.IdleTTL, log)
	c.Catalog = service.NewCatalogService(serviceRepo, log)
	c.Auth = service.NewAuthService(userRepo, sessionRepo, c.Tokens, log)
	c.Transfer = service.NewTransferService(transferRepo, c.Catalog, c.Auth, cfg.Auth.AdminPassword, log)
	c.Tasks = service.NewTaskService(taskRepo)

	return c, nil
}

// Seed fills an empty store with the default catalog and the admin account.
func (c *Core) Seed(ctx context.Context, adminPassword string) error {
	if err := c.Catalog.Seed(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := c.Auth.SeedAdmin(ctx, adminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func (c *Core) Close(ctx context.Context) error {
	return c.close(ctx)
}
