package app

import (
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/config"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Logger:  config.LoggerConfig{Engine: "slog", Level: "error"},
		Gin:     config.GinConfig{Mode: "test"},
		Storage: config.StorageConfig{Driver: config.DriverMemory},
		Booking: config.BookingConfig{
			RestDays:  []string{"saturday"},
			WeekStart: "sunday",
			Timezone:  "UTC",
		},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret-0123456789",
			TokenTTL:      time.Hour,
			AdminPassword: "admin123",
		},
		Drafts:    config.DraftsConfig{IdleTTL: time.Minute},
		Scheduler: config.SchedulerConfig{Interval: time.Minute},
	}
}

func newTestCore(t *testing.T, cfg *config.Config) *Core {
	t.Helper()
	log, err := NewLogger(cfg)
	require.NoError(t, err)

	core, err := NewCore(t.Context(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close(t.Context()) })
	return core
}

func TestCore_SeedCatalogAndAdmin(t *testing.T) {
	cfg := testConfig()
	core := newTestCore(t, cfg)
	ctx := t.Context()

	require.NoError(t, core.Seed(ctx, cfg.Auth.AdminPassword))
	require.NoError(t, core.Seed(ctx, cfg.Auth.AdminPassword))

	services, err := core.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, services, len(domain.DefaultServices()))

	users, err := core.Auth.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)

	login, err := core.Auth.Login(ctx, "admin@booking.com", "admin123")
	require.NoError(t, err)

	claims, err := core.Tokens.Parse(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestCore_RestDayFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Booking.RestDays = []string{"sunday"}
	core := newTestCore(t, cfg)

	// far enough ahead never to be in the past
	blocked, err := core.Availability.IsDateBlocked(t.Context(), "2099-06-14")
	require.NoError(t, err)
	assert.True(t, blocked, "2099-06-14 is a Sunday")

	blocked, err = core.Availability.IsDateBlocked(t.Context(), "2099-06-13")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestNewCore_BadBookingConfig(t *testing.T) {
	log, err := NewLogger(testConfig())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Booking.RestDays = []string{"someday"}
	_, err = NewCore(t.Context(), cfg, log)
	assert.ErrorIs(t, err, domain.ErrValidation)

	cfg = testConfig()
	cfg.Booking.WeekStart = "funday"
	_, err = NewCore(t.Context(), cfg, log)
	assert.ErrorIs(t, err, domain.ErrValidation)

	cfg = testConfig()
	cfg.Booking.Timezone = "Nowhere/Land"
	_, err = NewCore(t.Context(), cfg, log)
	assert.Error(t, err)
}

func TestNewCore_RefusesWeakSecret(t *testing.T) {
	log, err := NewLogger(testConfig())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Auth.JWTSecret = "change-me"
	_, err = NewCore(t.Context(), cfg, log)
	assert.ErrorIs(t, err, config.ErrWeakJWTSecret)
}
