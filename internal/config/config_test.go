package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"info", logger.InfoLevel},
		{"", logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LoggerConfig{Level: tt.level}.LogLevel())
		})
	}
}

func TestBookingConfig_Location(t *testing.T) {
	b := BookingConfig{Timezone: "UTC"}
	loc, err := b.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	b.Timezone = "Mars/Olympus"
	_, err = b.Location()
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "slotbooker", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=slotbooker sslmode=disable", p.DSN())
}

func TestAuthConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"empty", "", true},
		{"placeholder", "change-me", true},
		{"blank padding", "   short-secret   ", true},
		{"strong", "9f2c4e7a1b3d5f60", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthConfig{JWTSecret: tt.secret}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakJWTSecret)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadPath_JWTSecretHasNoDefault(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"missing", "storage:\n  driver: memory\n", true},
		{"placeholder", "auth:\n  jwt_secret: change-me\n", true},
		{"set", "auth:\n  jwt_secret: 9f2c4e7a1b3d5f60aa\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			var cfg Config
			err := cleanenvport.LoadPath(path, &cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "9f2c4e7a1b3d5f60aa", cfg.Auth.JWTSecret)
			assert.False(t, cfg.Scheduler.AutoComplete)
		})
	}
}
