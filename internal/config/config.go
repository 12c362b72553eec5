package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Drafts    DraftsConfig    `yaml:"drafts"    validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"required,oneof=memory postgres mongo"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"slotbooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type MongoConfig struct {
	URI        string        `yaml:"uri"        env:"MONGO_URI"        env-default:"mongodb://localhost:27017"`
	Database   string        `yaml:"database"   env:"MONGO_DATABASE"   env-default:"slotbooker"`
	Collection string        `yaml:"collection" env:"MONGO_COLLECTION" env-default:"kv_store"`
	Timeout    time.Duration `yaml:"timeout"    env:"MONGO_TIMEOUT"    env-default:"10s" validate:"gt=0"`
}

type BookingConfig struct {
	RestDays  []string `yaml:"rest_days"  env:"BOOKING_REST_DAYS"  env-default:"friday,saturday" env-separator:","`
	WeekStart string   `yaml:"week_start" env:"BOOKING_WEEK_START" env-default:"sunday"   validate:"required"`
	Timezone  string   `yaml:"timezone"   env:"BOOKING_TIMEZONE"   env-default:"Local"    validate:"required"`
}

// Location resolves Timezone; "Local" is the host zone.
func (b *BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

// MinJWTSecretLen is the shortest signing secret accepted.
const MinJWTSecretLen = 16

var ErrWeakJWTSecret = errors.New("auth.jwt_secret must be set to at least 16 characters")

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"     env:"AUTH_JWT_SECRET"     validate:"required,min=16"`
	TokenTTL      time.Duration `yaml:"token_ttl"      env:"AUTH_TOKEN_TTL"      env-default:"24h"       validate:"gt=0"`
	AdminPassword string        `yaml:"admin_password" env:"AUTH_ADMIN_PASSWORD" env-default:"admin123"  validate:"required,min=6"`
}

// Validate rejects secrets that the tags cannot catch when the config is built
// in code rather than loaded.
func (a AuthConfig) Validate() error {
	if len(strings.TrimSpace(a.JWTSecret)) < MinJWTSecretLen {
		return ErrWeakJWTSecret
	}
	return nil
}

type DraftsConfig struct {
	IdleTTL time.Duration `yaml:"idle_ttl" env:"DRAFTS_IDLE_TTL" env-default:"30m" validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval     time.Duration `yaml:"interval"      env:"SCHEDULER_INTERVAL"      env-default:"30s"   validate:"required,gt=0"`
	AutoComplete bool          `yaml:"auto_complete" env:"SCHEDULER_AUTO_COMPLETE" env-default:"false"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Auth.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
