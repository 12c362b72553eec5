package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/SlotBooker/internal/config"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type closer func(ctx context.Context) error

// openStore builds the configured key-value driver. The returned closer
// releases its connections.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (kvstore.Store, closer, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	default:
		log.Warn("using in-memory storage, data is lost on exit")
		return kvstore.NewMemory(), func(context.Context) error { return nil }, nil
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log logger.Logger) (kvstore.Store, closer, error) {
	if err := runMigrations(cfg.Postgres.DSN(), log); err != nil {
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(
		cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err = pingOrClose(ctx, db.Master); err != nil {
		return nil, nil, err
	}

	log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", cfg.Postgres.Host),
		logger.Int("port", cfg.Postgres.Port),
		logger.String("database", cfg.Postgres.Database),
	)

	return kvstore.NewPostgres(db), func(context.Context) error {
		if err := db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		return nil
	}, nil
}

// pingOrClose releases the pool when the server cannot be reached.
func pingOrClose(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

func openMongo(ctx context.Context, cfg *config.Config, log logger.Logger) (kvstore.Store, closer, error) {
	client, err := kvstore.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		return nil, nil, err
	}

	log.LogAttrs(ctx, logger.InfoLevel, "mongo connected",
		logger.String("database", cfg.Mongo.Database),
		logger.String("collection", cfg.Mongo.Collection),
	)

	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
	return kvstore.NewMongo(coll), func(ctx context.Context) error {
		if err := client.Disconnect(ctx); err != nil {
			return fmt.Errorf("disconnect mongo: %w", err)
		}
		return nil
	}, nil
}

func runMigrations(dsn string, log logger.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully")
	return nil
}
