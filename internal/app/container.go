package app

import (
	"context"
	"log"
	"os"
	"time"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/database/migration"
	dbpostgres "skill-swap/internal/database/postgres"
	"skill-swap/internal/database/seeder"
	"skill-swap/internal/infrastructure/cache"
)

// Container owns the process-wide resources: database pool, cache client
// and shared logger. Close releases them in reverse order of acquisition.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.LUTC)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
