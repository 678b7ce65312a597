package main

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barbearia/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia/internal/db"
	"github.com/BruksfildServices01/barbearia/internal/storage"
)

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return storage.NewMemoryStore(), nil

	case "redis":
		return storage.NewRedisStore(ctx, storage.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.StorePrefix,
		})

	case "postgres":
		db, err := dbpkg.NewDB(cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db, cfg.StorePrefix), nil

	case "bolt":
		return storage.NewBoltStore(cfg.StorePath)

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
