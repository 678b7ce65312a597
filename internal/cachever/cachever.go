// Package cachever wipes the store when the persisted data predates the running build.
package cachever

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/storage"
)

const (
	Key     = "cache_version"
	Version = "1.0.0"
)

type Checker struct {
	store storage.Store
	log   *zap.SugaredLogger
}

func NewChecker(store storage.Store, log *zap.SugaredLogger) *Checker {
	return &Checker{store: store, log: log}
}

// CheckAndClear clears the whole namespace when the stored version is absent or
// differs from Version, then records Version. It reports whether it wiped.
func (c *Checker) CheckAndClear(ctx context.Context) (bool, error) {
	current, ok, err := c.store.Get(ctx, Key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", Key, err)
	}
	if ok && current == Version {
		return false, nil
	}

	c.log.Infow("cache version changed, clearing store",
		"stored", current,
		"expected", Version,
	)
	if err := c.ClearAll(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ClearAll erases everything and records the current version.
func (c *Checker) ClearAll(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	if err := c.store.Set(ctx, Key, Version); err != nil {
		return fmt.Errorf("write %s: %w", Key, err)
	}
	return nil
}

// CurrentVersion returns the stored version, empty when absent.
func (c *Checker) CurrentVersion(ctx context.Context) (string, error) {
	v, _, err := c.store.Get(ctx, Key)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", Key, err)
	}
	return v, nil
}
