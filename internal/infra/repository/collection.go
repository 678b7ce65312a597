package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/metrics"
	"github.com/BruksfildServices01/barbearia/internal/storage"
)

// Keys of the persisted collections.
const (
	KeyClients      = "clients"
	KeyAppointments = "appointments"
)

// collection is a whole slice persisted as one JSON document under a single key.
//
// Reads fail soft (logged, empty slice). Writes fail loudly. Every mutation is a
// full load-modify-save under mu so concurrent requests in this process do not
// lose each other's updates.
type collection[T any] struct {
	store   storage.Store
	key     string
	log     *zap.SugaredLogger
	metrics *metrics.Metrics

	mu sync.Mutex
}

func newCollection[T any](
	store storage.Store,
	key string,
	log *zap.SugaredLogger,
	m *metrics.Metrics,
) *collection[T] {
	return &collection[T]{
		store:   store,
		key:     key,
		log:     log,
		metrics: m,
	}
}

func (c *collection[T]) load(ctx context.Context) []T {
	raw, ok, err := c.store.Get(ctx, c.key)
	c.metrics.StorageOp(c.key, "load", err)
	if err != nil {
		c.log.Errorw("failed to read collection", "key", c.key, "error", err)
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.log.Errorw("failed to decode collection", "key", c.key, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}

	err = c.store.Set(ctx, c.key, string(data))
	c.metrics.StorageOp(c.key, "save", err)
	if err != nil {
		c.log.Errorw("failed to write collection", "key", c.key, "error", err)
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// mutate runs one read-modify-write cycle. fn reports whether anything changed;
// nothing is written when it did not.
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, changed := fn(c.load(ctx))
	if !changed {
		return nil
	}
	return c.save(ctx, items)
}

// snapshot reads under the lock so a reader never sees a half-applied mutation
// of this process.
func (c *collection[T]) snapshot(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}
