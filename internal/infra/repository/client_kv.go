package repository

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/metrics"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/storage"
)

type ClientKVRepository struct {
	clients *collection[models.Client]
}

func NewClientKVRepository(
	store storage.Store,
	log *zap.SugaredLogger,
	m *metrics.Metrics,
) *ClientKVRepository {
	return &ClientKVRepository{
		clients: newCollection[models.Client](store, KeyClients, log, m),
	}
}

func (r *ClientKVRepository) Add(ctx context.Context, c models.Client) error {
	return r.clients.mutate(ctx, func(all []models.Client) ([]models.Client, bool) {
		return append(all, c), true
	})
}

func (r *ClientKVRepository) Remove(ctx context.Context, id string) error {
	return r.clients.mutate(ctx, func(all []models.Client) ([]models.Client, bool) {
		out := all[:0]
		for _, c := range all {
			if c.ID != id {
				out = append(out, c)
			}
		}
		return out, len(out) != len(all)
	})
}

func (r *ClientKVRepository) Update(ctx context.Context, c models.Client) error {
	found := false
	err := r.clients.mutate(ctx, func(all []models.Client) ([]models.Client, bool) {
		for i := range all {
			if all[i].ID == c.ID {
				all[i].Name = c.Name
				all[i].Phone = c.Phone
				found = true
				return all, true
			}
		}
		return all, false
	})
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientKVRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	for _, c := range r.clients.snapshot(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ClientKVRepository) List(ctx context.Context) []models.Client {
	return r.clients.snapshot(ctx)
}

// Compile-time check
var _ domain.Repository = (*ClientKVRepository)(nil)
