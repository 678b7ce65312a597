package client

import (
	"context"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/client"
)

// RemoveClient deletes only the client; its appointments stay in the history.
type RemoveClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveClient(repo domain.Repository, audit *audit.Dispatcher) *RemoveClient {
	return &RemoveClient{repo: repo, audit: audit}
}

func (uc *RemoveClient) Execute(ctx context.Context, id string) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Remove(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_removed",
		Entity:   "client",
		EntityID: id,
	})
	return nil
}
