package client

import (
	"context"

	apdomain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

type GetClient struct {
	clients      domain.Repository
	appointments apdomain.Repository
	now          timezone.Clock
}

func NewGetClient(
	clients domain.Repository,
	appointments apdomain.Repository,
	now timezone.Clock,
) *GetClient {
	return &GetClient{
		clients:      clients,
		appointments: appointments,
		now:          now,
	}
}

func (uc *GetClient) Execute(ctx context.Context, id string) (*ClientView, error) {
	c, err := uc.clients.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	inactive := apdomain.InactiveClients([]models.Client{*c}, uc.appointments.List(ctx), uc.now())
	return &ClientView{Client: *c, Inactive: inactive[c.ID]}, nil
}
