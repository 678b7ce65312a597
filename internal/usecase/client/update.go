package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

type UpdateClientInput struct {
	ID    string
	Name  string
	Phone string
}

// UpdateClient changes name and phone. Appointments keep the copy taken when booked.
type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(repo domain.Repository, audit *audit.Dispatcher) *UpdateClient {
	return &UpdateClient{repo: repo, audit: audit}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	in UpdateClientInput,
) (*models.Client, error) {

	c, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateName(in.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(in.Phone); err != nil {
		return nil, err
	}

	c.Name = strings.TrimSpace(in.Name)
	c.Phone = domain.FormatPhone(in.Phone)

	if err := uc.repo.Update(ctx, *c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: c.ID,
	})

	return c, nil
}
