package client

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

type CreateClientInput struct {
	Name  string
	Phone string
}

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	if err := domain.ValidateName(in.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(in.Phone); err != nil {
		return nil, err
	}

	c := models.Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Phone:     domain.FormatPhone(in.Phone),
		CreatedAt: uc.now(),
	}

	if err := uc.repo.Add(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: c.ID,
	})

	return &c, nil
}
