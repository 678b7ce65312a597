package messaging

import (
	"context"

	"github.com/BruksfildServices01/barbearia/internal/messaging"
)

// ManageTemplates reads, overrides and resets message templates.
type ManageTemplates struct {
	templates *messaging.Templates
}

func NewManageTemplates(templates *messaging.Templates) *ManageTemplates {
	return &ManageTemplates{templates: templates}
}

func (uc *ManageTemplates) List(ctx context.Context) map[messaging.Kind]string {
	return uc.templates.All(ctx)
}

func (uc *ManageTemplates) Set(ctx context.Context, kind, text string) error {
	k, err := messaging.ParseKind(kind)
	if err != nil {
		return err
	}
	return uc.templates.Set(ctx, k, text)
}

func (uc *ManageTemplates) Reset(ctx context.Context, kind string) error {
	k, err := messaging.ParseKind(kind)
	if err != nil {
		return err
	}
	return uc.templates.Reset(ctx, k)
}
