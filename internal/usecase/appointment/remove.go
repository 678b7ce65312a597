package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
)

type RemoveAppointment struct {
	repo      domain.Repository
	reminders Reminders
	audit     *audit.Dispatcher
}

func NewRemoveAppointment(
	repo domain.Repository,
	reminders Reminders,
	audit *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:      repo,
		reminders: reminders,
		audit:     audit,
	}
}

func (uc *RemoveAppointment) Execute(ctx context.Context, id string) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.repo.Remove(ctx, id); err != nil {
		return err
	}
	uc.reminders.Cancel(id)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_removed",
		Entity:   "appointment",
		EntityID: id,
	})
	return nil
}
