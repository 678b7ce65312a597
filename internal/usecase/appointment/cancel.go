package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

type CancelAppointment struct {
	repo      domain.Repository
	reminders Reminders
	audit     *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	reminders Reminders,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:      repo,
		reminders: reminders,
		audit:     audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Cancel(ctx, ap.ID); err != nil {
		return nil, err
	}
	uc.reminders.Cancel(ap.ID)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return uc.repo.Get(ctx, ap.ID)
}
