package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

type CompleteAppointmentInput struct {
	ID string

	// PaidAmount vazio assume o preço atual do serviço.
	PaidAmount *float64
	Notes      *string
}

type CompleteAppointment struct {
	repo      domain.Repository
	prices    Prices
	reminders Reminders
	audit     *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	prices Prices,
	reminders Reminders,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:      repo,
		prices:    prices,
		reminders: reminders,
		audit:     audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	amount := in.PaidAmount
	if amount == nil {
		v := uc.prices.Price(ap.ServiceType)
		amount = &v
	}
	if *amount < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAmount)
	}

	if err := uc.repo.Complete(ctx, ap.ID, amount, in.Notes); err != nil {
		return nil, err
	}
	uc.reminders.Cancel(ap.ID)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"paid_amount": *amount},
	})

	return uc.repo.Get(ctx, ap.ID)
}
