package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

// DateTimeLayout is how date and time arrive, in the shop timezone.
const DateTimeLayout = "2006-01-02 15:04"

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID    string
	ServiceType string

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	clients   clientdomain.Repository
	reminders Reminders
	audit     *audit.Dispatcher
	now       timezone.Clock
	loc       *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	clients clientdomain.Repository,
	reminders Reminders,
	audit *audit.Dispatcher,
	now timezone.Clock,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		clients:   clients,
		reminders: reminders,
		audit:     audit,
		now:       now,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Cliente
	// --------------------------------------------------
	client, err := uc.clients.Get(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Serviço
	// --------------------------------------------------
	service, err := models.ParseServiceType(in.ServiceType)
	if err != nil {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidService, in.ServiceType)
	}

	// --------------------------------------------------
	// 3️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	at, err := time.ParseInLocation(DateTimeLayout, in.Date+" "+in.Time, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
	}

	now := uc.now()
	if err := domain.ValidateDateTime(at, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Criação (cliente copiado para o agendamento)
	// --------------------------------------------------
	ap := models.Appointment{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		Client:      *client,
		DateTime:    at,
		ServiceType: service,
		Status:      domain.InitialStatus(),
		CreatedAt:   now,
	}

	if err := uc.repo.Add(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Lembrete 24h antes
	// --------------------------------------------------
	uc.reminders.Schedule(ap)

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"client_id": ap.ClientID,
			"service":   ap.ServiceType,
		},
	})

	return &ap, nil
}
