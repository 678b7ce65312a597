package repository

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia/internal/metrics"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/storage"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

type AppointmentKVRepository struct {
	appointments *collection[models.Appointment]
	now          timezone.Clock
}

func NewAppointmentKVRepository(
	store storage.Store,
	now timezone.Clock,
	log *zap.SugaredLogger,
	m *metrics.Metrics,
) *AppointmentKVRepository {
	return &AppointmentKVRepository{
		appointments: newCollection[models.Appointment](store, KeyAppointments, log, m),
		now:          now,
	}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentKVRepository) Add(ctx context.Context, ap models.Appointment) error {
	return r.appointments.mutate(ctx, func(all []models.Appointment) ([]models.Appointment, bool) {
		return append(all, ap), true
	})
}

func (r *AppointmentKVRepository) Remove(ctx context.Context, id string) error {
	return r.appointments.mutate(ctx, func(all []models.Appointment) ([]models.Appointment, bool) {
		out := all[:0]
		for _, ap := range all {
			if ap.ID != id {
				out = append(out, ap)
			}
		}
		return out, len(out) != len(all)
	})
}

func (r *AppointmentKVRepository) Get(ctx context.Context, id string) (*models.Appointment, error) {
	for _, ap := range r.appointments.snapshot(ctx) {
		if ap.ID == id {
			return &ap, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AppointmentKVRepository) List(ctx context.Context) []models.Appointment {
	return r.appointments.snapshot(ctx)
}

// --------------------------------------------------
// Appointment (Complete / Cancel / Reminder)
// --------------------------------------------------

// update applies fn to the appointment with the given id. Unknown ids are a no-op.
func (r *AppointmentKVRepository) update(ctx context.Context, id string, fn func(ap *models.Appointment)) error {
	return r.appointments.mutate(ctx, func(all []models.Appointment) ([]models.Appointment, bool) {
		for i := range all {
			if all[i].ID == id {
				fn(&all[i])
				return all, true
			}
		}
		return all, false
	})
}

func (r *AppointmentKVRepository) Complete(
	ctx context.Context,
	id string,
	paidAmount *float64,
	notes *string,
) error {
	return r.update(ctx, id, func(ap *models.Appointment) {
		domain.Complete(ap, r.now(), paidAmount, notes)
	})
}

func (r *AppointmentKVRepository) Cancel(ctx context.Context, id string) error {
	return r.update(ctx, id, func(ap *models.Appointment) {
		domain.Cancel(ap, r.now())
	})
}

func (r *AppointmentKVRepository) MarkReminderSent(ctx context.Context, id string) error {
	return r.update(ctx, id, func(ap *models.Appointment) {
		ap.ReminderSent = true
	})
}

// --------------------------------------------------
// Views
// --------------------------------------------------

func (r *AppointmentKVRepository) Upcoming(ctx context.Context) []models.Appointment {
	return domain.Upcoming(r.appointments.snapshot(ctx), r.now())
}

func (r *AppointmentKVRepository) History(ctx context.Context) []models.Appointment {
	return domain.History(r.appointments.snapshot(ctx))
}

// Compile-time check
var _ domain.Repository = (*AppointmentKVRepository)(nil)
