package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia/internal/models"
)

type Repository interface {
	Add(ctx context.Context, ap models.Appointment) error
	// Remove de um id inexistente não é erro.
	Remove(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context) []models.Appointment

	// -------- state change (no-op when the id is unknown) --------
	Complete(ctx context.Context, id string, paidAmount *float64, notes *string) error
	Cancel(ctx context.Context, id string) error
	MarkReminderSent(ctx context.Context, id string) error

	// -------- derived views --------
	Upcoming(ctx context.Context) []models.Appointment
	History(ctx context.Context) []models.Appointment
}
