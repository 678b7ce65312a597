package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

// PastGrace é a tolerância para um horário que acabou de passar.
const PastGrace = 5 * time.Minute

// ===============================
// Domain Actions
// ===============================

// Complete marca o atendimento como concluído. Valor e observações só são
// sobrescritos quando informados; chamar de novo atualiza completedAt.
func Complete(ap *models.Appointment, now time.Time, paidAmount *float64, notes *string) {
	ap.Status = StatusCompleted
	ap.CompletedAt = &now

	if paidAmount != nil {
		v := *paidAmount
		ap.PaidAmount = &v
	}
	if notes != nil && *notes != "" {
		n := *notes
		ap.Notes = &n
	}
}

// Cancel reaproveita completedAt como momento do encerramento.
func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = StatusCancelled
	ap.CompletedAt = &now
}

// ReminderTime é o instante do lembrete: 24h antes do horário marcado.
func ReminderTime(ap models.Appointment) time.Time {
	return ap.DateTime.Add(-24 * time.Hour)
}

// ValidateDateTime rejeita horários mais de PastGrace no passado.
func ValidateDateTime(at, now time.Time) error {
	if at.Before(now.Add(-PastGrace)) {
		return httperr.ErrBusiness(httperr.CodeDateInPast)
	}
	return nil
}
