package appointment

import (
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status = models.AppointmentStatus

const (
	StatusScheduled = models.StatusScheduled
	StatusCancelled = models.StatusCancelled
	StatusCompleted = models.StatusCompleted
)

var ErrNotFound = httperr.ErrBusiness(httperr.CodeAppointmentNotFound)

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusScheduled
}
