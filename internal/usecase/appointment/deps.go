package appointment

import "github.com/BruksfildServices01/barbearia/internal/models"

// Reminders is the part of the notification scheduler the use cases drive.
type Reminders interface {
	Schedule(ap models.Appointment) bool
	Cancel(id string)
}

type Prices interface {
	Price(s models.ServiceType) float64
}
