package models

import "time"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsTerminal reports whether the appointment already left the agenda.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Appointment struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`

	// Cópia do cliente no momento do agendamento. Não acompanha edições posteriores.
	Client Client `json:"client"`

	DateTime    time.Time   `json:"dateTime"`
	ServiceType ServiceType `json:"serviceType"`

	Status AppointmentStatus `json:"status"`

	PaidAmount *float64 `json:"paidAmount,omitempty"`
	Notes      *string  `json:"notes,omitempty"`

	// Preenchido tanto na conclusão quanto no cancelamento.
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	ReminderSent bool `json:"reminderSent"`

	CreatedAt time.Time `json:"createdAt"`
}
