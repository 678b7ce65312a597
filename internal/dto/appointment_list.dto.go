package dto

import (
	"time"

	"github.com/BruksfildServices01/barbearia/internal/models"
)

type AppointmentListDTO struct {
	ID           string     `json:"id"`
	DateTime     time.Time  `json:"date_time"`
	Status       string     `json:"status"`
	ClientID     string     `json:"client_id"`
	ClientName   string     `json:"client_name"`
	ClientPhone  string     `json:"client_phone"`
	ServiceType  string     `json:"service_type"`
	ServiceLabel string     `json:"service_label"`
	PaidAmount   *float64   `json:"paid_amount,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:           ap.ID,
		DateTime:     ap.DateTime,
		Status:       string(ap.Status),
		ClientID:     ap.ClientID,
		ClientName:   ap.Client.Name,
		ClientPhone:  ap.Client.Phone,
		ServiceType:  string(ap.ServiceType),
		ServiceLabel: ap.ServiceType.Label(),
		PaidAmount:   ap.PaidAmount,
		CompletedAt:  ap.CompletedAt,
	}
}

func NewAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentListDTO(ap))
	}
	return out
}
