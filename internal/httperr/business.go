package httperr

import "errors"

type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail != "" {
		return e.Code + ": " + e.Detail
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessf anexa um detalhe (ex.: telefone, serviço) ao código.
func ErrBusinessf(code, detail string) error {
	return BusinessError{Code: code, Detail: detail}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Business codes used across the use cases.
const (
	CodeClientNotFound      = "client_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeInvalidName         = "invalid_name"
	CodeInvalidPhone        = "invalid_phone"
	CodeInvalidService      = "invalid_service"
	CodeDateInPast          = "date_in_past"
	CodeInvalidDateTime     = "invalid_date_or_time"
	CodeInvalidAmount       = "invalid_amount"
	CodeInvalidPrice        = "invalid_price"
	CodeInvalidTemplateKind = "invalid_template_kind"
	CodeInvalidPeriod       = "invalid_period"
	CodeWhatsAppOpenFailed  = "whatsapp_open_failed"
	CodeBackupDisabled      = "backup_disabled"
)
