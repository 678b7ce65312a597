package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var messages = map[string]string{
	CodeClientNotFound:      "Cliente não encontrado.",
	CodeAppointmentNotFound: "Agendamento não encontrado.",
	CodeInvalidName:         "O nome deve ter pelo menos 2 caracteres.",
	CodeInvalidPhone:        "O telefone deve ter pelo menos 10 dígitos.",
	CodeInvalidService:      "Serviço inválido.",
	CodeDateInPast:          "A data deve ser no futuro.",
	CodeInvalidDateTime:     "Data ou horário inválido.",
	CodeInvalidAmount:       "O valor pago não pode ser negativo.",
	CodeInvalidPrice:        "Os preços devem ser maiores que zero.",
	CodeInvalidTemplateKind: "Tipo de mensagem inválido.",
	CodeInvalidPeriod:       "Período inválido.",
	CodeWhatsAppOpenFailed:  "Não foi possível abrir o WhatsApp.",
	CodeBackupDisabled:      "Backup não configurado.",
}

// FromError traduz um erro de caso de uso para a resposta HTTP.
// Erros de negócio viram 400/404; o resto é tratado como falha de armazenamento.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "storage_error", "Não foi possível concluir a operação.")
		return
	}

	msg, ok := messages[be.Code]
	if !ok {
		msg = be.Code
	}
	if be.Detail != "" {
		msg = msg + " (" + be.Detail + ")"
	}

	switch be.Code {
	case CodeClientNotFound, CodeAppointmentNotFound:
		NotFound(c, be.Code, msg)
	default:
		BadRequest(c, be.Code, msg)
	}
}
