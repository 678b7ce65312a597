package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia/internal/dto"
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barbearia/internal/usecase/appointment"
	ucMessaging "github.com/BruksfildServices01/barbearia/internal/usecase/messaging"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	complete *ucAppointment.CompleteAppointment
	cancel   *ucAppointment.CancelAppointment
	remove   *ucAppointment.RemoveAppointment
	get      *ucAppointment.GetAppointment
	upcoming *ucAppointment.ListUpcoming
	history  *ucAppointment.ListHistory
	message  *ucMessaging.SendAppointmentMessage
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	complete *ucAppointment.CompleteAppointment,
	cancel *ucAppointment.CancelAppointment,
	remove *ucAppointment.RemoveAppointment,
	get *ucAppointment.GetAppointment,
	upcoming *ucAppointment.ListUpcoming,
	history *ucAppointment.ListHistory,
	message *ucMessaging.SendAppointmentMessage,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		complete: complete,
		cancel:   cancel,
		remove:   remove,
		get:      get,
		upcoming: upcoming,
		history:  history,
		message:  message,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type CompleteAppointmentRequest struct {
	PaidAmount *float64 `json:"paid_amount"`
	Notes      *string  `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:    req.ClientID,
		ServiceType: req.ServiceType,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	httpresp.List(c, dto.NewAppointmentList(h.upcoming.Execute(c.Request.Context())))
}

// History aceita ?query= (nome do cliente ou serviço).
func (h *AppointmentHandler) History(c *gin.Context) {
	httpresp.List(c, dto.NewAppointmentList(h.history.Execute(c.Request.Context(), c.Query("query"))))
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	var req CompleteAppointmentRequest
	// corpo é opcional (inclusive chunked, sem Content-Length)
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	ap, err := h.complete.Execute(c.Request.Context(), ucAppointment.CompleteAppointmentInput{
		ID:         c.Param("id"),
		PaidAmount: req.PaidAmount,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// WHATSAPP
// ======================================================

func (h *AppointmentHandler) SendMessage(c *gin.Context) {
	link, err := h.message.Execute(c.Request.Context(), ucMessaging.SendAppointmentMessageInput{
		AppointmentID: c.Param("id"),
		Kind:          c.Param("kind"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"link": link})
}
