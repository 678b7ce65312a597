package messaging

import (
	"context"

	"github.com/BruksfildServices01/barbearia/internal/audit"
	apdomain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/messaging"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

// Sender is implemented by *messaging.Sender.
type Sender interface {
	Send(ctx context.Context, k messaging.Kind, c models.Client, ap models.Appointment) (string, error)
	SendWinBack(ctx context.Context, c models.Client) (string, error)
}

// ======================================================
// APPOINTMENT MESSAGE
// ======================================================

type SendAppointmentMessageInput struct {
	AppointmentID string
	Kind          string
}

type SendAppointmentMessage struct {
	appointments apdomain.Repository
	clients      clientdomain.Repository
	sender       Sender
	audit        *audit.Dispatcher
}

func NewSendAppointmentMessage(
	appointments apdomain.Repository,
	clients clientdomain.Repository,
	sender Sender,
	audit *audit.Dispatcher,
) *SendAppointmentMessage {
	return &SendAppointmentMessage{
		appointments: appointments,
		clients:      clients,
		sender:       sender,
		audit:        audit,
	}
}

// Execute returns the WhatsApp link that was opened.
func (uc *SendAppointmentMessage) Execute(
	ctx context.Context,
	in SendAppointmentMessageInput,
) (string, error) {

	kind, err := messaging.ParseKind(in.Kind)
	if err != nil {
		return "", err
	}

	ap, err := uc.appointments.Get(ctx, in.AppointmentID)
	if err != nil {
		return "", err
	}

	// Telefone atual do cliente; a cópia do agendamento só se ele foi removido.
	c := ap.Client
	if cur, err := uc.clients.Get(ctx, ap.ClientID); err == nil {
		c = *cur
	}

	var link string
	if kind == messaging.KindWinBack {
		link, err = uc.sender.SendWinBack(ctx, c)
	} else {
		link, err = uc.sender.Send(ctx, kind, c, *ap)
	}
	if err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "message_sent",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"kind": kind},
	})
	return link, nil
}

// ======================================================
// WIN-BACK
// ======================================================

type SendWinBack struct {
	clients clientdomain.Repository
	sender  Sender
	audit   *audit.Dispatcher
}

func NewSendWinBack(
	clients clientdomain.Repository,
	sender Sender,
	audit *audit.Dispatcher,
) *SendWinBack {
	return &SendWinBack{
		clients: clients,
		sender:  sender,
		audit:   audit,
	}
}

func (uc *SendWinBack) Execute(ctx context.Context, clientID string) (string, error) {
	c, err := uc.clients.Get(ctx, clientID)
	if err != nil {
		return "", err
	}

	link, err := uc.sender.SendWinBack(ctx, *c)
	if err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "message_sent",
		Entity:   "client",
		EntityID: c.ID,
		Metadata: map[string]any{"kind": messaging.KindWinBack},
	})
	return link, nil
}
