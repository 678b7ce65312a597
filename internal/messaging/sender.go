package messaging

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

// Opener hands a link to whatever actually delivers it.
type Opener interface {
	Open(ctx context.Context, link string) error
}

// ErrOpenFailed carries the phone the link was built for.
func ErrOpenFailed(phone string) error {
	return httperr.ErrBusinessf(httperr.CodeWhatsAppOpenFailed, phone)
}

// LogOpener only records the link; the caller returns it to the user.
type LogOpener struct {
	Log *zap.SugaredLogger
}

func (o LogOpener) Open(_ context.Context, link string) error {
	o.Log.Infow("whatsapp link", "link", link)
	return nil
}

type Sender struct {
	templates *Templates
	opener    Opener
	loc       *time.Location
	log       *zap.SugaredLogger
}

func NewSender(templates *Templates, opener Opener, loc *time.Location, log *zap.SugaredLogger) *Sender {
	return &Sender{
		templates: templates,
		opener:    opener,
		loc:       loc,
		log:       log,
	}
}

// Send renders the template of kind for the appointment and opens the link.
// Failures to open are returned once and never retried.
func (s *Sender) Send(ctx context.Context, k Kind, c models.Client, ap models.Appointment) (string, error) {
	text := Render(s.templates.Get(ctx, k), c, ap, s.loc)
	return s.open(ctx, k, c.Phone, text)
}

func (s *Sender) SendWinBack(ctx context.Context, c models.Client) (string, error) {
	text := RenderWinBack(s.templates.Get(ctx, KindWinBack), c)
	return s.open(ctx, KindWinBack, c.Phone, text)
}

func (s *Sender) open(ctx context.Context, k Kind, phone, text string) (string, error) {
	link := WhatsAppLink(phone, text)
	if err := s.opener.Open(ctx, link); err != nil {
		s.log.Errorw("failed to open whatsapp", "kind", k, "phone", phone, "error", err)
		return "", ErrOpenFailed(phone)
	}
	return link, nil
}
