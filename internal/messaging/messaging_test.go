package messaging

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/logger"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/storage"
)

type recordingOpener struct {
	links []string
	err   error
}

func (o *recordingOpener) Open(_ context.Context, link string) error {
	o.links = append(o.links, link)
	return o.err
}

var (
	ana = models.Client{ID: "c1", Name: "Ana", Phone: "(11) 99999-0000"}
	loc = time.FixedZone("BRT", -3*60*60)
)

func appointmentAt(t time.Time) models.Appointment {
	return models.Appointment{
		ID:          "a1",
		ClientID:    ana.ID,
		Client:      ana,
		DateTime:    t,
		ServiceType: models.ServiceHaircutAndBeard,
		Status:      models.StatusScheduled,
	}
}

func TestRender(t *testing.T) {
	// 17:30 UTC is 14:30 in São Paulo.
	ap := appointmentAt(time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC))

	got := Render("{name}|{date}|{time}|{service}|{amount}|{name}", ana, ap, loc)
	assert.Equal(t, "Ana|09/03/2026|14:30|Corte e Barba|0.00|Ana", got)

	paid := 42.5
	ap.PaidAmount = &paid
	assert.Equal(t, "R$ 42.50", Render("R$ {amount}", ana, ap, loc))
}

func TestRenderWinBack_OnlyName(t *testing.T) {
	got := RenderWinBack("{name} {date} {service}", ana)
	assert.Equal(t, "Ana {date} {service}", got)
}

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "adds country code", phone: "(11) 99999-0000", want: "https://wa.me/5511999990000?text="},
		{name: "keeps country code", phone: "+55 11 99999-0000", want: "https://wa.me/5511999990000?text="},
		{name: "area code 55 is local", phone: "(55) 99999-0000", want: "https://wa.me/5555999990000?text="},
		{name: "landline", phone: "(55) 3222-1000", want: "https://wa.me/555532221000?text="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := WhatsAppLink(tt.phone, "Olá Ana & cia")
			require.True(t, strings.HasPrefix(link, tt.want), link)

			q := strings.TrimPrefix(link, tt.want)
			assert.NotContains(t, q, "+")
			assert.NotContains(t, q, " ")
			assert.Contains(t, q, "%20")

			decoded, err := url.QueryUnescape(q)
			require.NoError(t, err)
			assert.Equal(t, "Olá Ana & cia", decoded)
		})
	}
}

func TestTemplates_OverrideAndReset(t *testing.T) {
	ctx := context.Background()
	tpl := NewTemplates(storage.NewMemoryStore(), logger.Nop())

	assert.Equal(t, DefaultTemplate(KindThanks), tpl.Get(ctx, KindThanks))

	require.NoError(t, tpl.Set(ctx, KindThanks, "Valeu {name}!"))
	assert.Equal(t, "Valeu {name}!", tpl.Get(ctx, KindThanks))
	assert.Equal(t, DefaultTemplate(KindReminder), tpl.All(ctx)[KindReminder])

	require.NoError(t, tpl.Reset(ctx, KindThanks))
	assert.Equal(t, DefaultTemplate(KindThanks), tpl.Get(ctx, KindThanks))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEmpty(t, DefaultTemplate(k))
	}

	_, err := ParseKind("promo")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTemplateKind))
}

func TestSender(t *testing.T) {
	ctx := context.Background()
	tpl := NewTemplates(storage.NewMemoryStore(), logger.Nop())
	require.NoError(t, tpl.Set(ctx, KindConfirmation, "Oi {name}, {service} às {time}"))

	opener := &recordingOpener{}
	s := NewSender(tpl, opener, loc, logger.Nop())

	ap := appointmentAt(time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC))
	link, err := s.Send(ctx, KindConfirmation, ana, ap)
	require.NoError(t, err)
	require.Len(t, opener.links, 1)
	assert.Equal(t, link, opener.links[0])
	assert.Equal(t, WhatsAppLink(ana.Phone, "Oi Ana, Corte e Barba às 14:30"), link)
}

func TestSender_OpenFailureNotRetried(t *testing.T) {
	opener := &recordingOpener{err: errors.New("whatsapp não instalado")}
	s := NewSender(NewTemplates(storage.NewMemoryStore(), logger.Nop()), opener, loc, logger.Nop())

	_, err := s.SendWinBack(context.Background(), ana)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeWhatsAppOpenFailed))

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ana.Phone, be.Detail)
	assert.Len(t, opener.links, 1)
}
