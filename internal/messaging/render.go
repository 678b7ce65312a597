package messaging

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"

	countryCode = "55"
)

// Render substitutes every placeholder. Dates are shown in loc.
func Render(tpl string, c models.Client, ap models.Appointment, loc *time.Location) string {
	at := ap.DateTime.In(loc)

	amount := "0.00"
	if ap.PaidAmount != nil {
		amount = fmt.Sprintf("%.2f", *ap.PaidAmount)
	}

	return strings.NewReplacer(
		"{name}", c.Name,
		"{date}", at.Format(DateLayout),
		"{time}", at.Format(TimeLayout),
		"{service}", ap.ServiceType.Label(),
		"{amount}", amount,
	).Replace(tpl)
}

// RenderWinBack only knows the client, so only {name} is replaced.
func RenderWinBack(tpl string, c models.Client) string {
	return strings.ReplaceAll(tpl, "{name}", c.Name)
}

// WhatsAppLink builds the wa.me link for phone with text prefilled.
func WhatsAppLink(phone, text string) string {
	n := client.Digits(phone)
	// DDD + número (10 ou 11 dígitos) é sempre local, mesmo com DDD 55
	if len(n) == 10 || len(n) == 11 || !strings.HasPrefix(n, countryCode) {
		n = countryCode + n
	}
	q := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + n + "?text=" + q
}
