package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barbearia/internal/models"
)

// InactiveAfterDays: sem corte concluído há mais que isso, o cliente é inativo.
const InactiveAfterDays = 30

// Upcoming filtra os agendados ainda por vir, do mais próximo ao mais distante.
func Upcoming(all []models.Appointment, now time.Time) []models.Appointment {
	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if ap.Status == StatusScheduled && ap.DateTime.After(now) {
			out = append(out, ap)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime.Before(out[j].DateTime)
	})
	return out
}

// History devolve concluídos e cancelados, do mais recente ao mais antigo.
func History(all []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if ap.Status.IsTerminal() {
			out = append(out, ap)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime.After(out[j].DateTime)
	})
	return out
}

// InactiveClients returns the ids of clients with no scheduled appointment from now
// on and either no completed appointment at all or a last one more than
// InactiveAfterDays whole days ago.
func InactiveClients(clients []models.Client, all []models.Appointment, now time.Time) map[string]bool {
	hasFuture := map[string]bool{}
	lastDone := map[string]time.Time{}

	for _, ap := range all {
		switch ap.Status {
		case StatusScheduled:
			if !ap.DateTime.Before(now) {
				hasFuture[ap.ClientID] = true
			}
		case StatusCompleted:
			if last, ok := lastDone[ap.ClientID]; !ok || ap.DateTime.After(last) {
				lastDone[ap.ClientID] = ap.DateTime
			}
		}
	}

	inactive := map[string]bool{}
	for _, c := range clients {
		if hasFuture[c.ID] {
			continue
		}
		last, ok := lastDone[c.ID]
		if !ok {
			inactive[c.ID] = true
			continue
		}
		days := int(now.Sub(last).Hours() / 24)
		if days > InactiveAfterDays {
			inactive[c.ID] = true
		}
	}
	return inactive
}
