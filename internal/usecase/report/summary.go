package report

import (
	"context"

	apdomain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	clientdomain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

type Summary struct {
	TotalClients   int     `json:"totalClients"`
	TotalCompleted int     `json:"totalCompleted"`
	TotalRevenue   float64 `json:"totalRevenue"`

	MostPopularService *models.ServiceType `json:"mostPopularService,omitempty"`
	MostFrequentClient *models.Client      `json:"mostFrequentClient,omitempty"`
}

// GetSummary reports all-time numbers over completed appointments.
type GetSummary struct {
	clients      clientdomain.Repository
	appointments apdomain.Repository
}

func NewGetSummary(
	clients clientdomain.Repository,
	appointments apdomain.Repository,
) *GetSummary {
	return &GetSummary{
		clients:      clients,
		appointments: appointments,
	}
}

func (uc *GetSummary) Execute(ctx context.Context) *Summary {
	clients := uc.clients.List(ctx)
	s := &Summary{TotalClients: len(clients)}

	services := make(map[models.ServiceType]int)
	visits := make(map[string]int)
	snapshots := make(map[string]models.Client)
	var order []string

	for _, ap := range uc.appointments.List(ctx) {
		if ap.Status != models.StatusCompleted {
			continue
		}
		s.TotalCompleted++
		if ap.PaidAmount != nil {
			s.TotalRevenue += *ap.PaidAmount
		}
		services[ap.ServiceType]++

		if _, seen := visits[ap.ClientID]; !seen {
			order = append(order, ap.ClientID)
			snapshots[ap.ClientID] = ap.Client
		}
		visits[ap.ClientID]++
	}

	_, s.MostPopularService = serviceStats(services, s.TotalCompleted)

	best, bestCount := "", 0
	for _, id := range order {
		if visits[id] > bestCount {
			best, bestCount = id, visits[id]
		}
	}
	if best == "" {
		return s
	}

	// Prefer the current record; removed clients fall back to the copy.
	c := snapshots[best]
	for _, cur := range clients {
		if cur.ID == best {
			c = cur
			break
		}
	}
	s.MostFrequentClient = &c
	return s
}
