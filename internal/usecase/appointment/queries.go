package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia/internal/models"
)

// ======================================================
// UPCOMING
// ======================================================

type ListUpcoming struct {
	repo domain.Repository
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{repo: repo}
}

func (uc *ListUpcoming) Execute(ctx context.Context) []models.Appointment {
	return uc.repo.Upcoming(ctx)
}

// ======================================================
// HISTORY
// ======================================================

type ListHistory struct {
	repo domain.Repository
}

func NewListHistory(repo domain.Repository) *ListHistory {
	return &ListHistory{repo: repo}
}

// Execute filters by client name or service label when search is not empty.
func (uc *ListHistory) Execute(ctx context.Context, search string) []models.Appointment {
	all := uc.repo.History(ctx)

	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return all
	}

	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if strings.Contains(strings.ToLower(ap.Client.Name), q) ||
			strings.Contains(strings.ToLower(ap.ServiceType.Label()), q) {
			out = append(out, ap)
		}
	}
	return out
}

// ======================================================
// GET
// ======================================================

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id string) (*models.Appointment, error) {
	return uc.repo.Get(ctx, id)
}
