package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	apdomain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barbearia/internal/domain/client"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

type Filter string

const (
	FilterAll      Filter = ""
	FilterActive   Filter = "active"
	FilterInactive Filter = "inactive"
)

func ParseFilter(raw string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case FilterAll, FilterActive, FilterInactive:
		return f, nil
	default:
		return "", fmt.Errorf("unknown client filter %q", raw)
	}
}

type ListClientsInput struct {
	Search string
	Filter Filter
}

// ClientView is a client plus whether it is inactive.
type ClientView struct {
	models.Client
	Inactive bool `json:"inactive"`
}

type ListClients struct {
	clients      domain.Repository
	appointments apdomain.Repository
	now          timezone.Clock
}

func NewListClients(
	clients domain.Repository,
	appointments apdomain.Repository,
	now timezone.Clock,
) *ListClients {
	return &ListClients{
		clients:      clients,
		appointments: appointments,
		now:          now,
	}
}

// Execute returns clients sorted by name (pt-BR collation).
func (uc *ListClients) Execute(ctx context.Context, in ListClientsInput) []ClientView {
	all := uc.clients.List(ctx)
	inactive := apdomain.InactiveClients(all, uc.appointments.List(ctx), uc.now())

	q := strings.ToLower(strings.TrimSpace(in.Search))
	qDigits := domain.Digits(in.Search)

	out := make([]ClientView, 0, len(all))
	for _, c := range all {
		isInactive := inactive[c.ID]

		switch in.Filter {
		case FilterActive:
			if isInactive {
				continue
			}
		case FilterInactive:
			if !isInactive {
				continue
			}
		}

		if q != "" && !matches(c, q, qDigits) {
			continue
		}

		out = append(out, ClientView{Client: c, Inactive: isInactive})
	}

	sortByName(out)
	return out
}

func matches(c models.Client, q, qDigits string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	return qDigits != "" && strings.Contains(domain.Digits(c.Phone), qDigits)
}

func sortByName(views []ClientView) {
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(views, func(i, j int) bool {
		return col.CompareString(views[i].Name, views[j].Name) < 0
	})
}

// ListInactiveClients is ListClients restricted to inactive clients.
type ListInactiveClients struct {
	list *ListClients
}

func NewListInactiveClients(list *ListClients) *ListInactiveClients {
	return &ListInactiveClients{list: list}
}

func (uc *ListInactiveClients) Execute(ctx context.Context) []ClientView {
	return uc.list.Execute(ctx, ListClientsInput{Filter: FilterInactive})
}
