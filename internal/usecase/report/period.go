package report

import (
	"context"
	"time"

	apdomain "github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

var periodLabels = map[Period]string{
	PeriodMonth:   "Mês Atual",
	PeriodQuarter: "Últimos 3 Meses",
	PeriodYear:    "Ano Atual",
}

func ParsePeriod(raw string) (Period, error) {
	if raw == "" {
		return PeriodMonth, nil
	}
	p := Period(raw)
	if _, ok := periodLabels[p]; !ok {
		return "", httperr.ErrBusinessf(httperr.CodeInvalidPeriod, raw)
	}
	return p, nil
}

// ======================================================
// OUTPUT
// ======================================================

type ServiceStat struct {
	Service models.ServiceType `json:"service"`
	Label   string             `json:"label"`
	Count   int                `json:"count"`
	// Share é o percentual sobre o total do período.
	Share float64 `json:"share"`
}

type PeriodReport struct {
	Period Period    `json:"period"`
	Label  string    `json:"label"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`

	Total     int `json:"total"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`

	Revenue       float64 `json:"revenue"`
	AverageTicket float64 `json:"averageTicket"`

	Services    []ServiceStat       `json:"services"`
	MostPopular *models.ServiceType `json:"mostPopular,omitempty"`
}

type PeriodReportInput struct {
	Period        Period
	IncludeFuture bool
}

// ======================================================
// USE CASE
// ======================================================

type GetPeriodReport struct {
	repo apdomain.Repository
	now  timezone.Clock
	loc  *time.Location
}

func NewGetPeriodReport(
	repo apdomain.Repository,
	now timezone.Clock,
	loc *time.Location,
) *GetPeriodReport {
	return &GetPeriodReport{
		repo: repo,
		now:  now,
		loc:  loc,
	}
}

func (uc *GetPeriodReport) Execute(ctx context.Context, in PeriodReportInput) (*PeriodReport, error) {
	label, ok := periodLabels[in.Period]
	if !ok {
		return nil, httperr.ErrBusinessf(httperr.CodeInvalidPeriod, string(in.Period))
	}

	from, to := Window(in.Period, in.IncludeFuture, uc.now().In(uc.loc))

	r := &PeriodReport{
		Period: in.Period,
		Label:  label,
		From:   from,
		To:     to,
	}

	counts := make(map[models.ServiceType]int, len(models.ServiceTypes))
	for _, ap := range uc.repo.History(ctx) {
		ref := referenceDate(ap)
		if ref.Before(from) || ref.After(to) {
			continue
		}

		r.Total++
		counts[ap.ServiceType]++

		switch ap.Status {
		case models.StatusCompleted:
			r.Completed++
			if ap.PaidAmount != nil {
				r.Revenue += *ap.PaidAmount
			}
		case models.StatusCancelled:
			r.Cancelled++
		}
	}

	if r.Completed > 0 {
		r.AverageTicket = r.Revenue / float64(r.Completed)
	}
	r.Services, r.MostPopular = serviceStats(counts, r.Total)

	return r, nil
}

// Window is the reporting interval of p as seen at now. The end is the last
// instant of today, or of 2099-12-31 when future dates are included.
func Window(p Period, includeFuture bool, now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	y, m, d := now.Date()

	var from time.Time
	switch p {
	case PeriodQuarter:
		from = time.Date(y, m-3, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		from = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		from = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	}

	to := endOfDay(y, m, d, loc)
	if includeFuture {
		to = endOfDay(2099, time.December, 31, loc)
	}
	return from, to
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(time.Millisecond*999), loc)
}

func referenceDate(ap models.Appointment) time.Time {
	if ap.CompletedAt != nil {
		return *ap.CompletedAt
	}
	return ap.DateTime
}

// serviceStats keeps display order; ties for most popular go to the first service.
func serviceStats(counts map[models.ServiceType]int, total int) ([]ServiceStat, *models.ServiceType) {
	stats := make([]ServiceStat, 0, len(models.ServiceTypes))
	var best *models.ServiceType
	bestCount := 0

	for _, st := range models.ServiceTypes {
		n := counts[st]
		share := 0.0
		if total > 0 {
			share = float64(n) / float64(total) * 100
		}
		stats = append(stats, ServiceStat{
			Service: st,
			Label:   st.Label(),
			Count:   n,
			Share:   share,
		})
		if n > bestCount {
			s := st
			best = &s
			bestCount = n
		}
	}
	return stats, best
}
