package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia/internal/logger"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/storage"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

var (
	brt = time.FixedZone("BRT", -3*60*60)
	now = time.Date(2026, 5, 20, 15, 0, 0, 0, brt)
)

func day(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 10, 0, 0, 0, brt)
}

func amount(v float64) *float64 { return &v }

type seed struct {
	clients      *repository.ClientKVRepository
	appointments *repository.AppointmentKVRepository
}

func newSeed(t *testing.T) *seed {
	t.Helper()
	store := storage.NewMemoryStore()
	return &seed{
		clients:      repository.NewClientKVRepository(store, logger.Nop(), nil),
		appointments: repository.NewAppointmentKVRepository(store, timezone.FixedClock(now), logger.Nop(), nil),
	}
}

func (s *seed) add(t *testing.T, id string, c models.Client, st models.ServiceType, status models.AppointmentStatus, at time.Time, paid *float64) {
	t.Helper()
	ap := models.Appointment{
		ID: id, ClientID: c.ID, Client: c, DateTime: at,
		ServiceType: st, Status: status, PaidAmount: paid,
	}
	if status.IsTerminal() {
		done := at
		ap.CompletedAt = &done
	}
	require.NoError(t, s.appointments.Add(context.Background(), ap))
}

func TestWindow(t *testing.T) {
	from, to := Window(PeriodMonth, false, now)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, brt), from)
	assert.Equal(t, time.Date(2026, 5, 20, 23, 59, 59, 999000000, brt), to)

	from, _ = Window(PeriodQuarter, false, now)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, brt), from)

	// Quarter crosses the year boundary.
	from, _ = Window(PeriodQuarter, false, time.Date(2026, 2, 10, 9, 0, 0, 0, brt))
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, brt), from)

	from, to = Window(PeriodYear, true, now)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, brt), from)
	assert.Equal(t, 2099, to.Year())
	assert.Equal(t, time.December, to.Month())
	assert.Equal(t, 31, to.Day())
}

func TestPeriodReport(t *testing.T) {
	ctx := context.Background()
	s := newSeed(t)
	ana := models.Client{ID: "ana", Name: "Ana"}

	s.add(t, "1", ana, models.ServiceHaircutOnly, models.StatusCompleted, day(5, 2), amount(30))
	s.add(t, "2", ana, models.ServiceHaircutOnly, models.StatusCompleted, day(5, 19), amount(35))
	s.add(t, "3", ana, models.ServiceBeardOnly, models.StatusCancelled, day(5, 10), nil)
	s.add(t, "4", ana, models.ServiceHaircutAndBeard, models.StatusCompleted, day(4, 28), amount(50))
	s.add(t, "5", ana, models.ServiceHaircutAndBeard, models.StatusCompleted, day(5, 25), amount(50))
	s.add(t, "6", ana, models.ServiceHaircutOnly, models.StatusScheduled, day(5, 21), nil)

	uc := NewGetPeriodReport(s.appointments, timezone.FixedClock(now), brt)

	r, err := uc.Execute(ctx, PeriodReportInput{Period: PeriodMonth})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 2, r.Completed)
	assert.Equal(t, 1, r.Cancelled)
	assert.InDelta(t, 65.0, r.Revenue, 1e-9)
	assert.InDelta(t, 32.5, r.AverageTicket, 1e-9)
	require.NotNil(t, r.MostPopular)
	assert.Equal(t, models.ServiceHaircutOnly, *r.MostPopular)
	require.Len(t, r.Services, 3)
	assert.Equal(t, 2, r.Services[1].Count)
	assert.InDelta(t, 66.67, r.Services[1].Share, 0.01)

	withFuture, err := uc.Execute(ctx, PeriodReportInput{Period: PeriodMonth, IncludeFuture: true})
	require.NoError(t, err)
	assert.Equal(t, 4, withFuture.Total)
	assert.InDelta(t, 115.0, withFuture.Revenue, 1e-9)

	quarter, err := uc.Execute(ctx, PeriodReportInput{Period: PeriodQuarter})
	require.NoError(t, err)
	assert.Equal(t, 4, quarter.Total)
}

func TestPeriodReport_Empty(t *testing.T) {
	s := newSeed(t)
	r, err := NewGetPeriodReport(s.appointments, timezone.FixedClock(now), brt).
		Execute(context.Background(), PeriodReportInput{Period: PeriodYear})
	require.NoError(t, err)
	assert.Zero(t, r.Total)
	assert.Zero(t, r.AverageTicket)
	assert.Nil(t, r.MostPopular)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, p)

	_, err = ParsePeriod("week")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidPeriod))
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	s := newSeed(t)

	ana := models.Client{ID: "ana", Name: "Ana"}
	bruno := models.Client{ID: "bruno", Name: "Bruno"}
	require.NoError(t, s.clients.Add(ctx, models.Client{ID: "ana", Name: "Ana Maria"}))
	require.NoError(t, s.clients.Add(ctx, bruno))

	s.add(t, "1", ana, models.ServiceHaircutOnly, models.StatusCompleted, day(3, 1), amount(30))
	s.add(t, "2", ana, models.ServiceBeardOnly, models.StatusCompleted, day(4, 1), amount(25))
	s.add(t, "3", bruno, models.ServiceBeardOnly, models.StatusCompleted, day(4, 2), amount(25))
	s.add(t, "4", bruno, models.ServiceBeardOnly, models.StatusCancelled, day(4, 3), nil)

	sum := NewGetSummary(s.clients, s.appointments).Execute(ctx)
	assert.Equal(t, 2, sum.TotalClients)
	assert.Equal(t, 3, sum.TotalCompleted)
	assert.InDelta(t, 80.0, sum.TotalRevenue, 1e-9)
	require.NotNil(t, sum.MostPopularService)
	assert.Equal(t, models.ServiceBeardOnly, *sum.MostPopularService)
	require.NotNil(t, sum.MostFrequentClient)
	assert.Equal(t, "Ana Maria", sum.MostFrequentClient.Name)
}

func TestSummary_Empty(t *testing.T) {
	s := newSeed(t)
	sum := NewGetSummary(s.clients, s.appointments).Execute(context.Background())
	assert.Zero(t, sum.TotalCompleted)
	assert.Nil(t, sum.MostPopularService)
	assert.Nil(t, sum.MostFrequentClient)
}
