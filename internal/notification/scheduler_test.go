package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia/internal/logger"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

type recorder struct {
	mu        sync.Mutex
	delivered []Reminder
	marked    []string
}

func (r *recorder) Deliver(_ context.Context, rem Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered = append(r.delivered, rem)
	return nil
}

func (r *recorder) MarkReminderSent(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marked = append(r.marked, id)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.delivered)
}

var (
	now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	brt = time.FixedZone("BRT", -3*60*60)
)

func newScheduler(rec *recorder) *Scheduler {
	return NewScheduler(rec, rec, timezone.FixedClock(now), brt, logger.Nop())
}

func appointmentAt(id string, at time.Time) models.Appointment {
	return models.Appointment{
		ID:          id,
		Client:      models.Client{Name: "Ana"},
		DateTime:    at,
		ServiceType: models.ServiceHaircutOnly,
		Status:      models.StatusScheduled,
	}
}

func TestSchedule_SkipsPastTrigger(t *testing.T) {
	s := newScheduler(&recorder{})

	assert.False(t, s.Schedule(appointmentAt("a", now.Add(23*time.Hour))))
	assert.False(t, s.Schedule(appointmentAt("b", now.Add(24*time.Hour))))
	assert.False(t, s.Pending("a"))
	assert.False(t, s.Pending("b"))

	assert.True(t, s.Schedule(appointmentAt("c", now.Add(48*time.Hour))))
	assert.True(t, s.Pending("c"))
	s.CancelAll()
}

func TestSchedule_FiresAndMarks(t *testing.T) {
	rec := &recorder{}
	s := newScheduler(rec)

	ap := appointmentAt("a1", now.Add(24*time.Hour+20*time.Millisecond))
	require.True(t, s.Schedule(ap))

	assert.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, Title, rec.delivered[0].Title)
	assert.Equal(t, "Ana tem Só Corte agendado para amanhã às 09:00", rec.delivered[0].Body)
	assert.Equal(t, []string{"a1"}, rec.marked)
	assert.False(t, s.Pending("a1"))
}

func TestCancel_PreventsDelivery(t *testing.T) {
	rec := &recorder{}
	s := newScheduler(rec)

	require.True(t, s.Schedule(appointmentAt("a1", now.Add(24*time.Hour+30*time.Millisecond))))
	s.Cancel("a1")
	s.Cancel("a1")

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, rec.count())
}

func TestSchedule_ReplacesSameID(t *testing.T) {
	rec := &recorder{}
	s := newScheduler(rec)

	require.True(t, s.Schedule(appointmentAt("a1", now.Add(24*time.Hour+30*time.Millisecond))))
	require.True(t, s.Schedule(appointmentAt("a1", now.Add(24*time.Hour+60*time.Millisecond))))

	assert.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestScheduleAll_OnlyScheduled(t *testing.T) {
	s := newScheduler(&recorder{})
	defer s.CancelAll()

	done := appointmentAt("done", now.Add(72*time.Hour))
	done.Status = models.StatusCompleted

	n := s.ScheduleAll([]models.Appointment{
		appointmentAt("a", now.Add(48*time.Hour)),
		appointmentAt("soon", now.Add(time.Hour)),
		done,
	})
	assert.Equal(t, 1, n)
	assert.True(t, s.Pending("a"))
}
