// Package notification schedules the one-shot reminder sent 24h before each appointment.
//
// Timers live in the process; callers schedule every upcoming appointment again
// on startup.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/timezone"
)

const Title = "Lembrete de Agendamento"

type Reminder struct {
	AppointmentID string
	Title         string
	Body          string
}

// Sink delivers a reminder that fired.
type Sink interface {
	Deliver(ctx context.Context, r Reminder) error
}

type LogSink struct {
	Log *zap.SugaredLogger
}

func (s LogSink) Deliver(_ context.Context, r Reminder) error {
	s.Log.Infow(r.Title, "appointment_id", r.AppointmentID, "body", r.Body)
	return nil
}

// Marker records that a reminder was delivered.
type Marker interface {
	MarkReminderSent(ctx context.Context, id string) error
}

type Scheduler struct {
	sink   Sink
	marker Marker
	now    timezone.Clock
	loc    *time.Location
	log    *zap.SugaredLogger

	mu      sync.Mutex
	pending map[string]*entry
}

type entry struct {
	timer *time.Timer
}

func NewScheduler(
	sink Sink,
	marker Marker,
	now timezone.Clock,
	loc *time.Location,
	log *zap.SugaredLogger,
) *Scheduler {
	return &Scheduler{
		sink:    sink,
		marker:  marker,
		now:     now,
		loc:     loc,
		log:     log,
		pending: make(map[string]*entry),
	}
}

// Schedule registers the reminder of ap, replacing any previous one for the same id.
// It reports false, and registers nothing, when the trigger time is not in the future.
func (s *Scheduler) Schedule(ap models.Appointment) bool {
	wait := appointment.ReminderTime(ap).Sub(s.now())
	if wait <= 0 {
		return false
	}

	r := Reminder{
		AppointmentID: ap.ID,
		Title:         Title,
		Body:          Body(ap, s.loc),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[ap.ID]; ok {
		prev.timer.Stop()
	}

	e := &entry{}
	e.timer = time.AfterFunc(wait, func() { s.fire(e, r) })
	s.pending[ap.ID] = e
	return true
}

// ScheduleAll schedules every scheduled appointment and returns how many were registered.
func (s *Scheduler) ScheduleAll(aps []models.Appointment) int {
	n := 0
	for _, ap := range aps {
		if ap.Status != models.StatusScheduled {
			continue
		}
		if s.Schedule(ap) {
			n++
		}
	}
	return n
}

func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.pending[id]; ok {
		e.timer.Stop()
		delete(s.pending, id)
	}
}

func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, id)
	}
}

// Pending reports whether a reminder is waiting for id.
func (s *Scheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

func (s *Scheduler) fire(e *entry, r Reminder) {
	s.mu.Lock()
	// Replaced or cancelled after the timer already started running.
	if s.pending[r.AppointmentID] != e {
		s.mu.Unlock()
		return
	}
	delete(s.pending, r.AppointmentID)
	s.mu.Unlock()

	ctx := context.Background()
	if err := s.sink.Deliver(ctx, r); err != nil {
		s.log.Errorw("failed to deliver reminder", "appointment_id", r.AppointmentID, "error", err)
		return
	}
	if err := s.marker.MarkReminderSent(ctx, r.AppointmentID); err != nil {
		s.log.Errorw("failed to mark reminder", "appointment_id", r.AppointmentID, "error", err)
	}
}

// Body is the text of the reminder of ap.
func Body(ap models.Appointment, loc *time.Location) string {
	return fmt.Sprintf("%s tem %s agendado para amanhã às %s",
		ap.Client.Name,
		ap.ServiceType.Label(),
		ap.DateTime.In(loc).Format("15:04"),
	)
}
