// Package pricing holds the current price of each service.
//
// Defaults are overridden by the values persisted under price_<ServiceType>.
// The table is read once at startup and again after every save.
package pricing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/storage"
)

const keyPrefix = "price_"

type Table map[models.ServiceType]float64

// Defaults is the table used when nothing was persisted.
func Defaults() Table {
	return Table{
		models.ServiceHaircutAndBeard: 50,
		models.ServiceHaircutOnly:     30,
		models.ServiceBeardOnly:       25,
	}
}

func Key(s models.ServiceType) string {
	return keyPrefix + string(s)
}

// ErrInvalidPrice names the offending service.
func ErrInvalidPrice(s models.ServiceType) error {
	return httperr.ErrBusinessf(httperr.CodeInvalidPrice, string(s))
}

type Service struct {
	store storage.Store
	log   *zap.SugaredLogger

	mu    sync.RWMutex
	table Table
}

func NewService(store storage.Store, log *zap.SugaredLogger) *Service {
	return &Service{
		store: store,
		log:   log,
		table: Defaults(),
	}
}

// Reload rebuilds the table from defaults plus whatever parses in the store.
// Unreadable values are logged and ignored.
func (s *Service) Reload(ctx context.Context) {
	next := Defaults()

	for _, st := range models.ServiceTypes {
		raw, ok, err := s.store.Get(ctx, Key(st))
		if err != nil {
			s.log.Errorw("failed to read price", "service", st, "error", err)
			continue
		}
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		// Save só grava positivos; aqui qualquer número finito gravado vale
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			s.log.Warnw("ignoring stored price", "service", st, "value", raw)
			continue
		}
		next[st] = v
	}

	s.mu.Lock()
	s.table = next
	s.mu.Unlock()
}

// Current returns a copy of the table.
func (s *Service) Current() Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Table, len(s.table))
	for k, v := range s.table {
		out[k] = v
	}
	return out
}

func (s *Service) Price(st models.ServiceType) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table[st]
}

// Save persists the given prices. Services missing from t keep their value.
// Nothing is written when any value is invalid.
func (s *Service) Save(ctx context.Context, t Table) error {
	for _, st := range models.ServiceTypes {
		v, ok := t[st]
		if !ok {
			continue
		}
		if !valid(v) {
			return ErrInvalidPrice(st)
		}
	}
	for st := range t {
		if !st.Valid() {
			return httperr.ErrBusinessf(httperr.CodeInvalidService, string(st))
		}
	}

	// Keys are independent: a failure here may leave earlier ones written.
	for _, st := range models.ServiceTypes {
		v, ok := t[st]
		if !ok {
			continue
		}
		raw := strconv.FormatFloat(v, 'f', -1, 64)
		if err := s.store.Set(ctx, Key(st), raw); err != nil {
			s.Reload(ctx)
			return fmt.Errorf("save price %s: %w", st, err)
		}
	}

	s.Reload(ctx)
	return nil
}

func valid(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
