package pricing

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/logger"
	"github.com/BruksfildServices01/barbearia/internal/models"
	"github.com/BruksfildServices01/barbearia/internal/storage"
)

func TestService_Defaults(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), logger.Nop())
	s.Reload(context.Background())

	assert.Equal(t, Defaults(), s.Current())
	assert.Equal(t, 50.0, s.Price(models.ServiceHaircutAndBeard))
	assert.Equal(t, 30.0, s.Price(models.ServiceHaircutOnly))
	assert.Equal(t, 25.0, s.Price(models.ServiceBeardOnly))
}

func TestService_OverrideSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := NewService(store, logger.Nop())
	require.NoError(t, first.Save(ctx, Table{models.ServiceHaircutAndBeard: 40}))
	assert.Equal(t, 40.0, first.Price(models.ServiceHaircutAndBeard))

	restarted := NewService(store, logger.Nop())
	restarted.Reload(ctx)

	assert.Equal(t, 40.0, restarted.Price(models.ServiceHaircutAndBeard))
	assert.Equal(t, 30.0, restarted.Price(models.ServiceHaircutOnly))
	assert.Equal(t, 25.0, restarted.Price(models.ServiceBeardOnly))
}

func TestService_SaveRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	s := NewService(store, logger.Nop())

	for _, v := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		err := s.Save(ctx, Table{
			models.ServiceHaircutOnly: 35,
			models.ServiceBeardOnly:   v,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidPrice))
	}

	// Nothing was persisted, not even the valid entry.
	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, 30.0, s.Price(models.ServiceHaircutOnly))
}

func TestService_ReloadIgnoresGarbage(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, Key(models.ServiceHaircutOnly), "trinta"))
	require.NoError(t, store.Set(ctx, Key(models.ServiceBeardOnly), "27.5"))

	s := NewService(store, logger.Nop())
	s.Reload(ctx)

	assert.Equal(t, 30.0, s.Price(models.ServiceHaircutOnly))
	assert.Equal(t, 27.5, s.Price(models.ServiceBeardOnly))
}

func TestService_ReloadKeepsAnyStoredNumber(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, Key(models.ServiceHaircutAndBeard), "0"))
	require.NoError(t, store.Set(ctx, Key(models.ServiceHaircutOnly), "-5"))
	require.NoError(t, store.Set(ctx, Key(models.ServiceBeardOnly), "NaN"))

	s := NewService(store, logger.Nop())
	s.Reload(ctx)

	assert.Equal(t, 0.0, s.Price(models.ServiceHaircutAndBeard))
	assert.Equal(t, -5.0, s.Price(models.ServiceHaircutOnly))
	assert.Equal(t, 25.0, s.Price(models.ServiceBeardOnly))
}

func TestService_CurrentIsACopy(t *testing.T) {
	s := NewService(storage.NewMemoryStore(), logger.Nop())
	table := s.Current()
	table[models.ServiceBeardOnly] = 1

	assert.Equal(t, 25.0, s.Price(models.ServiceBeardOnly))
}
