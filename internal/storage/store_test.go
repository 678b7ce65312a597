package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "clients")
	require.NoError(t, err)
	assert.False(t, ok, "fresh namespace must be empty")

	require.NoError(t, s.Set(ctx, "clients", `[{"id":"1"}]`))
	require.NoError(t, s.Set(ctx, "price_HaircutOnly", "35"))

	v, ok, err := s.Get(ctx, "clients")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	// overwrite replaces the whole value
	require.NoError(t, s.Set(ctx, "clients", `[]`))
	v, _, err = s.Get(ctx, "clients")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"clients": "[]", "price_HaircutOnly": "35"}, all)

	require.NoError(t, s.Delete(ctx, "price_HaircutOnly"))
	require.NoError(t, s.Delete(ctx, "price_HaircutOnly"), "deleting a missing key is a no-op")
	_, ok, err = s.Get(ctx, "price_HaircutOnly")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "cache_version", "1.0.0"))
	require.NoError(t, s.Clear(ctx))
	all, err = s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// the namespace is usable again after a wipe
	require.NoError(t, s.Set(ctx, "cache_version", "1.0.0"))
	v, ok, err = s.Get(ctx, "cache_version")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", v)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseStore(t, s)

	require.NoError(t, s.Close())
	_, _, err := s.Get(context.Background(), "x")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewBoltStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Set(context.Background(), "clients", "[1]"))
	require.NoError(t, s.Close())

	// data survives reopening the file
	s, err = NewBoltStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	v, ok, err := s.Get(context.Background(), "clients")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1]", v)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStore(context.Background(), RedisOptions{Addr: mr.Addr(), Prefix: "barbearia:"})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	exerciseStore(t, s)
}

func TestRedisStoreClearKeepsForeignKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("other:app", "keep"))

	s, err := NewRedisStore(context.Background(), RedisOptions{Addr: mr.Addr(), Prefix: "barbearia:"})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "clients", "[]"))
	assert.True(t, mr.Exists("barbearia:clients"))

	require.NoError(t, s.Clear(ctx))
	assert.False(t, mr.Exists("barbearia:clients"))
	assert.True(t, mr.Exists("other:app"))
}

func TestRedisStoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(context.Background(), RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestGormStorePrefixEscaping(t *testing.T) {
	s := NewGormStore(nil, "bar_bearia%:")
	assert.Equal(t, `bar\_bearia\%:%`, s.likePrefix())
}

func TestRedisStoreSurfacesErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(context.Background(), RedisOptions{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mr.SetError("READONLY")
	assert.Error(t, s.Set(context.Background(), "clients", "[]"))
	_, _, err = s.Get(context.Background(), "clients")
	assert.Error(t, err)
}
