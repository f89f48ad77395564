package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s fiber.Storage) {
	t.Helper()

	val, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("hits", []byte("3"), 0))
	val, err = s.Get("hits")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)

	require.NoError(t, s.Set("short", []byte("1"), 50*time.Millisecond))
	assert.Eventually(t, func() bool {
		v, err := s.Get("short")
		return err == nil && v == nil
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, s.Delete("hits"))
	val, err = s.Get("hits")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))
	require.NoError(t, s.Reset())
	val, err = s.Get("a")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage(10 * time.Millisecond)
	defer func() { _ = s.Close() }()

	exerciseStorage(t, s)
}

func TestMemoryStorage_Evict(t *testing.T) {
	s := NewMemoryStorage(time.Hour)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Set("old", []byte("x"), time.Millisecond))
	require.NoError(t, s.Set("keep", []byte("y"), 0))
	s.evict(time.Now().Add(time.Second))

	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.NotContains(t, s.entries, "old")
	assert.Contains(t, s.entries, "keep")
}

func TestMemoryStorage_CloseTwice(t *testing.T) {
	s := NewMemoryStorage(time.Minute)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestNewRedisStorage_InvalidURL(t *testing.T) {
	_, err := NewRedisStorage("not-a-url", "test:", nil)
	require.Error(t, err)
}

func TestRedisStorage(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	s, err := NewRedisStorage(url, "usdtbob:test:"+uuid.NewString()+":", nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.Ping(context.Background()))

	exerciseStorage(t, s)
}
