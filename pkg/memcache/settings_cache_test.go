package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSettingsCache_SetGet(t *testing.T) {
	cache := NewSettingsCache(time.Minute)

	cache.Set("settings", "value")
	got, ok := cache.Get("settings")
	require.True(t, ok)
	require.Equal(t, "value", got)

	_, ok = cache.Get("missing")
	require.False(t, ok)
}

func TestSettingsCache_TTLExpiry(t *testing.T) {
	cache := NewSettingsCache(5 * time.Minute)

	now := time.Now()
	cache.SetClock(func() time.Time { return now })
	cache.Set("settings", "value")

	_, ok := cache.Get("settings")
	require.True(t, ok)

	cache.SetClock(func() time.Time { return now.Add(5*time.Minute + time.Second) })
	_, ok = cache.Get("settings")
	require.False(t, ok)
}

func TestSettingsCache_Invalidate(t *testing.T) {
	cache := NewSettingsCache(time.Minute)

	cache.Set("settings", "value")
	cache.Invalidate("settings")

	_, ok := cache.Get("settings")
	require.False(t, ok)
}
