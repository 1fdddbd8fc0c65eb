package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryCacheRemovePrefixEvictsScopedKeysOnly(t *testing.T) {
	cache := NewQueryCache(time.Minute)
	cache.Set(QueryKeyAuth, "token")
	cache.Set(QueryKeyUserProfile, "bare")
	cache.Set(ProfileQueryKey("jane@example.com"), "jane")
	cache.Set(ProfileQueryKey("john@example.com"), "john")
	cache.Set("userProfiles", "unrelated")

	cache.RemovePrefix(QueryKeyUserProfile)

	_, ok := cache.Get(ProfileQueryKey("jane@example.com"))
	assert.False(t, ok)
	_, ok = cache.Get(QueryKeyUserProfile)
	assert.False(t, ok)
	_, ok = cache.Get("userProfiles")
	assert.True(t, ok)
	_, ok = cache.Get(QueryKeyAuth)
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestQueryCacheEntriesExpire(t *testing.T) {
	cache := NewQueryCache(20 * time.Millisecond)
	cache.Set(QueryKeyAuth, "token")

	assert.Eventually(t, func() bool {
		_, ok := cache.Get(QueryKeyAuth)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestCountdownFormatting(t *testing.T) {
	testCases := []struct {
		seconds int
		want    string
	}{
		{seconds: 120, want: "2:00"},
		{seconds: 65, want: "1:05"},
		{seconds: 9, want: "0:09"},
		{seconds: 0, want: "0:00"},
		{seconds: -3, want: "0:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatCountdown(tc.seconds))
	}
}

func TestCountdownStopsAtZero(t *testing.T) {
	countdown := NewCountdown(2)
	assert.Equal(t, 1, countdown.Tick())
	assert.Equal(t, 0, countdown.Tick())
	assert.Equal(t, 0, countdown.Tick())
	assert.Equal(t, "0:00", countdown.String())
}
