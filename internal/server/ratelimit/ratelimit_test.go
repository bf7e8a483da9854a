package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTokenBucket_Take(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(10, 1.0, start)

	for i := 0; i < 10; i++ {
		allowed, remaining, _ := bucket.take(start)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 9-i, remaining)
	}

	allowed, remaining, full := bucket.take(start)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, start.Add(10*time.Second), full)
	assert.Equal(t, time.Second, bucket.nextToken())
}

func TestTokenBucket_Refill(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(10, 1.0, start)
	for i := 0; i < 10; i++ {
		bucket.take(start)
	}

	allowed, _, _ := bucket.take(start.Add(1100 * time.Millisecond))
	assert.True(t, allowed, "one token refilled")

	allowed, _, _ = bucket.take(start.Add(1200 * time.Millisecond))
	assert.False(t, allowed, "refilled token already consumed")

	allowed, remaining, _ := bucket.take(start.Add(time.Hour))
	assert.True(t, allowed)
	assert.Equal(t, 9, remaining, "refill never exceeds capacity")
}

func TestLimiter_Allow(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiterWithClock(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}, clock.Now)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/api/brands", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/api/brands", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter)

	clock.Advance(6 * time.Second)
	allowed, _ = limiter.Allow("127.0.0.1", "/api/brands", "GET")
	assert.True(t, allowed)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/api/ai/models", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/api/ai/models", "GET")
	assert.False(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.2", "/api/ai/models", "GET")
	assert.True(t, allowed)
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/api/brands", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}

	allowed, _ := limiter.Allow("192.168.1.1", "/api/health", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/api/ai/creations", "POST")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_CreationEndpointStricter(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/api/ai/creations", "POST")
		require.True(t, allowed, "burst request %d", i+1)
		assert.Equal(t, 30, info.Limit)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/api/ai/creations", "POST")
	assert.False(t, allowed, "burst exhausted")

	allowed, info := limiter.Allow("127.0.0.1", "/api/ai/models", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Hour})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/api/health", "GET")
		require.True(t, allowed)
		allowed, _ = limiter.Allow("127.0.0.1", "/metrics", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/api/brands", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_Cleanup(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiterWithClock(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Minute,
	}, clock.Now)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/api/brands", "GET")
	}
	require.Equal(t, 10, limiter.Len())

	clock.Advance(45 * time.Second)
	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/api/brands", "GET")
	}

	clock.Advance(30 * time.Second)
	limiter.Cleanup()
	assert.Equal(t, 5, limiter.Len())
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/api/brands", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 300, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/ai/creations", Method: "POST", Limit: 5},
		{Path: "/api/brands/", Method: "GET", Limit: 50},
	}

	assert.Equal(t, 5, MatchEndpoint("/api/ai/creations", "POST", configs).Limit)
	assert.Nil(t, MatchEndpoint("/api/ai/creations", "GET", configs))
	assert.Equal(t, 50, MatchEndpoint("/api/brands/3", "GET", configs).Limit)
	assert.Equal(t, 0, MatchEndpoint("/api/health", "GET", configs).Limit)
	assert.Nil(t, MatchEndpoint("/api/other", "GET", configs))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "5")
	t.Setenv("RATE_LIMIT_CREATION_LIMIT", "2")
	t.Setenv("RATE_LIMIT_BLACKLIST", "1.2.3.4")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.DefaultLimit)
	assert.True(t, cfg.Blacklist["1.2.3.4"])
	require.NotEmpty(t, cfg.EndpointConfigs)
	assert.Equal(t, 2, cfg.EndpointConfigs[0].Limit)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
