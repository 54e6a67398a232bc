package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/resolve", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
			{Path: "/jobs/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	}
}

func TestTokenBucketExhaustsBurst(t *testing.T) {
	bucket := newTokenBucket(3, 1.0/60.0)

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d within burst", i)
	}
	assert.False(t, bucket.allow())
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := newTokenBucket(1, 1000) // refills essentially instantly

	require.True(t, bucket.allow())
	time.Sleep(5 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestLimiterEnforcesBurst(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/resolve", "POST")
		require.True(t, allowed, "request %d", i)
		require.NotNil(t, info)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/resolve", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/resolve", "POST")
		require.True(t, allowed)
	}

	allowed, _ := limiter.Allow("5.6.7.8", "/resolve", "POST")
	assert.True(t, allowed, "second client has its own bucket")
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/resolve", "POST")
		assert.True(t, allowed)
	}

	allowed, info := limiter.Allow("10.0.0.2", "/resolve", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/resolve", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiterHealthNeverLimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name     string
		path     string
		method   string
		wantPath string
		wantNil  bool
	}{
		{"exact reprocess", "/admin/reprocess", "POST", "/admin/reprocess", false},
		{"exact login", "/admin/login", "POST", "/admin/login", false},
		{"exact jobs", "/jobs", "POST", "/jobs", false},
		{"prefix jobs subpath", "/jobs/123/role-kit", "POST", "/jobs/", false},
		{"resolve", "/resolve", "POST", "/resolve", false},
		{"unmatched method", "/resolve", "GET", "", true},
		{"catalog falls through", "/role-kits", "GET", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestMatchEndpointHealthUnlimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, got)
	assert.LessOrEqual(t, got.Limit, 0)
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WHITELIST", "127.0.0.1, 10.0.0.1")
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["127.0.0.1"])
	assert.True(t, cfg.Whitelist["10.0.0.1"])
	assert.NotEmpty(t, cfg.EndpointConfigs)
}
