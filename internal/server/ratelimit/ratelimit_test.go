package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Take(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		if ok, _, _ := bucket.take(); !ok {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	if ok, remaining, _ := bucket.take(); ok || remaining != 0 {
		t.Errorf("Expected 11th request to be denied with 0 remaining, got ok=%v remaining=%d", ok, remaining)
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)
	for i := 0; i < 10; i++ {
		bucket.take()
	}

	time.Sleep(1100 * time.Millisecond)

	if ok, _, _ := bucket.take(); !ok {
		t.Error("Expected request to be allowed after refill")
	}
	if ok, _, _ := bucket.take(); ok {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_Status(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)
	for i := 0; i < 5; i++ {
		bucket.take()
	}

	remaining, full := bucket.status()
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if !full.After(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/resume", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	allowed, info := limiter.Allow("127.0.0.1", "/resume", "GET")
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
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

	for i := 0; i < 50; i++ {
		if allowed, info := limiter.Allow("127.0.0.1", "/resume", "GET"); !allowed || info.Limit != 0 {
			t.Fatalf("Expected whitelisted request %d to be allowed without limit", i+1)
		}
	}
	if allowed, _ := limiter.Allow("192.168.1.1", "/resume", "GET"); allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/analyze", "POST"); !allowed {
			t.Fatalf("Expected request %d to be allowed when disabled", i+1)
		}
	}
}

func TestLimiter_GenerateRoutesShareBucket(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(30),
	})
	defer limiter.Stop()

	// Burst is 5 regardless of which experience item is enriched.
	for i := 0; i < 5; i++ {
		path := fmt.Sprintf("/resume/experience/item-%d/generate", i)
		allowed, info := limiter.Allow("127.0.0.1", path, "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 30 {
			t.Errorf("Expected limit 30, got %d", info.Limit)
		}
	}
	if allowed, _ := limiter.Allow("127.0.0.1", "/resume/experience/other/generate", "POST"); allowed {
		t.Error("Expected 6th generate request to be denied")
	}

	if allowed, info := limiter.Allow("127.0.0.1", "/resume/summary/generate", "POST"); !allowed || info.Limit != 30 {
		t.Error("Expected summary generation to have its own bucket")
	}
	if allowed, info := limiter.Allow("127.0.0.1", "/resume/experience/x", "PATCH"); !allowed || info.Limit != 1000 {
		t.Errorf("Expected default limit for edits, got %d", info.Limit)
	}
	if allowed, info := limiter.Allow("10.0.0.2", "/resume/experience/x/generate", "POST"); !allowed || info.Remaining != 4 {
		t.Errorf("Expected separate bucket per client, got remaining %d", info.Remaining)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Minute})
	defer limiter.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Allow("127.0.0.1", "/resume", "GET"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowed)
	}
}

func TestLimiter_EvictIdle(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/resume", "GET")
	}
	if n := limiter.size(); n != 10 {
		t.Fatalf("Expected 10 buckets, got %d", n)
	}

	if removed := limiter.evictIdle(time.Now().Add(-time.Minute)); removed != 0 {
		t.Errorf("Expected recent buckets to survive, removed %d", removed)
	}
	if removed := limiter.evictIdle(time.Now().Add(time.Second)); removed != 10 {
		t.Errorf("Expected all buckets evicted, removed %d", removed)
	}
	if n := limiter.size(); n != 0 {
		t.Errorf("Expected no buckets, got %d", n)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()
	limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/resume", "GET")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if info.Limit != 600 {
		t.Errorf("Expected default limit 600, got %d", info.Limit)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/resume/experience/{id}/generate", Method: "POST", Limit: 1},
		{Path: "/resume/summary/generate", Method: "POST", Limit: 2},
		{Path: "/export", Method: "GET", Limit: 3},
		{Path: "/files/", Method: "GET", Limit: 4},
	}

	tests := []struct {
		path   string
		method string
		want   int // -1 for no match
	}{
		{"/resume/experience/abc/generate", "POST", 1},
		{"/resume/experience//generate", "POST", -1},
		{"/resume/experience/abc/generate", "GET", -1},
		{"/resume/summary/generate", "POST", 2},
		{"/export", "GET", 3},
		{"/files/a/b", "GET", 4},
		{"/health", "GET", 0},
		{"/resume", "GET", -1},
	}

	for _, tt := range tests {
		got := MatchEndpoint(tt.path, tt.method, configs)
		switch {
		case tt.want < 0 && got != nil:
			t.Errorf("%s %s: expected no match, got %+v", tt.method, tt.path, got)
		case tt.want >= 0 && got == nil:
			t.Errorf("%s %s: expected limit %d, got no match", tt.method, tt.path, tt.want)
		case tt.want >= 0 && got.Limit != tt.want:
			t.Errorf("%s %s: expected limit %d, got %d", tt.method, tt.path, tt.want, got.Limit)
		}
	}
}

func TestLoadConfigFrom(t *testing.T) {
	env := map[string]string{
		"RATE_LIMIT_DEFAULT_LIMIT":  "50",
		"RATE_LIMIT_WHITELIST":      " 127.0.0.1, ::1 ,",
		"RATE_LIMIT_GENERATE_LIMIT": "7",
		"RATE_LIMIT_DEFAULT_WINDOW": "not-a-duration",
	}
	cfg := LoadConfigFrom(func(k string) string { return env[k] })

	if !cfg.Enabled || cfg.DefaultLimit != 50 || cfg.DefaultWindow != time.Minute {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Whitelist) != 2 || !cfg.Whitelist["::1"] {
		t.Errorf("unexpected whitelist: %v", cfg.Whitelist)
	}
	if cfg.EndpointConfigs[0].Limit != 7 {
		t.Errorf("expected generate limit 7, got %d", cfg.EndpointConfigs[0].Limit)
	}

	disabled := LoadConfigFrom(func(k string) string {
		if k == "RATE_LIMIT_ENABLED" {
			return "false"
		}
		return ""
	})
	if disabled.Enabled {
		t.Error("expected rate limiting disabled")
	}
}
