package ratelimit

import (
	"sync"
	"time"
)

// idleBucketTTL is how long an untouched bucket survives cleanup.
const idleBucketTTL = time.Hour

// Info describes the limit applied to one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

type entry struct {
	bucket     *TokenBucket
	lastAccess time.Time
}

// Limiter tracks one bucket per client and endpoint.
type Limiter struct {
	config *Config

	mu      sync.Mutex
	buckets map[string]*entry

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a limiter. A nil config allows 600 requests per minute
// per endpoint and client.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*entry),
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow reports whether the client may call method on path right now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	endpoint := MatchEndpoint(path, method, l.config.EndpointConfigs)
	key := clientID + ":" + method + ":" + path
	if endpoint == nil {
		endpoint = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	} else if endpoint.Path != "" {
		// Requests matching one pattern share a bucket regardless of ids.
		key = clientID + ":" + method + ":" + endpoint.Path
	}
	if endpoint.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.bucket(key, endpoint)
	allowed, remaining, reset := bucket.take()

	info := Info{
		Allowed:   allowed,
		Limit:     endpoint.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		bucket.mu.Lock()
		info.RetryAfter = bucket.nextToken()
		bucket.mu.Unlock()
	}
	return allowed, info
}

func (l *Limiter) bucket(key string, endpoint *EndpointConfig) *TokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.buckets[key]
	if !ok {
		window := endpoint.Window
		if window <= 0 {
			window = time.Minute
		}
		capacity := endpoint.Burst
		if capacity <= 0 {
			capacity = endpoint.Limit
		}
		e = &entry{bucket: newTokenBucket(capacity, float64(endpoint.Limit)/window.Seconds())}
		l.buckets[key] = e
	}
	e.lastAccess = time.Now()
	return e.bucket
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(time.Now().Add(-idleBucketTTL))
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets not used since cutoff.
func (l *Limiter) evictIdle(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.buckets {
		if e.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
