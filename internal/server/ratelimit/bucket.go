// Package ratelimit throttles HTTP clients with per-endpoint token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket holds up to capacity tokens and refills at refillRate per second.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// refill must be called with mu held.
func (tb *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed*tb.refillRate)
	tb.lastRefill = now
}

// take consumes one token if available and reports the bucket state afterwards.
func (tb *TokenBucket) take() (ok bool, remaining int, full time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refill(now)
	if tb.tokens >= 1 {
		tb.tokens--
		ok = true
	}
	return ok, int(tb.tokens), tb.fullAt(now)
}

// status reports remaining tokens without consuming one.
func (tb *TokenBucket) status() (remaining int, full time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refill(now)
	return int(tb.tokens), tb.fullAt(now)
}

// nextToken is the wait until one whole token is available. Caller holds mu.
func (tb *TokenBucket) nextToken() time.Duration {
	if tb.tokens >= 1 || tb.refillRate <= 0 {
		return 0
	}
	return time.Duration((1 - tb.tokens) / tb.refillRate * float64(time.Second))
}

func (tb *TokenBucket) fullAt(now time.Time) time.Time {
	if tb.tokens >= float64(tb.capacity) || tb.refillRate <= 0 {
		return now
	}
	missing := float64(tb.capacity) - tb.tokens
	return now.Add(time.Duration(missing / tb.refillRate * float64(time.Second)))
}
