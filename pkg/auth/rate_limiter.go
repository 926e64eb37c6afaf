package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimiter decides whether a keyed request may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// SlidingWindowLimiter counts requests per key over a trailing window.
// State lives in process memory; a restart clears all counters.
type SlidingWindowLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	limit   int
	window  time.Duration
}

// NewSlidingWindowLimiter creates a limiter allowing limit requests per key
// within each trailing window
func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		history: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
}

// Allow records the request if the key is under its budget and reports
// whether it may proceed
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	kept := l.history[key][:0]
	for _, at := range l.history[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= l.limit {
		l.history[key] = kept
		return false, nil
	}

	l.history[key] = append(kept, now)
	return true, nil
}

// Reset forgets all recorded requests for a key
func (l *SlidingWindowLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.history, key)
	return nil
}

// IPRateLimiter throttles by client IP. It fronts the REST surface; token
// verification happens after this gate, so the limiter also shields the
// authentication authority from floods.
type IPRateLimiter struct {
	limiter RateLimiter
}

// NewIPRateLimiter creates a per-IP limiter with a per-minute budget
func NewIPRateLimiter(requestsPerMinute int) *IPRateLimiter {
	return &IPRateLimiter{
		limiter: NewSlidingWindowLimiter(requestsPerMinute, time.Minute),
	}
}

// Allow reports whether a request from the given IP may proceed
func (l *IPRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	return l.limiter.Allow(ctx, fmt.Sprintf("ip:%s", ip))
}
