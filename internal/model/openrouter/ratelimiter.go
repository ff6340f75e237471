package openrouter

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	// DefaultMaxConcurrent is the default maximum concurrent requests to OpenRouter
	DefaultMaxConcurrent = 5
	// DefaultMinDelay is the minimum delay between requests (helps respect spend caps)
	DefaultMinDelay = 100 * time.Millisecond
)

// RateLimiter limits concurrent OpenRouter API calls with a semaphore and an
// optional minimum delay between requests. One limiter is created per model
// from its Config; there is no process-wide singleton.
type RateLimiter struct {
	semaphore     chan struct{}
	maxConcurrent int
	minDelay      time.Duration
	lastRequest   time.Time
	mu            sync.Mutex
}

// NewRateLimiter creates a rate limiter; non-positive arguments fall back to
// the defaults
func NewRateLimiter(maxConcurrent int, minDelay time.Duration) *RateLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if minDelay < 0 {
		minDelay = DefaultMinDelay
	}

	log.Printf("[OpenRouter RateLimiter] Initialized: max_concurrent=%d, min_delay=%v",
		maxConcurrent, minDelay)

	return &RateLimiter{
		semaphore:     make(chan struct{}, maxConcurrent),
		maxConcurrent: maxConcurrent,
		minDelay:      minDelay,
	}
}

// Acquire acquires a slot in the rate limiter.
// It blocks until a slot is available or the context is cancelled.
// Returns a release function that MUST be called when the request is complete.
func (r *RateLimiter) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case r.semaphore <- struct{}{}:
		// Got a slot
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Apply minimum delay between requests
	r.mu.Lock()
	if r.minDelay > 0 {
		elapsed := time.Since(r.lastRequest)
		if elapsed < r.minDelay {
			sleepTime := r.minDelay - elapsed
			r.mu.Unlock()

			select {
			case <-time.After(sleepTime):
			case <-ctx.Done():
				// Release semaphore on cancellation
				<-r.semaphore
				return nil, ctx.Err()
			}

			r.mu.Lock()
		}
	}
	r.lastRequest = time.Now()
	r.mu.Unlock()

	return func() {
		<-r.semaphore
	}, nil
}

// TryAcquire tries to acquire a slot without blocking.
// Returns false if no slot is available.
func (r *RateLimiter) TryAcquire() (release func(), ok bool) {
	select {
	case r.semaphore <- struct{}{}:
		return func() { <-r.semaphore }, true
	default:
		return nil, false
	}
}

// CurrentUsage returns the number of slots currently in use.
func (r *RateLimiter) CurrentUsage() int {
	return len(r.semaphore)
}

// MaxConcurrent returns the maximum concurrent requests allowed.
func (r *RateLimiter) MaxConcurrent() int {
	return r.maxConcurrent
}
