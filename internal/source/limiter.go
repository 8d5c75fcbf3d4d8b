package source

// limiter.go bounds concurrent downloads.
//
// The limiter uses a semaphore pattern. When all slots are occupied, new
// fetches wait up to maxWait before failing with ErrTooManyFetches.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyFetches is returned when all fetch slots are occupied and the
// wait timeout expires.
var ErrTooManyFetches = errors.New("too many fetches in progress, please try again later")

// DefaultMaxConcurrent is the default limit for parallel fetches.
const DefaultMaxConcurrent = 3

// DefaultMaxWaitTime is how long to wait for a slot before rejecting.
const DefaultMaxWaitTime = 2 * time.Minute

// Limiter controls concurrent fetches using a semaphore.
type Limiter struct {
	semaphore chan struct{}
	maxWait   time.Duration

	mu     sync.RWMutex
	active int
}

// NewLimiter creates a limiter that allows at most maxConcurrent simultaneous fetches.
func NewLimiter(maxConcurrent int, maxWait time.Duration) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}

	return &Limiter{
		semaphore: make(chan struct{}, maxConcurrent),
		maxWait:   maxWait,
	}
}

// Acquire waits for a fetch slot.
// Returns nil on success, ErrTooManyFetches if the wait times out.
// The caller MUST call Release() when the fetch completes (use defer).
func (l *Limiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil

	case <-waitCtx.Done():
		// Distinguish caller cancellation from our own timeout
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTooManyFetches
	}
}

// Release releases a previously acquired slot.
// Must be called exactly once for each successful Acquire.
func (l *Limiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	<-l.semaphore
}

// ActiveCount returns the number of fetches in flight.
func (l *Limiter) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}
