// Package api implements the call-dispatch core of the SDK: URL
// construction, the transport executor, the layered retry wrappers, and
// the per-instance call throttle. Facades in internal/client compose
// these into the public module operations.
//
// Nothing in this package returns a Go error for a remote failure; every
// outcome is normalized into a paradesk.CallResult.
package api

import (
	"sync"
	"time"
)

// ThrottleRegistry tracks the completion time of the most recent call per
// instance and enforces a minimum spacing between consecutive calls to the
// same instance. It is the only shared mutable state in the dispatch core;
// one registry is owned by each client and shared by all of its in-flight
// calls.
type ThrottleRegistry struct {
	mu       sync.Mutex
	lastCall map[int64]time.Time

	// now and sleep are swappable for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewThrottleRegistry creates an empty registry.
func NewThrottleRegistry() *ThrottleRegistry {
	return &ThrottleRegistry{
		lastCall: make(map[int64]time.Time),
		now:      func() time.Time { return time.Now().UTC() },
		sleep:    time.Sleep,
	}
}

// Pause blocks until at least minWait has elapsed since the last recorded
// call completion for the instance. The first call for an instance returns
// immediately. Only a minimum spacing is guaranteed; two goroutines racing
// on the same instance may interleave, but each observes the spacing
// against whatever completion was recorded when it checked.
func (r *ThrottleRegistry) Pause(instanceID int64, minWait time.Duration) {
	if minWait <= 0 {
		return
	}

	r.mu.Lock()
	last, ok := r.lastCall[instanceID]
	r.mu.Unlock()

	if !ok {
		return
	}

	elapsed := r.now().Sub(last)
	if elapsed < minWait {
		// Sleep outside the lock so other instances are not held up.
		r.sleep(minWait - elapsed)
	}
}

// RecordCompletion stamps the instance with the current UTC time. Safe
// under concurrent writers for the same instance; the later writer wins.
func (r *ThrottleRegistry) RecordCompletion(instanceID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastCall[instanceID] = r.now()
}

// LastCall returns the recorded completion time for an instance, if any.
func (r *ThrottleRegistry) LastCall(instanceID int64) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, ok := r.lastCall[instanceID]

	return last, ok
}
