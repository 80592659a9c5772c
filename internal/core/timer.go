package core

import "time"

// IntervalTimer is a periodic trigger driven by virtual time. The owner feeds
// elapsed time through Advance and receives the number of fires, which keeps
// all callbacks on the owner's goroutine.
type IntervalTimer struct {
	period  time.Duration
	elapsed time.Duration
	running bool
}

// NewIntervalTimer creates a stopped timer with the given period.
func NewIntervalTimer(period time.Duration) *IntervalTimer {
	return &IntervalTimer{period: period}
}

// Start resumes firing. Time accumulated before a Stop is kept.
func (t *IntervalTimer) Start() {
	t.running = true
}

// Stop suspends firing.
func (t *IntervalTimer) Stop() {
	t.running = false
}

// Running reports whether the timer is started.
func (t *IntervalTimer) Running() bool {
	return t.running
}

// Period returns the current period.
func (t *IntervalTimer) Period() time.Duration {
	return t.period
}

// SetPeriod changes the period and reports whether it changed. Accumulated
// time is kept so an unchanged schedule is never restarted.
func (t *IntervalTimer) SetPeriod(d time.Duration) bool {
	if d == t.period {
		return false
	}
	t.period = d
	return true
}

// Reset stops the timer and discards accumulated time.
func (t *IntervalTimer) Reset() {
	t.running = false
	t.elapsed = 0
}

// Advance feeds dt of elapsed time and returns how many times the timer fired.
// A stopped timer or a non-positive period never fires.
func (t *IntervalTimer) Advance(dt time.Duration) int {
	if !t.running || t.period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fires := int(t.elapsed / t.period)
	t.elapsed -= time.Duration(fires) * t.period
	return fires
}
