// Package biztime centralizes how the application reads the clock and how
// timestamps cross the persistence boundary. All storage and transport use
// UTC; the database keeps Unix milliseconds.
package biztime

import (
	"sync"
	"time"
)

var (
	nowMu sync.RWMutex
	nowFn = time.Now
)

// NowUTC returns current time in UTC truncated to millisecond precision,
// the precision the database stores.
func NowUTC() time.Time {
	nowMu.RLock()
	defer nowMu.RUnlock()
	return nowFn().UTC().Truncate(time.Millisecond)
}

// SetClock replaces the clock used by NowUTC and returns a function that
// restores the previous one. Intended for tests.
func SetClock(fn func() time.Time) (restore func()) {
	nowMu.Lock()
	prev := nowFn
	nowFn = fn
	nowMu.Unlock()

	return func() {
		nowMu.Lock()
		nowFn = prev
		nowMu.Unlock()
	}
}

// ToMillis converts t to Unix milliseconds. The zero time maps to 0.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromMillis converts Unix milliseconds to a UTC time. 0 maps to the zero time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
