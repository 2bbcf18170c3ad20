package helpers

import (
	"context"
	"sync"
)

type countersKey struct{}

// Counters tallies messages delivered while one update is handled.
type Counters struct {
	mu       sync.Mutex
	messages int
	kb       bool
}

// WithCounters returns ctx carrying a fresh tally.
func WithCounters(ctx context.Context) (context.Context, *Counters) {
	m := &Counters{}
	return context.WithValue(ctx, countersKey{}, m), m
}

// CountersFrom returns the tally carried by ctx, or nil.
func CountersFrom(ctx context.Context) *Counters {
	if ctx == nil {
		return nil
	}
	m, _ := ctx.Value(countersKey{}).(*Counters)
	return m
}

// CountMessage records one delivered message. It is a no-op when ctx carries no tally.
func CountMessage(ctx context.Context, hasKB bool) {
	m := CountersFrom(ctx)
	if m == nil {
		return
	}
	m.mu.Lock()
	m.messages++
	if hasKB {
		m.kb = true
	}
	m.mu.Unlock()
}

// Snapshot returns the message count and whether any of them carried a keyboard.
func (m *Counters) Snapshot() (messages int, kb bool) {
	if m == nil {
		return 0, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messages, m.kb
}
