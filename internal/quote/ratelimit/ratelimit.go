// Package ratelimit provides Source decorators that throttle upstream calls.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"visiontrade/internal/quote"
)

// MinInterval wraps a Source and enforces a minimum time between upstream calls.
// Concurrent calls will wait until the interval has elapsed since the last call,
// or return early if the context is canceled.
type MinInterval struct {
	S        quote.Source
	Interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func (m *MinInterval) gate(ctx context.Context) error {
	if m.Interval <= 0 {
		return nil
	}
	// simple gate: ensure at least Interval since last
	m.mu.Lock()
	wait := time.Until(m.last.Add(m.Interval))
	m.mu.Unlock()
	if wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

func (m *MinInterval) stamp() {
	if m.Interval <= 0 {
		return
	}
	m.mu.Lock()
	m.last = time.Now()
	m.mu.Unlock()
}

func (m *MinInterval) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
	if err := m.gate(ctx); err != nil {
		return quote.Quote{}, err
	}
	defer m.stamp()
	return m.S.Quote(ctx, symbol)
}

func (m *MinInterval) QuoteSummary(ctx context.Context, symbol string) (quote.Summary, error) {
	if err := m.gate(ctx); err != nil {
		return quote.Summary{}, err
	}
	defer m.stamp()
	return m.S.QuoteSummary(ctx, symbol)
}

func (m *MinInterval) Chart(ctx context.Context, symbol string, req quote.ChartRequest) ([]quote.Bar, error) {
	if err := m.gate(ctx); err != nil {
		return nil, err
	}
	defer m.stamp()
	return m.S.Chart(ctx, symbol, req)
}
