// Package quote normalizes upstream market data into snapshot and history
// records, fronted by a read-through TTL cache.
package quote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"visiontrade/internal/quote/cache"
)

// Snapshot is the normalized point-in-time quote served to clients.
// Optional fields are pointers so absent values serialize as null.
type Snapshot struct {
	Symbol        string   `json:"symbol"`
	Price         float64  `json:"price"`
	ChangePercent *float64 `json:"change"`
	MarketCap     *float64 `json:"marketCap"`
	PERatio       *float64 `json:"pe"`
	Currency      string   `json:"currency"`
	Timestamp     int64    `json:"timestamp"` // unix milliseconds, snapshot creation time
}

// HistoryPoint is one chart bucket with a defined closing price.
type HistoryPoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// Config controls symbol normalization.
type Config struct {
	// Suffix is the exchange suffix appended to the uppercased user symbol
	// to form the provider-facing ticker, e.g. ".NS".
	Suffix string
}

// Service orchestrates cache lookups and upstream fetches.
type Service struct {
	cfg    Config
	source Source
	cache  *cache.Cache[Snapshot]
	log    *slog.Logger
	now    func() time.Time

	// sf coalesces duplicate in-flight fetches for the same cache key.
	sf singleflight.Group
}

// ServiceOption is a configuration option for Service.
type ServiceOption func(*Service)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a quote service backed by source and c.
func NewService(cfg Config, source Source, c *cache.Cache[Snapshot], log *slog.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		cfg:    cfg,
		source: source,
		cache:  c,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current quote for symbol, serving from cache when a
// fresh entry exists. Cache misses fall through to the provider; concurrent
// misses for the same key share a single upstream call.
func (s *Service) Snapshot(ctx context.Context, symbol string) (Snapshot, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Snapshot{}, ErrInvalidSymbol
	}

	display := strings.ToUpper(symbol)
	providerSymbol := display + s.cfg.Suffix
	key := "stock-" + providerSymbol

	if snap, ok := s.cache.Get(key); ok {
		return snap, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.fetchSnapshot(ctx, display, providerSymbol, key)
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

func (s *Service) fetchSnapshot(ctx context.Context, display, providerSymbol, key string) (Snapshot, error) {
	s.log.Info("fetching quote from provider", "symbol", providerSymbol)

	q, err := s.source.Quote(ctx, providerSymbol)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: quote %s: %v", ErrUpstream, providerSymbol, err)
	}
	if q.Price == nil {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, display)
	}

	snap := Snapshot{
		Symbol:        display,
		Price:         *q.Price,
		ChangePercent: q.ChangePercent,
		Currency:      q.Currency,
		Timestamp:     s.now().UnixMilli(),
	}

	// Best effort: a summary failure must never fail the primary quote.
	if sum, err := s.source.QuoteSummary(ctx, providerSymbol); err != nil {
		s.log.Warn("quote summary skipped", "symbol", providerSymbol, "err", err)
	} else {
		snap.MarketCap = sum.MarketCap
		snap.PERatio = sum.TrailingPE
	}

	s.cache.Put(key, snap)
	return snap, nil
}

// History returns the closing-price series for symbol over the window the
// period token maps to. History is not cached.
func (s *Service) History(ctx context.Context, symbol, period string) ([]HistoryPoint, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}
	providerSymbol := strings.ToUpper(symbol) + s.cfg.Suffix

	w := windowFor(period)
	now := s.now()
	bars, err := s.source.Chart(ctx, providerSymbol, ChartRequest{
		Start:    now.Add(-w.lookback),
		End:      now,
		Interval: w.interval,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: chart %s: %v", ErrUpstream, providerSymbol, err)
	}

	out := make([]HistoryPoint, 0, len(bars))
	for _, b := range bars {
		if b.Close == nil {
			continue
		}
		out = append(out, HistoryPoint{Time: b.Time, Close: *b.Close})
	}
	return out, nil
}
