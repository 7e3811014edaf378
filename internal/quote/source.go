package quote

import (
	"context"
	"time"
)

// Quote is the raw current-price record returned by the upstream provider.
// Price is nil when the provider resolved the symbol but reports no tradable
// price (delisted, wrong suffix, typo).
type Quote struct {
	Symbol        string
	Price         *float64
	ChangePercent *float64
	Currency      string
}

// Summary carries the best-effort extended fields from the provider's
// summary endpoint. Either field may be nil.
type Summary struct {
	MarketCap  *float64
	TrailingPE *float64
}

// Interval is a provider bar-interval token.
type Interval string

const (
	Interval5Min Interval = "5m"
	IntervalDay  Interval = "1d"
	IntervalWeek Interval = "1wk"
)

// ChartRequest describes a historical-series window.
type ChartRequest struct {
	Start    time.Time
	End      time.Time
	Interval Interval
}

// Bar is a single chart bucket. Close is nil for bars the provider returns
// without a closing price.
type Bar struct {
	Time  time.Time
	Close *float64
}

// Source is the upstream financial-data provider.
//
//go:generate mockgen -package=quote_test -destination=mock_source_test.go -source=source.go Source
type Source interface {
	// Quote returns the current quote for a provider-facing symbol.
	Quote(ctx context.Context, symbol string) (Quote, error)
	// QuoteSummary returns extended detail fields for a symbol.
	QuoteSummary(ctx context.Context, symbol string) (Summary, error)
	// Chart returns the historical series for a symbol, oldest bar first.
	Chart(ctx context.Context, symbol string, req ChartRequest) ([]Bar, error)
}
