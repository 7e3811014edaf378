// Command fetch is a one-shot CLI that prints the snapshot (and optionally
// the history) for a symbol as JSON. Useful for poking the upstream without
// running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"visiontrade/internal/config"
	"visiontrade/internal/httpx"
	"visiontrade/internal/quote"
	"visiontrade/internal/quote/cache"
	"visiontrade/internal/quote/yahoo"
)

func main() {
	var symbol string
	var period string
	var history bool
	var timeout int
	var configPath string

	flag.StringVar(&symbol, "symbol", "RELIANCE", "stock symbol (exchange suffix added automatically)")
	flag.StringVar(&period, "period", "1y", "history period: 1d|1m|6m|1y|5y")
	flag.BoolVar(&history, "history", false, "fetch the closing-price history instead of a snapshot")
	flag.IntVar(&timeout, "timeout", 15, "request timeout seconds")
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if timeout > 0 {
		cfg.Server.RequestTimeoutSec = timeout
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)
	client, err := yahoo.NewClient(
		yahoo.WithBaseURL(cfg.Yahoo.BaseURL),
		yahoo.WithHTTPClient(httpClient),
	)
	if err != nil {
		log.Fatalf("yahoo client: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ttl := time.Duration(cfg.Yahoo.QuoteCacheTTLSec) * time.Second
	svc := quote.NewService(quote.Config{Suffix: cfg.Yahoo.SymbolSuffix}, client, cache.New[quote.Snapshot](ttl), logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec)*time.Second)
	defer cancel()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if history {
		points, err := svc.History(ctx, symbol, period)
		if err != nil {
			log.Fatalf("history: %v", err)
		}
		if err := enc.Encode(points); err != nil {
			log.Fatalf("encode: %v", err)
		}
		return
	}

	snap, err := svc.Snapshot(ctx, symbol)
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	if err := enc.Encode(snap); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
