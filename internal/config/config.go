package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	StaticDir         string `json:"static_dir"`
	LandingPage       string `json:"landing_page"`
}

type Yahoo struct {
	BaseURL string `json:"base_url"`
	// SymbolSuffix is appended to every user symbol to form the
	// provider-facing ticker (NSE listings by default).
	SymbolSuffix          string `json:"symbol_suffix"`
	QuoteCacheTTLSec      int    `json:"quote_cache_ttl_sec"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec"`
	Burst                 int    `json:"burst"`
}

type Config struct {
	Server Server `json:"server"`
	Yahoo  Yahoo  `json:"yahoo"`
}

func Default() Config {
	return Config{
		Server: Server{
			Port:              "3000",
			RequestTimeoutSec: 10,
			StaticDir:         "public",
			LandingPage:       "main-dashboard.html",
		},
		Yahoo: Yahoo{
			BaseURL:          "https://query1.finance.yahoo.com",
			SymbolSuffix:     ".NS",
			QuoteCacheTTLSec: 120,
			Burst:            1,
		},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("LANDING_PAGE"); v != "" {
		cfg.Server.LandingPage = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.Yahoo.BaseURL = v
	}
	if v := os.Getenv("SYMBOL_SUFFIX"); v != "" {
		cfg.Yahoo.SymbolSuffix = v
	}
	if v := os.Getenv("QUOTE_CACHE_TTL_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Yahoo.QuoteCacheTTLSec = x
		}
	}
	if v := os.Getenv("YAHOO_MAX_RPM"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.Yahoo.MaxRequestsPerMinute = x
		}
	}
	if v := os.Getenv("YAHOO_MIN_INTERVAL_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x >= 0 {
			cfg.Yahoo.MinRequestIntervalSec = x
		}
	}
	if v := os.Getenv("YAHOO_BURST"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Yahoo.Burst = x
		}
	}
}
