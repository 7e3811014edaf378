package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"visiontrade/internal/quote"
)

type errorResponse struct {
	Error      string `json:"error"`
	RetryAfter string `json:"retryAfter,omitempty"`
}

// retryAfterHint is the fixed back-off sent with rate-limited responses.
const retryAfterHint = "30 seconds"

func handleStock(w http.ResponseWriter, r *http.Request, svc *quote.Service, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	snap, err := svc.Snapshot(ctx, r.URL.Query().Get("symbol"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, snap)
	case errors.Is(err, quote.ErrInvalidSymbol):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Symbol required"})
	case errors.Is(err, quote.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Stock not found"})
	default:
		// Upstream failure or rate limit; tell clients when to come back.
		w.Header().Set("Retry-After", "30")
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:      "Rate limited by data provider",
			RetryAfter: retryAfterHint,
		})
	}
}

func handleHistory(w http.ResponseWriter, r *http.Request, svc *quote.Service, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	q := r.URL.Query()
	points, err := svc.History(ctx, q.Get("symbol"), q.Get("period"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, points)
	case errors.Is(err, quote.ErrInvalidSymbol):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Symbol required"})
	default:
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Chart data unavailable"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
