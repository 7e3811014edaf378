package quote

import "errors"

var (
	// ErrInvalidSymbol means the caller supplied a missing or malformed symbol.
	ErrInvalidSymbol = errors.New("symbol required")

	// ErrNotFound means the provider resolved the symbol but it carries no
	// tradable price.
	ErrNotFound = errors.New("stock not found")

	// ErrUpstream means the provider call failed, timed out, or signaled
	// rate limiting. Callers should back off before retrying.
	ErrUpstream = errors.New("upstream unavailable")
)
