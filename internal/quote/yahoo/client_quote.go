package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"

	"visiontrade/internal/quote"
)

// quoteResponse mirrors the v7 quote endpoint payload. Numeric fields are
// pointers because the provider omits them for untraded symbols.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			RegularMarketPrice         *float64 `json:"regularMarketPrice"`
			RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
			Currency                   string   `json:"currency"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteResponse"`
}

// Quote retrieves the current quote for symbol. An empty result set is not
// an error; it yields a Quote with a nil Price.
func (c *Client) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
	query := maps.Clone(c.query)
	query.Set("symbols", symbol)

	endpoint := fmt.Sprintf("%s/v7/finance/quote?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if err := checkStatus(res.StatusCode); err != nil {
		return quote.Quote{}, err
	}

	var body quoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return quote.Quote{}, fmt.Errorf("decoding quote response: %w", err)
	}

	if len(body.QuoteResponse.Result) == 0 {
		return quote.Quote{Symbol: symbol}, nil
	}

	r := body.QuoteResponse.Result[0]
	return quote.Quote{
		Symbol:        r.Symbol,
		Price:         r.RegularMarketPrice,
		ChangePercent: r.RegularMarketChangePercent,
		Currency:      r.Currency,
	}, nil
}

// checkStatus maps a non-2xx status code to an error.
func checkStatus(code int) error {
	switch code {
	case http.StatusOK:
		return nil

	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("unauthorized")

	case http.StatusNotFound:
		return fmt.Errorf("not found")

	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited")

	default:
		return fmt.Errorf("unexpected status code: %d", code)
	}
}
