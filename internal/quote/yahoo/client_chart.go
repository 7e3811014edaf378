package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"visiontrade/internal/quote"
)

// chartResponse mirrors the v8 chart endpoint payload. Close entries are
// pointers because the provider emits null for bars without a close.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// Chart retrieves the historical series for symbol over the requested
// window, oldest bar first. Bars without a close are kept with a nil Close;
// filtering is the caller's policy.
func (c *Client) Chart(ctx context.Context, symbol string, chartReq quote.ChartRequest) ([]quote.Bar, error) {
	query := maps.Clone(c.query)
	query.Set("period1", strconv.FormatInt(chartReq.Start.Unix(), 10))
	query.Set("period2", strconv.FormatInt(chartReq.End.Unix(), 10))
	query.Set("interval", string(chartReq.Interval))

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if err := checkStatus(res.StatusCode); err != nil {
		return nil, err
	}

	var body chartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding chart response: %w", err)
	}

	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", symbol)
	}
	r := body.Chart.Result[0]

	var closes []*float64
	if len(r.Indicators.Quote) > 0 {
		closes = r.Indicators.Quote[0].Close
	}

	bars := make([]quote.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		var closePrice *float64
		if i < len(closes) {
			closePrice = closes[i]
		}
		bars = append(bars, quote.Bar{Time: time.Unix(ts, 0).UTC(), Close: closePrice})
	}
	return bars, nil
}
