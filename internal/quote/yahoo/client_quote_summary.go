package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"

	"visiontrade/internal/quote"
)

// rawValue is Yahoo's {raw, fmt} number wrapper; only raw matters here.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail *struct {
				MarketCap *rawValue `json:"marketCap"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				TrailingPE *rawValue `json:"trailingPE"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummary retrieves trailing P/E and market capitalization for symbol.
// Absent modules or fields yield a Summary with nil fields.
func (c *Client) QuoteSummary(ctx context.Context, symbol string) (quote.Summary, error) {
	query := maps.Clone(c.query)
	query.Set("modules", "summaryDetail,defaultKeyStatistics")

	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.baseURL, url.PathEscape(symbol), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return quote.Summary{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return quote.Summary{}, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if err := checkStatus(res.StatusCode); err != nil {
		return quote.Summary{}, err
	}

	var body summaryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return quote.Summary{}, fmt.Errorf("decoding summary response: %w", err)
	}

	var out quote.Summary
	if len(body.QuoteSummary.Result) == 0 {
		return out, nil
	}
	r := body.QuoteSummary.Result[0]
	if r.SummaryDetail != nil && r.SummaryDetail.MarketCap != nil {
		out.MarketCap = r.SummaryDetail.MarketCap.Raw
	}
	if r.DefaultKeyStatistics != nil && r.DefaultKeyStatistics.TrailingPE != nil {
		out.TrailingPE = r.DefaultKeyStatistics.TrailingPE.Raw
	}
	return out, nil
}
