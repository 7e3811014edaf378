package yahoo_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"visiontrade/internal/quote"
	"visiontrade/internal/quote/yahoo"
)

func TestChart(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Arrange: create a mock HTTP client
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Contains(t, req.URL.Path, "/v8/finance/chart/ITC.NS")
			require.Equal(t, "1747353600", req.URL.Query().Get("period1"))
			require.Equal(t, "1749945600", req.URL.Query().Get("period2"))
			require.Equal(t, "1d", req.URL.Query().Get("interval"))

			return &http.Response{
				StatusCode: http.StatusOK,
				Body: jsonBody(t, map[string]any{
					"chart": map[string]any{
						"result": []map[string]any{{
							"timestamp": []int64{1, 2, 3},
							"indicators": map[string]any{
								"quote": []map[string]any{{
									"close": []any{10.0, nil, 12.0},
								}},
							},
						}},
						"error": nil,
					},
				}),
			}, nil
		}).
		Times(1)

	// Arrange
	client, err := yahoo.NewClient(yahoo.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act
	bars, err := client.Chart(t.Context(), "ITC.NS", quote.ChartRequest{
		Start:    start,
		End:      end,
		Interval: quote.IntervalDay,
	})

	// Assert: all bars are returned in order, nil closes preserved
	require.NoError(t, err)
	require.Len(t, bars, 3)
	require.Equal(t, time.Unix(1, 0).UTC(), bars[0].Time)
	require.NotNil(t, bars[0].Close)
	require.InEpsilon(t, 10.0, *bars[0].Close, 0.0001)
	require.Nil(t, bars[1].Close)
	require.NotNil(t, bars[2].Close)
	require.InEpsilon(t, 12.0, *bars[2].Close, 0.0001)
}

func TestChart_EmptyResultIsError(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body: jsonBody(t, map[string]any{
					"chart": map[string]any{"result": []any{}, "error": nil},
				}),
			}, nil
		}).
		Times(1)

	client, err := yahoo.NewClient(yahoo.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act
	_, err = client.Chart(t.Context(), "BOGUS.NS", quote.ChartRequest{Interval: quote.IntervalDay})

	// Assert
	require.Error(t, err)
}

func TestChart_ErrNotFound(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusNotFound,
				Body:       jsonBody(t, map[string]any{}),
			}, nil
		}).
		Times(1)

	client, err := yahoo.NewClient(yahoo.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act
	_, err = client.Chart(t.Context(), "BOGUS.NS", quote.ChartRequest{Interval: quote.IntervalWeek})

	// Assert
	require.ErrorContains(t, err, "not found")
}
