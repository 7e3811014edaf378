package quote

import "time"

const day = 24 * time.Hour

// window maps a client period token to an upstream lookback and bar interval.
type window struct {
	lookback time.Duration
	interval Interval
}

// The 1d entry intentionally requests 60 days of 5-minute bars; the front
// end trims the series to the relevant day. Inherited behavior, do not
// narrow it to a true one-day window.
var periods = map[string]window{
	"1d": {60 * day, Interval5Min},
	"1m": {30 * day, IntervalDay},
	"6m": {180 * day, IntervalDay},
	"1y": {365 * day, IntervalDay},
	"5y": {5 * 365 * day, IntervalWeek},
}

// windowFor resolves a period token. Unknown tokens (and the empty string)
// fall back to the 1y mapping.
func windowFor(period string) window {
	if w, ok := periods[period]; ok {
		return w
	}
	return periods["1y"]
}
