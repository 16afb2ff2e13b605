package dto

// TimeSeriesBar is one day's (or week's, month's) OHLCV entry. Alpha Vantage
// numbers the keys, and the volume key shifts between the plain series
// ("5. volume") and the adjusted one ("6. volume", after "5. adjusted close").
type TimeSeriesBar struct {
	Open           string `json:"1. open"`
	High           string `json:"2. high"`
	Low            string `json:"3. low"`
	Close          string `json:"4. close"`
	Volume         string `json:"5. volume"`
	AdjustedClose  string `json:"5. adjusted close"`
	AdjustedVolume string `json:"6. volume"`
}

// TimeSeriesResponse represents the JSON response from the TIME_SERIES_*
// endpoints. Exactly one of the series maps is populated depending on the
// requested function; each maps an ISO date string to that period's bar.
type TimeSeriesResponse struct {
	ErrorMessage string `json:"Error Message,omitempty"`
	Information  string `json:"Information,omitempty"`
	Note         string `json:"Note,omitempty"`

	DailySeries   map[string]TimeSeriesBar `json:"Time Series (Daily)"`
	WeeklySeries  map[string]TimeSeriesBar `json:"Weekly Time Series"`
	MonthlySeries map[string]TimeSeriesBar `json:"Monthly Time Series"`
}

// Series returns whichever series map the response carries, or nil.
func (r *TimeSeriesResponse) Series() map[string]TimeSeriesBar {
	switch {
	case len(r.DailySeries) > 0:
		return r.DailySeries
	case len(r.WeeklySeries) > 0:
		return r.WeeklySeries
	case len(r.MonthlySeries) > 0:
		return r.MonthlySeries
	default:
		return nil
	}
}
