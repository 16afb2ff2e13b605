// Package dto defines data transfer objects for the Alpha Vantage API responses.
package dto

// GlobalQuoteResponse represents the JSON response from the GLOBAL_QUOTE
// endpoint. The quote fields use Alpha Vantage's numbered descriptive keys.
// Errors arrive as a populated ErrorMessage (bad request) or Information /
// Note (rate limiting) field alongside an empty quote object.
type GlobalQuoteResponse struct {
	ErrorMessage string `json:"Error Message,omitempty"`
	Information  string `json:"Information,omitempty"`
	Note         string `json:"Note,omitempty"`
	GlobalQuote  struct {
		Symbol           string `json:"01. symbol"`
		Open             string `json:"02. open"`
		High             string `json:"03. high"`
		Low              string `json:"04. low"`
		Price            string `json:"05. price"`
		Volume           string `json:"06. volume"`
		LatestTradingDay string `json:"07. latest trading day"`
		PreviousClose    string `json:"08. previous close"`
		Change           string `json:"09. change"`
		ChangePercent    string `json:"10. change percent"`
	} `json:"Global Quote"`
}
