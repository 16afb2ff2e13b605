// Package entity defines the domain models for the options feature.
package entity

// ContractType はオプション契約の種別（コール／プット）です。
type ContractType string

const (
	Call ContractType = "CALL"
	Put  ContractType = "PUT"
)

// Contract represents one listed option contract.
//
// All pricing fields are carried as the feed's original text: the upstream
// API returns decimal strings and gives no guarantee that every field parses
// as a number (greeks in particular may be empty). Sorting decides per
// comparison whether to compare numerically or lexically.
type Contract struct {
	ContractID   string       // Feed's unique contract identifier (e.g., "AAPL240621C00100000")
	Symbol       string       // Underlying ticker symbol
	Type         ContractType // CALL or PUT
	Expiration   string       // Expiration date, ISO formatted ("2024-06-21")
	Strike       string       // Strike price
	Last         string       // Last traded price
	Bid          string       // Best bid
	Ask          string       // Best ask
	Volume       string       // Contracts traded today
	OpenInterest string       // Open interest
	Delta        string       // Greeks; may be empty depending on the feed
	Gamma        string
	Theta        string
	Vega         string
}
