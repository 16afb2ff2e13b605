// Package entity defines the domain models for the quote feature.
package entity

// Quote はある銘柄の最新のスナップショット相場です。
// 数値は境界（外部APIアダプタ）でパース済みの値を持ちます。
type Quote struct {
	Symbol           string  // Ticker symbol, upper case
	Open             float64 // Today's opening price
	High             float64 // Today's high
	Low              float64 // Today's low
	Price            float64 // Latest traded price
	Volume           int64   // Today's volume
	LatestTradingDay string  // ISO date of the quote ("2024-06-21")
	PreviousClose    float64 // Prior session's closing price
	Change           float64 // Price - PreviousClose
	ChangePercent    string  // Feed-formatted percent string ("1.2345%")
}
