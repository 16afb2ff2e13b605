// Package api defines the JSON response shapes shared by the HTTP handlers.
package api

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// QuoteResponse はスナップショット相場のレスポンスDTOです。
type QuoteResponse struct {
	Symbol           string  `json:"symbol"`           // 銘柄コード
	Open             float64 `json:"open"`             // 始値
	High             float64 `json:"high"`             // 高値
	Low              float64 `json:"low"`              // 安値
	Price            float64 `json:"price"`            // 現在値
	Volume           int64   `json:"volume"`           // 出来高
	LatestTradingDay string  `json:"latestTradingDay"` // 最新の取引日
	PreviousClose    float64 `json:"previousClose"`    // 前日終値
	Change           float64 `json:"change"`           // 前日比
	ChangePercent    string  `json:"changePercent"`    // 前日比率
}

// CandleResponse はロウソク足データのレスポンスDTOです。
// チャートレンダラーの期待する {time, open, high, low, close, volume} 形式です。
type CandleResponse struct {
	Time   string  `json:"time"`   // 日付
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// HeikinAshiResponse は平均足データのレスポンスDTOです。
// 平均足は価格のみから導出されるため出来高を持ちません。
type HeikinAshiResponse struct {
	Time  string  `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// OptionContractResponse は1件のオプション契約のレスポンスDTOです。
// 価格系フィールドはフィードの文字列表現のまま返します。
type OptionContractResponse struct {
	ContractID   string `json:"contractID"`
	Symbol       string `json:"symbol"`
	Type         string `json:"type"`
	Expiration   string `json:"expiration"`
	Strike       string `json:"strikePrice"`
	Last         string `json:"lastPrice"`
	Bid          string `json:"bid"`
	Ask          string `json:"ask"`
	Volume       string `json:"volume"`
	OpenInterest string `json:"openInterest"`
	Delta        string `json:"delta,omitempty"`
	Gamma        string `json:"gamma,omitempty"`
	Theta        string `json:"theta,omitempty"`
	Vega         string `json:"vega,omitempty"`
}

// OptionChainResponse はオプションチェーン照会のレスポンスDTOです。
type OptionChainResponse struct {
	Symbol      string                   `json:"symbol"`
	Expirations []string                 `json:"expirations"`
	Contracts   []OptionContractResponse `json:"contracts"`
}
