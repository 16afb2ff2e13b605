package dto

// OptionChainResponse represents the JSON response from the REALTIME_OPTIONS
// endpoint: a flat list of contract rows with every value as a string.
type OptionChainResponse struct {
	ErrorMessage string              `json:"Error Message,omitempty"`
	Information  string              `json:"Information,omitempty"`
	Note         string              `json:"Note,omitempty"`
	Endpoint     string              `json:"endpoint"`
	Message      string              `json:"message"`
	Data         []OptionContractRow `json:"data"`
}

// OptionContractRow is one contract as delivered by the feed.
type OptionContractRow struct {
	ContractID   string `json:"contractID"`
	Symbol       string `json:"symbol"`
	Expiration   string `json:"expiration"`
	Strike       string `json:"strike"`
	Type         string `json:"type"` // "call" or "put"
	Last         string `json:"last"`
	Mark         string `json:"mark"`
	Bid          string `json:"bid"`
	BidSize      string `json:"bid_size"`
	Ask          string `json:"ask"`
	AskSize      string `json:"ask_size"`
	Volume       string `json:"volume"`
	OpenInterest string `json:"open_interest"`
	Date         string `json:"date"`
	ImpliedVol   string `json:"implied_volatility"`
	Delta        string `json:"delta"`
	Gamma        string `json:"gamma"`
	Theta        string `json:"theta"`
	Vega         string `json:"vega"`
	Rho          string `json:"rho"`
}
