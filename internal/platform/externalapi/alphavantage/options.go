package alphavantage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"stockview_backend/internal/feature/options/domain/entity"
	"stockview_backend/internal/feature/options/usecase"
	"stockview_backend/internal/platform/externalapi/alphavantage/dto"
)

// AlphaVantageMarketがChainRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ChainRepository = (*AlphaVantageMarket)(nil)

// GetOptionChain はREALTIME_OPTIONSエンドポイントからオプションチェーンを取得します。
// フィードは数値フィールドも文字列で返し、欠損は空文字になるため、
// 価格系フィールドは文字列表現のまま保持します。上場オプションのない銘柄は空のチェーンを返します。
func (a *AlphaVantageMarket) GetOptionChain(ctx context.Context, symbol string) ([]entity.Contract, error) {
	q := url.Values{}
	q.Set("function", "REALTIME_OPTIONS")
	q.Set("symbol", symbol)
	q.Set("require_greeks", "true")

	var body dto.OptionChainResponse
	if err := a.getJSON(ctx, q, &body); err != nil {
		return nil, err
	}
	if msg := apiMessage(body.ErrorMessage, body.Information, body.Note); msg != "" {
		return nil, fmt.Errorf("alphavantage: %s", msg)
	}

	contracts := make([]entity.Contract, 0, len(body.Data))
	for _, row := range body.Data {
		contracts = append(contracts, entity.Contract{
			ContractID:   row.ContractID,
			Symbol:       row.Symbol,
			Type:         entity.ContractType(strings.ToUpper(row.Type)),
			Expiration:   row.Expiration,
			Strike:       row.Strike,
			Last:         row.Last,
			Bid:          row.Bid,
			Ask:          row.Ask,
			Volume:       row.Volume,
			OpenInterest: row.OpenInterest,
			Delta:        row.Delta,
			Gamma:        row.Gamma,
			Theta:        row.Theta,
			Vega:         row.Vega,
		})
	}
	return contracts, nil
}
