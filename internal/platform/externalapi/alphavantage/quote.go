package alphavantage

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"stockview_backend/internal/feature/quote/domain"
	"stockview_backend/internal/feature/quote/domain/entity"
	"stockview_backend/internal/feature/quote/usecase"
	"stockview_backend/internal/platform/externalapi/alphavantage/dto"
)

// AlphaVantageMarketがQuoteRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.QuoteRepository = (*AlphaVantageMarket)(nil)

// GetQuote はGLOBAL_QUOTEエンドポイントから最新相場を取得し、
// 数値フィールドをパースしてentity.Quoteとして返します。
// フィードが相場を返さなかった場合はdomain.ErrSymbolNotFound、
// 数値フィールドが壊れていた場合はdomain.ErrMalformedValueを返します。
func (a *AlphaVantageMarket) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)

	var body dto.GlobalQuoteResponse
	if err := a.getJSON(ctx, q, &body); err != nil {
		return entity.Quote{}, err
	}
	if msg := apiMessage(body.ErrorMessage, body.Information, body.Note); msg != "" {
		return entity.Quote{}, fmt.Errorf("alphavantage: %s", msg)
	}

	// 未知の銘柄に対してAPIは空のquoteオブジェクトを返す
	gq := body.GlobalQuote
	if gq.Symbol == "" {
		return entity.Quote{}, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	}

	// 始値をパース
	o, err := parseQuoteFloat("open", gq.Open)
	if err != nil {
		return entity.Quote{}, err
	}
	// 高値をパース
	h, err := parseQuoteFloat("high", gq.High)
	if err != nil {
		return entity.Quote{}, err
	}
	// 安値をパース
	l, err := parseQuoteFloat("low", gq.Low)
	if err != nil {
		return entity.Quote{}, err
	}
	// 現在値をパース
	p, err := parseQuoteFloat("price", gq.Price)
	if err != nil {
		return entity.Quote{}, err
	}
	// 前日終値をパース
	pc, err := parseQuoteFloat("previous close", gq.PreviousClose)
	if err != nil {
		return entity.Quote{}, err
	}
	// 前日比をパース
	ch, err := parseQuoteFloat("change", gq.Change)
	if err != nil {
		return entity.Quote{}, err
	}
	// 出来高をパース
	vol, err := strconv.ParseInt(gq.Volume, 10, 64)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("%w: volume %q", domain.ErrMalformedValue, gq.Volume)
	}

	return entity.Quote{
		Symbol:           gq.Symbol,
		Open:             o,
		High:             h,
		Low:              l,
		Price:            p,
		Volume:           vol,
		LatestTradingDay: gq.LatestTradingDay,
		PreviousClose:    pc,
		Change:           ch,
		ChangePercent:    gq.ChangePercent,
	}, nil
}

// parseQuoteFloat は相場の数値フィールドをパースし、失敗を
// domain.ErrMalformedValueとしてラップします。
func parseQuoteFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrMalformedValue, field, raw)
	}
	return v, nil
}
