package alphavantage

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"stockview_backend/internal/feature/candles/domain"
	"stockview_backend/internal/feature/candles/domain/entity"
	"stockview_backend/internal/feature/candles/usecase"
	"stockview_backend/internal/platform/externalapi/alphavantage/dto"
)

// AlphaVantageMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*AlphaVantageMarket)(nil)

// seriesFunctions は時間足ごとに試行するAPI関数のリストです。
// 日足は調整済み系列を先に試し、時系列キーが返らなければ未調整系列へ
// フォールバックします（無料プランでは調整済みがプレミアム扱いになるため）。
var seriesFunctions = map[string][]string{
	"1day":   {"TIME_SERIES_DAILY_ADJUSTED", "TIME_SERIES_DAILY"},
	"1week":  {"TIME_SERIES_WEEKLY"},
	"1month": {"TIME_SERIES_MONTHLY"},
}

// GetTimeSeries はAlpha Vantage APIから時系列株価データを取得し、
// フィードのネイティブな並び（新しい順）のentity.Candleスライスとして返します。
// OHLCVのパースに失敗した場合はdomain.ErrMalformedValueを返します。
func (a *AlphaVantageMarket) GetTimeSeries(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	functions, ok := seriesFunctions[interval]
	if !ok {
		return nil, fmt.Errorf("alphavantage: unsupported interval %q", interval)
	}

	var lastMsg string
	for _, fn := range functions {
		q := url.Values{}
		q.Set("function", fn)
		q.Set("symbol", symbol)
		if outputsize > 100 {
			q.Set("outputsize", "full")
		}

		var body dto.TimeSeriesResponse
		if err := a.getJSON(ctx, q, &body); err != nil {
			return nil, err
		}

		series := body.Series()
		if series == nil {
			// 時系列キーなし。メッセージを控えて次の関数へフォールバック
			lastMsg = apiMessage(body.ErrorMessage, body.Information, body.Note)
			continue
		}
		return parseSeries(series, symbol, interval, outputsize)
	}

	if lastMsg != "" {
		return nil, fmt.Errorf("alphavantage: %s", lastMsg)
	}
	return nil, fmt.Errorf("alphavantage: no time series returned for %q", symbol)
}

// parseSeries は日付キーのマップをパースし、新しい順に整列したローソク足を返します。
func parseSeries(series map[string]dto.TimeSeriesBar, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	candles := make([]entity.Candle, 0, len(series))
	for date, bar := range series {
		// タイムスタンプをパース
		tm, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("parse time %q: %w", date, err)
		}
		// 始値をパース
		o, err := parsePrice("open", bar.Open)
		if err != nil {
			return nil, err
		}
		// 高値をパース
		h, err := parsePrice("high", bar.High)
		if err != nil {
			return nil, err
		}
		// 安値をパース
		l, err := parsePrice("low", bar.Low)
		if err != nil {
			return nil, err
		}
		// 終値をパース（調整済み系列でも生の終値を使う）
		c, err := parsePrice("close", bar.Close)
		if err != nil {
			return nil, err
		}
		// 出来高をパース。調整済み系列ではキーが一つ後ろへずれる
		rawVol := bar.Volume
		if rawVol == "" {
			rawVol = bar.AdjustedVolume
		}
		vol, err := strconv.ParseInt(rawVol, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: volume %q", domain.ErrMalformedValue, rawVol)
		}

		candles = append(candles, entity.Candle{
			Symbol:   symbol,
			Interval: interval,
			Time:     tm,
			Open:     o,
			High:     h,
			Low:      l,
			Close:    c,
			Volume:   vol,
		})
	}

	// JSONオブジェクトのキー順は保証されないため、明示的に新しい順へ整列する
	sort.Slice(candles, func(i, j int) bool { return candles[i].Time.After(candles[j].Time) })
	if outputsize > 0 && len(candles) > outputsize {
		candles = candles[:outputsize]
	}
	return candles, nil
}

func parsePrice(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrMalformedValue, field, raw)
	}
	return v, nil
}
