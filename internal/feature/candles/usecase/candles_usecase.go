// Package usecase はローソク足データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"stockview_backend/internal/feature/candles/domain/entity"
	"stockview_backend/internal/feature/candles/heikinashi"
)

const (
	// DefaultInterval はローソク足クエリのデフォルト時間間隔です。
	DefaultInterval = "1day"
	// DefaultOutputSize はデフォルトのローソク足返却件数です。
	DefaultOutputSize = 200
	// MaxOutputSize はローソク足の最大返却件数です。
	MaxOutputSize = 5000
)

// CandleRepository はローソク足データの永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleRepository interface {
	// Find はデータベースからローソク足データを検索します。時刻の新しい順に返します。
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)

	// UpsertBatch は(symbol, interval, time)をユニークキーとして一括Upsertします。
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
}

// MarketRepository は株価データを取得する外部APIリポジトリのインターフェイスです。
type MarketRepository interface {
	GetTimeSeries(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
}

// candlesUsecase はローソク足データ操作のユースケースを定義します。
type candlesUsecase struct {
	candle CandleRepository
	market MarketRepository
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
// marketはnil可で、その場合は永続化済みのデータのみを参照します。
func NewCandlesUsecase(candle CandleRepository, market MarketRepository) *candlesUsecase {
	return &candlesUsecase{candle: candle, market: market}
}

// GetCandles は指定された銘柄と時間間隔のローソク足データを取得します。
// 永続化層に1件もない銘柄はフィードから直接取得し、次回以降のために
// ベストエフォートで永続化します（ユーザーが任意のティッカーを入力できるため）。
func (cu *candlesUsecase) GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	// 銘柄コードを正規化（空白除去・大文字化）。DBのキーとキャッシュキーが
	// 表記ゆれで分裂しないよう、フィード呼び出しより前に揃える
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if interval == "" {
		interval = DefaultInterval
	}
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}

	cs, err := cu.candle.Find(ctx, symbol, interval, outputsize)
	if err != nil {
		return nil, err
	}
	if len(cs) > 0 || cu.market == nil {
		return cs, nil
	}

	// 未取り込みの銘柄はフィードへリードスルー
	cs, err = cu.market.GetTimeSeries(ctx, symbol, interval, outputsize)
	if err != nil {
		return nil, err
	}
	if err := cu.candle.UpsertBatch(ctx, cs); err != nil {
		slog.Warn("failed to persist fetched candles", "symbol", symbol, "interval", interval, "error", err)
	}
	return cs, nil
}

// GetHeikinAshi はローソク足を取得し、平均足（Heikin-Ashi）系列へ変換して返します。
// 系列が空の場合はdomain.ErrEmptySeriesを返します。
func (cu *candlesUsecase) GetHeikinAshi(ctx context.Context, symbol, interval string, outputsize int, seed heikinashi.Seed) ([]heikinashi.Bar, error) {
	cs, err := cu.GetCandles(ctx, symbol, interval, outputsize)
	if err != nil {
		return nil, err
	}
	bars, err := heikinashi.Compute(cs, seed)
	if err != nil {
		return nil, err
	}
	return bars, nil
}
