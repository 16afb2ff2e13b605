package usecase

import (
	"context"
	"log/slog"

	"stockview_backend/internal/shared/ratelimiter"
)

// ingestIntervals はデータ取り込みの対象となる時間足のリストです。
var ingestIntervals = []string{"1day", "1week", "1month"}

// IngestUsecase は外部APIからデータを取得し、データベースに永続化するユースケースを定義します。
type IngestUsecase struct {
	market      MarketRepository
	candle      CandleRepository
	rateLimiter ratelimiter.RateLimiterInterface
	outputsize  int
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
// outputsizeが0以下の場合はDefaultOutputSizeを使用します。
func NewIngestUsecase(market MarketRepository, candle CandleRepository, rateLimiter ratelimiter.RateLimiterInterface, outputsize int) *IngestUsecase {
	if outputsize <= 0 {
		outputsize = DefaultOutputSize
	}
	return &IngestUsecase{market: market, candle: candle, rateLimiter: rateLimiter, outputsize: outputsize}
}

// ingestOne は指定された銘柄と時間足の時系列データを外部リポジトリから取得し、
// データベースに一括で挿入（または更新）します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol, interval string) error {
	cs, err := iu.market.GetTimeSeries(ctx, symbol, interval, iu.outputsize)
	if err != nil {
		return err
	}
	return iu.candle.UpsertBatch(ctx, cs)
}

// IngestAll は指定された全銘柄の時系列データを複数の時間足（日足, 週足, 月足）で取得し、
// データベースに永続化します。APIのレートリミットを考慮して、リクエスト間に適切な待機時間を設けます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []string) error {
	for _, s := range symbols {
		for _, interval := range ingestIntervals {
			iu.rateLimiter.WaitIfNeeded()
			if err := iu.ingestOne(ctx, s, interval); err != nil {
				// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
				slog.Error("failed to ingest data", "symbol", s, "interval", interval, "error", err)
				continue
			}
		}
	}
	return nil
}
