// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	candleadapters "stockview_backend/internal/feature/candles/adapters"
	"stockview_backend/internal/feature/candles/usecase"
	"stockview_backend/internal/platform/cache"
	"stockview_backend/internal/platform/externalapi/alphavantage"
	infrahttp "stockview_backend/internal/platform/http"
)

// NewMarket creates a fully configured AlphaVantageMarket with HTTP client.
func NewMarket() *alphavantage.AlphaVantageMarket {
	cfg := alphavantage.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return alphavantage.NewAlphaVantageMarket(cfg, httpClient)
}

// NewCandleRepository creates the candle repository stack: the MySQL
// repository wrapped in a Redis cache whose entries expire at the next daily
// data refresh. The TTL is re-evaluated per write so late-written entries
// still line up with the refresh. A nil Redis client yields an uncached
// repository.
func NewCandleRepository(db *gorm.DB, rdb *redis.Client) usecase.CandleRepository {
	inner := candleadapters.NewCandleRepository(db)
	return cache.NewCachingCandleRepository(rdb, cache.TimeUntilNextClose, inner, "candles")
}
