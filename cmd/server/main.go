package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stockview_backend/internal/app/di"
	"stockview_backend/internal/app/router"
	candleshandler "stockview_backend/internal/feature/candles/transport/handler"
	candlesusecase "stockview_backend/internal/feature/candles/usecase"
	optionshandler "stockview_backend/internal/feature/options/transport/handler"
	optionsusecase "stockview_backend/internal/feature/options/usecase"
	quotehandler "stockview_backend/internal/feature/quote/transport/handler"
	quoteusecase "stockview_backend/internal/feature/quote/usecase"
	symbollistadapters "stockview_backend/internal/feature/symbollist/adapters"
	symbollisthandler "stockview_backend/internal/feature/symbollist/transport/handler"
	symbollistusecase "stockview_backend/internal/feature/symbollist/usecase"
	infradb "stockview_backend/internal/platform/db"
	infraredis "stockview_backend/internal/platform/redis"
)

func main() {
	// .envはローカル開発用。なければ環境変数のみで動く
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 外部API
	market := di.NewMarket()

	// Repository
	symbolRepo := symbollistadapters.NewSymbolRepository(db)
	candleRepo := di.NewCandleRepository(db, rdb)

	// Usecase
	quoteUC := quoteusecase.NewQuoteUsecase(market)
	candlesUC := candlesusecase.NewCandlesUsecase(candleRepo, market)
	optionsUC := optionsusecase.NewOptionsUsecase(market)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)

	// Handler
	quoteH := quotehandler.NewQuoteHandler(quoteUC)
	candlesH := candleshandler.NewCandlesHandler(candlesUC)
	optionsH := optionshandler.NewOptionsHandler(optionsUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	r := router.NewRouter(quoteH, candlesH, optionsH, symbolH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
