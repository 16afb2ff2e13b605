package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"stockview_backend/internal/app/di"
	candleadapters "stockview_backend/internal/feature/candles/adapters"
	candlesusecase "stockview_backend/internal/feature/candles/usecase"
	symbollistadapters "stockview_backend/internal/feature/symbollist/adapters"
	"stockview_backend/internal/platform/config"
	infradb "stockview_backend/internal/platform/db"
	"stockview_backend/internal/shared/ratelimiter"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config:", err)
	}

	db := infradb.OpenDB()
	marketRepo := di.NewMarket()
	candleRepo := candleadapters.NewCandleRepository(db)
	symbolRepo := symbollistadapters.NewSymbolRepository(db)

	// 外部APIのレート制限内に収めるためのリミッター
	limiter := ratelimiter.NewRateLimiter(cfg.Ingest.RateLimit, time.Minute)
	uc := candlesusecase.NewIngestUsecase(marketRepo, candleRepo, limiter, cfg.Ingest.Outputsize)

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		symbols, err := symbolRepo.ListActiveCodes(ctx)
		if err != nil {
			log.Println("[ERROR] failed to load symbols:", err)
			return
		}
		if err := uc.IngestAll(ctx, symbols); err != nil {
			log.Println("[ERROR] ingest failed:", err)
			return
		}
		log.Println("ingest ok")
	}

	// cron未指定なら一回実行して終了
	if cfg.Ingest.Cron == "" {
		run()
		return
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Ingest.Cron, run); err != nil {
		log.Fatal("invalid cron spec:", err)
	}
	c.Start()
	log.Println("ingest scheduler started:", cfg.Ingest.Cron)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down ingest scheduler")
	<-c.Stop().Done()
}
