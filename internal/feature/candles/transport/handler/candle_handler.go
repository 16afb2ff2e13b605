// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockview_backend/internal/api"
	"stockview_backend/internal/feature/candles/domain"
	"stockview_backend/internal/feature/candles/domain/entity"
	"stockview_backend/internal/feature/candles/heikinashi"
)

// CandlesUsecase はローソク足データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
	GetHeikinAshi(ctx context.Context, symbol, interval string, outputsize int, seed heikinashi.Seed) ([]heikinashi.Bar, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetCandlesHandler は銘柄コードと時間間隔を受け取り、ローソク足データをJSONで返します。
// style=heikin-ashi を指定すると平均足系列を返します。平均足のシードは
// seed=oldest（既定、教科書どおり）または seed=newest（旧フロントエンド互換）です。
//
// エンドポイント例:
// GET /candles/IBM?interval=1day&outputsize=200&style=heikin-ashi
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	// 未指定の場合はデフォルト値を使用
	interval := c.DefaultQuery("interval", "1day")
	outputsizeStr := c.DefaultQuery("outputsize", "200")
	// 文字列を整数に変換
	outputsize, _ := strconv.Atoi(outputsizeStr)

	if c.Query("style") == "heikin-ashi" {
		h.heikinAshi(c, symbol, interval, outputsize)
		return
	}

	candles, err := h.uc.GetCandles(c.Request.Context(), symbol, interval, outputsize)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	// データをフォーマット
	out := make([]api.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, api.CandleResponse{
			Time:   x.Time.UTC().Format("2006-01-02"),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}
	c.JSON(http.StatusOK, out)
}

// heikinAshi は平均足スタイルのレスポンスを処理します。
// 系列が空の場合はエラーではなく空配列を返し、クライアントに空状態を描画させます。
func (h *CandlesHandler) heikinAshi(c *gin.Context, symbol, interval string, outputsize int) {
	seed := heikinashi.SeedOldest
	if c.Query("seed") == "newest" {
		seed = heikinashi.SeedNewest
	}

	bars, err := h.uc.GetHeikinAshi(c.Request.Context(), symbol, interval, outputsize, seed)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySeries) {
			c.JSON(http.StatusOK, []api.HeikinAshiResponse{})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.HeikinAshiResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, api.HeikinAshiResponse{
			Time:  b.Time.UTC().Format("2006-01-02"),
			Open:  b.Open,
			High:  b.High,
			Low:   b.Low,
			Close: b.Close,
		})
	}
	c.JSON(http.StatusOK, out)
}
