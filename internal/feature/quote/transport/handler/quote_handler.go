// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockview_backend/internal/api"
	"stockview_backend/internal/feature/quote/domain"
	"stockview_backend/internal/feature/quote/domain/entity"
	"stockview_backend/internal/feature/quote/usecase"
)

// QuoteUsecase は相場取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// QuoteHandler は相場スナップショットのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuoteHandler は銘柄コードを受け取り、最新相場をJSONで返します。
//
// エンドポイント例:
// GET /quote/IBM
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	q, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptySymbol):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrSymbolNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, api.QuoteResponse{
		Symbol:           q.Symbol,
		Open:             q.Open,
		High:             q.High,
		Low:              q.Low,
		Price:            q.Price,
		Volume:           q.Volume,
		LatestTradingDay: q.LatestTradingDay,
		PreviousClose:    q.PreviousClose,
		Change:           q.Change,
		ChangePercent:    q.ChangePercent,
	})
}
