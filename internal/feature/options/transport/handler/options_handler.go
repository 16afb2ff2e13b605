// Package handler はoptionsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stockview_backend/internal/api"
	"stockview_backend/internal/feature/options/domain"
	"stockview_backend/internal/feature/options/usecase"
)

// OptionsUsecase はオプションチェーン操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type OptionsUsecase interface {
	GetChain(ctx context.Context, symbol string, filter domain.Filter, sort domain.Sort) (usecase.ChainView, error)
}

// OptionsHandler はオプションチェーンのHTTPリクエストを処理します。
type OptionsHandler struct {
	uc OptionsUsecase
}

// NewOptionsHandler は指定されたusecaseでOptionsHandlerの新しいインスタンスを生成します。
func NewOptionsHandler(uc OptionsUsecase) *OptionsHandler {
	return &OptionsHandler{uc: uc}
}

// GetChainHandler は銘柄コードとフィルタ・ソート条件を受け取り、
// 射影済みのオプションチェーンをJSONで返します。
//
// エンドポイント例:
// GET /options/IBM?type=calls&expiration=2024-06-21&sort=strikePrice&direction=descending
func (h *OptionsHandler) GetChainHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	filter := domain.Filter{
		Type:       parseTypeFilter(c.DefaultQuery("type", "all")),
		Expiration: c.Query("expiration"),
	}
	sort := domain.Sort{
		Key:       c.Query("sort"),
		Direction: domain.Ascending,
	}
	if c.Query("direction") == "descending" {
		sort.Direction = domain.Descending
	}

	view, err := h.uc.GetChain(c.Request.Context(), symbol, filter, sort)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptySymbol) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := api.OptionChainResponse{
		Symbol:      strings.ToUpper(strings.TrimSpace(symbol)),
		Expirations: view.Expirations,
		Contracts:   make([]api.OptionContractResponse, 0, len(view.Contracts)),
	}
	for _, ct := range view.Contracts {
		out.Contracts = append(out.Contracts, api.OptionContractResponse{
			ContractID:   ct.ContractID,
			Symbol:       ct.Symbol,
			Type:         string(ct.Type),
			Expiration:   ct.Expiration,
			Strike:       ct.Strike,
			Last:         ct.Last,
			Bid:          ct.Bid,
			Ask:          ct.Ask,
			Volume:       ct.Volume,
			OpenInterest: ct.OpenInterest,
			Delta:        ct.Delta,
			Gamma:        ct.Gamma,
			Theta:        ct.Theta,
			Vega:         ct.Vega,
		})
	}
	c.JSON(http.StatusOK, out)
}

// parseTypeFilter はクエリ文字列の種別フィルタを正規化します。未知の値はALL扱いです。
func parseTypeFilter(s string) domain.TypeFilter {
	switch strings.ToLower(s) {
	case "calls":
		return domain.FilterCalls
	case "puts":
		return domain.FilterPuts
	default:
		return domain.FilterAll
	}
}
