// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	candleshandler "stockview_backend/internal/feature/candles/transport/handler"
	optionshandler "stockview_backend/internal/feature/options/transport/handler"
	quotehandler "stockview_backend/internal/feature/quote/transport/handler"
	symbollisthandler "stockview_backend/internal/feature/symbollist/transport/handler"
	"stockview_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを登録したginルータを生成します。
func NewRouter(quote *quotehandler.QuoteHandler, candles *candleshandler.CandlesHandler,
	options *optionshandler.OptionsHandler, symbol *symbollisthandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザのSPAから直接叩かれるためCORSを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 相場スナップショット
	r.GET("/quote/:symbol", quote.GetQuoteHandler)
	// ローソク足（style=heikin-ashiで平均足）
	r.GET("/candles/:symbol", candles.GetCandlesHandler)
	// オプションチェーン（フィルタ・ソートはクエリパラメータ）
	r.GET("/options/:symbol", options.GetChainHandler)
	// ウォッチリストの銘柄一覧
	r.GET("/symbols", symbol.List)

	return r
}
