// Package usecase は相場スナップショット取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"strings"

	"stockview_backend/internal/feature/quote/domain/entity"
)

// ErrEmptySymbol は銘柄コードが指定されなかったことを示します。
var ErrEmptySymbol = errors.New("symbol must not be empty")

// QuoteRepository は外部フィードからの相場取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// QuoteUsecase は相場スナップショット取得のユースケースを定義します。
type QuoteUsecase struct {
	market QuoteRepository
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market QuoteRepository) *QuoteUsecase {
	return &QuoteUsecase{market: market}
}

// GetQuote は銘柄コードを正規化（トリム・大文字化）してから相場を取得します。
// 空の銘柄コードはErrEmptySymbolを返し、フィードへは問い合わせません。
func (qu *QuoteUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return entity.Quote{}, ErrEmptySymbol
	}
	return qu.market.GetQuote(ctx, symbol)
}
