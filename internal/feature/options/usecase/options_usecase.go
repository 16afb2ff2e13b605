// Package usecase はオプションチェーン取得・射影のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"strings"

	"stockview_backend/internal/feature/options/domain"
	"stockview_backend/internal/feature/options/domain/entity"
)

// ErrEmptySymbol は銘柄コードが指定されなかったことを示します。
var ErrEmptySymbol = errors.New("symbol must not be empty")

// ChainRepository は外部フィードからのオプションチェーン取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ChainRepository interface {
	GetOptionChain(ctx context.Context, symbol string) ([]entity.Contract, error)
}

// ChainView はフィルタ・ソート適用後のチェーンと、フィルタ用セレクタを
// 埋めるための満期日一覧（全件から抽出）をまとめた結果です。
type ChainView struct {
	Expirations []string
	Contracts   []entity.Contract
}

// OptionsUsecase はオプションチェーン操作のユースケースを定義します。
type OptionsUsecase struct {
	chain ChainRepository
}

// NewOptionsUsecase はOptionsUsecaseの新しいインスタンスを生成します。
func NewOptionsUsecase(chain ChainRepository) *OptionsUsecase {
	return &OptionsUsecase{chain: chain}
}

// GetChain は銘柄のオプションチェーンを取得し、フィルタとソートを適用した
// ビューを返します。満期日一覧はフィルタ適用前の全件から抽出します。
func (ou *OptionsUsecase) GetChain(ctx context.Context, symbol string, filter domain.Filter, sort domain.Sort) (ChainView, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return ChainView{}, ErrEmptySymbol
	}

	contracts, err := ou.chain.GetOptionChain(ctx, symbol)
	if err != nil {
		return ChainView{}, err
	}

	return ChainView{
		Expirations: domain.DistinctExpirations(contracts),
		Contracts:   domain.Project(contracts, filter, sort),
	}, nil
}
