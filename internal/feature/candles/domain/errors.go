// Package domain はcandlesフィーチャーのドメインレベルのエラーを定義します。
package domain

import "errors"

var (
	// ErrEmptySeries は入力の時系列が空であることを示します。
	// 呼び出し側は「描画するチャートがない」として扱い、クラッシュさせません。
	ErrEmptySeries = errors.New("empty price series")

	// ErrMalformedValue はフィードから受け取った数値文字列がパースできなかった
	// ことを示します。「データなし」と「壊れたフィード」を区別するために使います。
	ErrMalformedValue = errors.New("malformed numeric value")
)
