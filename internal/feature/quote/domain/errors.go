// Package domain はquoteフィーチャーのドメインレベルのエラーを定義します。
package domain

import "errors"

// ErrSymbolNotFound はフィードが該当銘柄の相場を返さなかったことを示します。
// ネットワーク障害とは区別され、呼び出し側は404相当として扱えます。
var ErrSymbolNotFound = errors.New("symbol not found")

// ErrMalformedValue はフィードの数値フィールドがパースできなかったことを示します。
// フィード自体の破損であり、通信エラーとは区別されます。
var ErrMalformedValue = errors.New("malformed numeric value")
