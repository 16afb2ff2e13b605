package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// AlphaVantageMarket はAlpha Vantage外部APIから相場・時系列・オプションデータを
// 取得するリポジトリ実装です。
type AlphaVantageMarket struct {
	cfg    Config
	client *http.Client
}

// NewAlphaVantageMarket は指定された設定とHTTPクライアントでAlphaVantageMarketの
// 新しいインスタンスを生成します。
func NewAlphaVantageMarket(cfg Config, client *http.Client) *AlphaVantageMarket {
	return &AlphaVantageMarket{cfg: cfg, client: client}
}

// getJSON はクエリパラメータ付きのGETリクエストを実行し、レスポンスJSONをvにデコードします。
// APIキーはここで必ず付与されます。
func (a *AlphaVantageMarket) getJSON(ctx context.Context, q url.Values, v any) error {
	q.Set("apikey", a.cfg.APIKey)
	u := fmt.Sprintf("%s/query?%s", a.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("alphavantage http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(v)
}

// apiMessage は明示的なエラー・レート制限メッセージのうち最初の非空のものを返します。
func apiMessage(errorMessage, information, note string) string {
	switch {
	case errorMessage != "":
		return errorMessage
	case information != "":
		return information
	default:
		return note
	}
}
