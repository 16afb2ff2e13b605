package alphavantage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	candlesdomain "stockview_backend/internal/feature/candles/domain"
	quotedomain "stockview_backend/internal/feature/quote/domain"
)

func newTestMarket(server *httptest.Server) *AlphaVantageMarket {
	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}
	return NewAlphaVantageMarket(cfg, server.Client())
}

func TestNewAlphaVantageMarket(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: "https://api.test.com",
		Timeout: 10 * time.Second,
	}
	client := &http.Client{}

	market := NewAlphaVantageMarket(cfg, client)

	if market == nil {
		t.Fatal("expected non-nil market")
	}
	if market.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, market.cfg.APIKey)
	}
}

func TestAlphaVantageMarket_GetQuote_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Query().Get("function") != "GLOBAL_QUOTE" {
			t.Errorf("expected function GLOBAL_QUOTE, got %s", r.URL.Query().Get("function"))
		}
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Errorf("expected symbol AAPL, got %s", r.URL.Query().Get("symbol"))
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %s", r.URL.Query().Get("apikey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Global Quote": {
				"01. symbol": "AAPL",
				"02. open": "232.60",
				"03. high": "235.00",
				"04. low": "231.45",
				"05. price": "233.33",
				"06. volume": "39418437",
				"07. latest trading day": "2025-01-15",
				"08. previous close": "230.00",
				"09. change": "3.33",
				"10. change percent": "1.4478%"
			}
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	quote, err := market.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", quote.Symbol)
	}
	if quote.Price != 233.33 {
		t.Errorf("expected price 233.33, got %f", quote.Price)
	}
	if quote.Volume != 39418437 {
		t.Errorf("expected volume 39418437, got %d", quote.Volume)
	}
	if quote.LatestTradingDay != "2025-01-15" {
		t.Errorf("expected latest trading day 2025-01-15, got %s", quote.LatestTradingDay)
	}
	if quote.ChangePercent != "1.4478%" {
		t.Errorf("expected change percent 1.4478%%, got %s", quote.ChangePercent)
	}
}

func TestAlphaVantageMarket_GetQuote_UnknownSymbol(t *testing.T) {
	t.Parallel()

	// 未知の銘柄ではAPIは空のquoteオブジェクトを返す
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Global Quote": {}}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetQuote(context.Background(), "NOPE")
	if !errors.Is(err, quotedomain.ErrSymbolNotFound) {
		t.Fatalf("expected ErrSymbolNotFound, got %v", err)
	}
}

func TestAlphaVantageMarket_GetQuote_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Error Message": "Invalid API call."}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetQuote(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Invalid API call.") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestAlphaVantageMarket_GetQuote_MalformedNumber(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Global Quote": {
				"01. symbol": "AAPL",
				"02. open": "not-a-number",
				"03. high": "235.00",
				"04. low": "231.45",
				"05. price": "233.33",
				"06. volume": "39418437",
				"07. latest trading day": "2025-01-15",
				"08. previous close": "230.00",
				"09. change": "3.33",
				"10. change percent": "1.4478%"
			}
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetQuote(context.Background(), "AAPL")
	if !errors.Is(err, quotedomain.ErrMalformedValue) {
		t.Fatalf("expected ErrMalformedValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "open") {
		t.Errorf("expected the broken field in the message, got %v", err)
	}
}

func TestAlphaVantageMarket_GetTimeSeries_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("function") != "TIME_SERIES_DAILY_ADJUSTED" {
			t.Errorf("expected function TIME_SERIES_DAILY_ADJUSTED, got %s", r.URL.Query().Get("function"))
		}
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Errorf("expected symbol AAPL, got %s", r.URL.Query().Get("symbol"))
		}
		if r.URL.Query().Get("outputsize") != "" {
			t.Errorf("expected no outputsize for small request, got %s", r.URL.Query().Get("outputsize"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Time Series (Daily)": {
				"2025-01-14": {
					"1. open": "148.00",
					"2. high": "151.00",
					"3. low": "147.50",
					"4. close": "150.00",
					"5. adjusted close": "149.80",
					"6. volume": "900000"
				},
				"2025-01-15": {
					"1. open": "150.00",
					"2. high": "155.00",
					"3. low": "149.00",
					"4. close": "154.50",
					"5. adjusted close": "154.30",
					"6. volume": "1000000"
				}
			}
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	candles, err := market.GetTimeSeries(context.Background(), "AAPL", "1day", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(candles) != 2 {
		t.Fatalf("expected 2 candles, got %d", len(candles))
	}

	// 新しい順に整列されること
	if !candles[0].Time.After(candles[1].Time) {
		t.Errorf("expected newest-first ordering, got %v then %v", candles[0].Time, candles[1].Time)
	}
	if candles[0].Open != 150.00 {
		t.Errorf("expected open 150.00, got %f", candles[0].Open)
	}
	if candles[0].Close != 154.50 {
		t.Errorf("expected close 154.50, got %f", candles[0].Close)
	}
	if candles[0].Volume != 1000000 {
		t.Errorf("expected volume 1000000, got %d", candles[0].Volume)
	}
	if candles[0].Symbol != "AAPL" || candles[0].Interval != "1day" {
		t.Errorf("expected AAPL/1day tagging, got %s/%s", candles[0].Symbol, candles[0].Interval)
	}
}

func TestAlphaVantageMarket_GetTimeSeries_AdjustedFallback(t *testing.T) {
	t.Parallel()

	var functions []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn := r.URL.Query().Get("function")
		functions = append(functions, fn)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if fn == "TIME_SERIES_DAILY_ADJUSTED" {
			// プレミアム専用エンドポイントの応答。時系列キーなし
			_, _ = w.Write([]byte(`{"Information": "This is a premium endpoint."}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"Time Series (Daily)": {
				"2025-01-15": {
					"1. open": "150.00",
					"2. high": "155.00",
					"3. low": "149.00",
					"4. close": "154.50",
					"5. volume": "1000000"
				}
			}
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	candles, err := market.GetTimeSeries(context.Background(), "AAPL", "1day", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"TIME_SERIES_DAILY_ADJUSTED", "TIME_SERIES_DAILY"}
	if len(functions) != len(want) || functions[0] != want[0] || functions[1] != want[1] {
		t.Fatalf("expected fallback call order %v, got %v", want, functions)
	}
	if len(candles) != 1 {
		t.Fatalf("expected 1 candle, got %d", len(candles))
	}
	if candles[0].Volume != 1000000 {
		t.Errorf("expected volume 1000000, got %d", candles[0].Volume)
	}
}

func TestAlphaVantageMarket_GetTimeSeries_FullOutputsize(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("outputsize") != "full" {
			t.Errorf("expected outputsize full, got %s", r.URL.Query().Get("outputsize"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Time Series (Daily)": {
				"2025-01-15": {
					"1. open": "150.00",
					"2. high": "155.00",
					"3. low": "149.00",
					"4. close": "154.50",
					"5. adjusted close": "154.30",
					"6. volume": "1000000"
				}
			}
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	if _, err := market.GetTimeSeries(context.Background(), "AAPL", "1day", 300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAlphaVantageMarket_GetTimeSeries_Weekly(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("function") != "TIME_SERIES_WEEKLY" {
			t.Errorf("expected function TIME_SERIES_WEEKLY, got %s", r.URL.Query().Get("function"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Weekly Time Series": {
				"2025-01-10": {
					"1. open": "148.00",
					"2. high": "155.00",
					"3. low": "147.50",
					"4. close": "154.50",
					"5. volume": "4200000"
				}
			}
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	candles, err := market.GetTimeSeries(context.Background(), "AAPL", "1week", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 1 {
		t.Fatalf("expected 1 candle, got %d", len(candles))
	}
	if candles[0].Interval != "1week" {
		t.Errorf("expected interval 1week, got %s", candles[0].Interval)
	}
}

func TestAlphaVantageMarket_GetTimeSeries_UnsupportedInterval(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected API call for unsupported interval")
	}))
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetTimeSeries(context.Background(), "AAPL", "5min", 100)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported interval") {
		t.Errorf("expected unsupported interval error, got %v", err)
	}
}

func TestAlphaVantageMarket_GetTimeSeries_MalformedValue(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Time Series (Daily)": {
				"2025-01-15": {
					"1. open": "garbage",
					"2. high": "155.00",
					"3. low": "149.00",
					"4. close": "154.50",
					"5. adjusted close": "154.30",
					"6. volume": "1000000"
				}
			}
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetTimeSeries(context.Background(), "AAPL", "1day", 100)
	if !errors.Is(err, candlesdomain.ErrMalformedValue) {
		t.Fatalf("expected ErrMalformedValue, got %v", err)
	}
}

func TestAlphaVantageMarket_GetTimeSeries_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"internal server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			market := newTestMarket(server)

			_, err := market.GetTimeSeries(context.Background(), "AAPL", "1day", 100)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "alphavantage http") {
				t.Errorf("expected HTTP error message, got %v", err)
			}
		})
	}
}

func TestAlphaVantageMarket_GetTimeSeries_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetTimeSeries(context.Background(), "AAPL", "1day", 100)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestAlphaVantageMarket_GetOptionChain_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("function") != "REALTIME_OPTIONS" {
			t.Errorf("expected function REALTIME_OPTIONS, got %s", r.URL.Query().Get("function"))
		}
		if r.URL.Query().Get("require_greeks") != "true" {
			t.Errorf("expected require_greeks true, got %s", r.URL.Query().Get("require_greeks"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"endpoint": "Realtime Options",
			"message": "success",
			"data": [
				{
					"contractID": "AAPL250117C00150000",
					"symbol": "AAPL",
					"expiration": "2025-01-17",
					"strike": "150.00",
					"type": "call",
					"last": "83.45",
					"bid": "83.10",
					"ask": "83.80",
					"volume": "12",
					"open_interest": "3400",
					"delta": "0.98",
					"gamma": "0.001",
					"theta": "-0.02",
					"vega": "0.01"
				},
				{
					"contractID": "AAPL250117P00150000",
					"symbol": "AAPL",
					"expiration": "2025-01-17",
					"strike": "150.00",
					"type": "put",
					"last": "",
					"bid": "0.01",
					"ask": "0.02",
					"volume": "",
					"open_interest": "1200",
					"delta": "-0.02",
					"gamma": "0.001",
					"theta": "-0.01",
					"vega": "0.01"
				}
			]
		}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	contracts, err := market.GetOptionChain(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(contracts) != 2 {
		t.Fatalf("expected 2 contracts, got %d", len(contracts))
	}
	if contracts[0].Type != "CALL" {
		t.Errorf("expected type CALL, got %s", contracts[0].Type)
	}
	if contracts[1].Type != "PUT" {
		t.Errorf("expected type PUT, got %s", contracts[1].Type)
	}
	if contracts[0].Strike != "150.00" {
		t.Errorf("expected strike 150.00, got %s", contracts[0].Strike)
	}
	// 欠損値は空文字のまま保持される
	if contracts[1].Last != "" || contracts[1].Volume != "" {
		t.Errorf("expected empty missing values, got last=%q volume=%q", contracts[1].Last, contracts[1].Volume)
	}
}

func TestAlphaVantageMarket_GetOptionChain_Empty(t *testing.T) {
	t.Parallel()

	// 上場オプションのない銘柄ではdataが空配列になる
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"endpoint": "Realtime Options", "message": "success", "data": []}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	contracts, err := market.GetOptionChain(context.Background(), "BRK.B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contracts) != 0 {
		t.Errorf("expected empty chain, got %d contracts", len(contracts))
	}
}

func TestAlphaVantageMarket_GetOptionChain_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Note": "API call frequency limit reached."}`))
	}))
	defer server.Close()

	market := newTestMarket(server)

	_, err := market.GetOptionChain(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "frequency limit") {
		t.Errorf("expected rate limit message, got %v", err)
	}
}
