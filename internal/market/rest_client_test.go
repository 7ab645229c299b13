package market

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"paper-trade-bot-go/internal/config"
)

// setupTestServer creates a new test server and a RestClient configured to use it.
func setupTestServer(handler http.Handler) (*RestClient, *httptest.Server) {
	server := httptest.NewServer(handler)

	client := resty.New().SetBaseURL(server.URL)
	logger := zap.NewNop() // Use a no-op logger for tests

	rc := &RestClient{
		client:  client,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Inf, 1), // Allow all requests in tests
	}

	return rc, server
}

func TestPing(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ping", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"gecko_says":"(V3) To the Moon!"}`))
		})

		rc, server := setupTestServer(handler)
		defer server.Close()

		// Act
		err := rc.Ping()

		// Assert
		assert.NoError(t, err)
	})

	t.Run("APIError", func(t *testing.T) {
		// Arrange
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		})

		rc, server := setupTestServer(handler)
		defer server.Close()

		// Act
		err := rc.Ping()

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ping market data API")
	})
}

func TestGetMarkets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockResponse := `[
			{"symbol": "btc", "current_price": 100000, "price_change_percentage_24h": 1.5, "total_volume": 1500000000},
			{"symbol": "eth", "current_price": 4000, "price_change_percentage_24h": -5.2, "total_volume": 800000000}
		]`

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/coins/markets", r.URL.Path)
			assert.Equal(t, "aud", r.URL.Query().Get("vs_currency"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(mockResponse))
		})

		rc, server := setupTestServer(handler)
		defer server.Close()

		// Act
		tickers, err := rc.GetMarkets("aud")

		// Assert
		assert.NoError(t, err)
		assert.Len(t, tickers, 2)
		assert.Equal(t, "BTC", tickers[0].Symbol)
		assert.Equal(t, float64(100000), tickers[0].Price)
		assert.Equal(t, 1.5, tickers[0].Change24h)
		assert.Equal(t, float64(1500000000), tickers[0].Volume24h)
		assert.Equal(t, "ETH", tickers[1].Symbol)
		assert.Equal(t, -5.2, tickers[1].Change24h)
	})

	t.Run("APIError", func(t *testing.T) {
		// Arrange
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid vs_currency"}`))
		})

		rc, server := setupTestServer(handler)
		defer server.Close()

		// Act
		tickers, err := rc.GetMarkets("nope")

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get markets")
		assert.Nil(t, tickers)
	})
}

func TestNewRestClient(t *testing.T) {
	cfg := &config.Market{
		BaseURL:        "https://api.coingecko.com/api/v3",
		RateLimit:      10,
		RateLimitBurst: 5,
	}
	logger := zap.NewNop()

	rc := NewRestClient(cfg, logger)

	assert.NotNil(t, rc)
	assert.NotNil(t, rc.limiter)
}
