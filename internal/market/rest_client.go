package market

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"paper-trade-bot-go/internal/config"
)

// RestClientInterface defines the interface for the market data API client.
type RestClientInterface interface {
	Ping() error
	GetMarkets(vsCurrency string) ([]Ticker, error)
}

// Ticker is the current market state of one symbol.
type Ticker struct {
	Symbol    string
	Price     float64
	Change24h float64
	Volume24h float64
}

// RestClient is a client for the CoinGecko REST API.
// It implements the RestClientInterface.
type RestClient struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// ensure RestClient implements the interface
var _ RestClientInterface = (*RestClient)(nil)

// NewRestClient creates a new market data API client.
func NewRestClient(cfg *config.Market, logger *zap.Logger) *RestClient {
	client := resty.New().SetBaseURL(cfg.BaseURL)

	// Initialize the rate limiter.
	// rate.Limit is requests per second.
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	return &RestClient{
		client:  client,
		logger:  logger,
		limiter: limiter,
	}
}

// doRequest handles the actual request execution with rate limiting and retry logic.
func (c *RestClient) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error
	const maxRetries = 3

	for i := 0; i < maxRetries; i++ {
		// Wait for the rate limiter
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
		resp, err = req.Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil // Success
		}

		// Analyze error and decide whether to retry
		shouldRetry := false
		var retryAfter time.Duration

		if resp != nil {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				retryAfterHeader := resp.Header().Get("Retry-After")
				if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 { // Server errors
				shouldRetry = true
			}
		} else { // Network or other client-side errors
			shouldRetry = true
		}

		if !shouldRetry {
			return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), resp.String())
		}

		// If we should retry, calculate wait time
		if retryAfter == 0 {
			// Exponential backoff: 1s, 2s, 4s
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
}

// Ping checks connectivity to the market data API.
// This is a good endpoint to test connectivity on startup.
func (c *RestClient) Ping() error {
	req := c.client.R().
		SetHeader("Accept", "application/json")
	ctx := context.Background()

	if _, err := c.doRequest(ctx, "GET", "/ping", req); err != nil {
		c.logger.Error("Failed to ping market data API", zap.Error(err))
		return fmt.Errorf("failed to ping market data API: %w", err)
	}
	return nil
}

// marketEntry is one row of the /coins/markets response.
type marketEntry struct {
	Symbol                   string  `json:"symbol"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	TotalVolume              float64 `json:"total_volume"`
}

// GetMarkets fetches the top markets priced in the given currency.
// Symbols are upper-cased so they match the ticker convention used by bots.
func (c *RestClient) GetMarkets(vsCurrency string) ([]Ticker, error) {
	var entries []marketEntry

	req := c.client.R().
		SetQueryParams(map[string]string{
			"vs_currency": vsCurrency,
			"order":       "market_cap_desc",
			"per_page":    "250",
			"page":        "1",
		}).
		SetResult(&entries).
		SetHeader("Accept", "application/json")
	ctx := context.Background()

	resp, err := c.doRequest(ctx, "GET", "/coins/markets", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get markets: %w", err)
	}

	result := resp.Result().(*[]marketEntry)
	tickers := make([]Ticker, 0, len(*result))
	for _, e := range *result {
		tickers = append(tickers, Ticker{
			Symbol:    strings.ToUpper(e.Symbol),
			Price:     e.CurrentPrice,
			Change24h: e.PriceChangePercentage24h,
			Volume24h: e.TotalVolume,
		})
	}

	return tickers, nil
}
