package binance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/drakos74/coin-chat/internal/metrics"
	"github.com/drakos74/coin-chat/internal/model"
	"github.com/rs/zerolog/log"
)

// Name identifies the provider in logs and metrics.
const Name = "binance"

// Client is the market data client used to interact with the exchange endpoints.
// Only public endpoints are used, so no credentials are needed.
type Client struct {
	api exchange
}

// NewClient creates a new client.
func NewClient() *Client {
	return &Client{
		api: newBinanceAPI(binance.NewClient("", "")),
	}
}

// WithRemote allows to override the remote implementation.
// to be used mostly for local testing
func (c *Client) WithRemote(api exchange) *Client {
	c.api = api
	return c
}

// Price retrieves the current spot price for the given pair.
func (c *Client) Price(ctx context.Context, pair string) (float64, error) {
	prices, err := c.api.ListPrices(ctx, pair)
	if err != nil {
		metrics.Observer.IncrementProvider(Name, "price", "error")
		return 0, fmt.Errorf("could not get price for '%s': %v: %w", pair, err, model.ProviderErr)
	}
	metrics.Observer.IncrementProvider(Name, "price", "ok")
	for _, p := range prices {
		if p.Symbol == pair {
			price, err := strconv.ParseFloat(p.Price, 64)
			if err != nil {
				return 0, fmt.Errorf("could not parse price '%s' for '%s': %w", p.Price, pair, model.ProviderErr)
			}
			return price, nil
		}
	}
	return 0, fmt.Errorf("no price returned for '%s': %w", pair, model.ProviderErr)
}

// Klines retrieves the closing prices for the given pair at the provided interval.
// Points carry the candle close time in provider return order.
// An empty result is returned as is, the caller decides whether to fall back to another pair.
func (c *Client) Klines(ctx context.Context, pair, interval string, limit int) ([]model.Point, error) {
	klines, err := c.api.Klines(ctx, pair, interval, limit)
	if err != nil {
		metrics.Observer.IncrementProvider(Name, "klines", "error")
		return nil, fmt.Errorf("could not get klines for '%s': %v: %w", pair, err, model.ProviderErr)
	}
	metrics.Observer.IncrementProvider(Name, "klines", "ok")
	log.Debug().
		Str("pair", pair).
		Str("interval", interval).
		Int("limit", limit).
		Int("klines", len(klines)).
		Msg("retrieved klines")
	points := make([]model.Point, len(klines))
	for i, k := range klines {
		price, err := strconv.ParseFloat(k.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse closing price '%s' for '%s': %w", k.Close, pair, model.ProviderErr)
		}
		points[i] = model.NewPoint(time.UnixMilli(k.CloseTime), price)
	}
	return points, nil
}
