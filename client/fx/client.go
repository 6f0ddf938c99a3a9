package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/drakos74/coin-chat/internal/metrics"
	"github.com/drakos74/coin-chat/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	// Name identifies the provider in logs and metrics.
	Name = "fx"
	// DefaultURL is the public endpoint of the exchange rate provider.
	DefaultURL = "https://api.frankfurter.app"

	dateFormat = "2006-01-02"
)

// Client is the fiat exchange rate client.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a new client for the exchange rate provider.
func NewClient() *Client {
	return &Client{
		url:    DefaultURL,
		client: http.DefaultClient,
	}
}

// WithURL allows to override the provider endpoint.
// to be used mostly for local testing
func (c *Client) WithURL(url string) *Client {
	c.url = url
	return c
}

// WithClient allows to override the underlying http client.
func (c *Client) WithClient(client *http.Client) *Client {
	c.client = client
	return c
}

type latestResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[model.Currency]float64 `json:"rates"`
}

type historyResponse struct {
	Base  string                                `json:"base"`
	Rates map[string]map[model.Currency]float64 `json:"rates"`
}

// Latest retrieves the latest exchange rates from the given base to the target currencies.
// A target missing from the returned rates is a valid response to be handled by the caller.
func (c *Client) Latest(ctx context.Context, from model.Currency, to ...model.Currency) (map[model.Currency]float64, error) {
	var res latestResponse
	url := fmt.Sprintf("%s/latest?from=%s&to=%s", c.url, from, join(to))
	if err := c.get(ctx, "latest", url, &res); err != nil {
		return nil, err
	}
	return res.Rates, nil
}

// History retrieves the exchange rates from the base to the target currency
// for every date in the given range, keyed by the ISO date.
func (c *Client) History(ctx context.Context, from, to model.Currency, start, end time.Time) (map[string]map[model.Currency]float64, error) {
	var res historyResponse
	url := fmt.Sprintf("%s/%s..%s?from=%s&to=%s",
		c.url, start.Format(dateFormat), end.Format(dateFormat), from, to)
	if err := c.get(ctx, "history", url, &res); err != nil {
		return nil, err
	}
	return res.Rates, nil
}

// Currencies retrieves the directory of known currency codes with their display names.
func (c *Client) Currencies(ctx context.Context) (map[string]string, error) {
	var res map[string]string
	if err := c.get(ctx, "currencies", fmt.Sprintf("%s/currencies", c.url), &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, operation, url string, value interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("could not create request for '%s': %v: %w", url, err, model.ProviderErr)
	}
	res, err := c.client.Do(req)
	if err != nil {
		metrics.Observer.IncrementProvider(Name, operation, "error")
		return fmt.Errorf("could not reach fx provider at '%s': %v: %w", url, err, model.ProviderErr)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		metrics.Observer.IncrementProvider(Name, operation, "error")
		return fmt.Errorf("fx provider returned status %d for '%s': %w", res.StatusCode, url, model.ProviderErr)
	}
	if err := json.NewDecoder(res.Body).Decode(value); err != nil {
		metrics.Observer.IncrementProvider(Name, operation, "error")
		return fmt.Errorf("could not decode fx response for '%s': %v: %w", url, err, model.ProviderErr)
	}
	metrics.Observer.IncrementProvider(Name, operation, "ok")
	log.Debug().Str("url", url).Str("operation", operation).Msg("fx response")
	return nil
}

func join(cc []model.Currency) string {
	ss := make([]string, len(cc))
	for i, c := range cc {
		ss[i] = string(c)
	}
	return strings.Join(ss, ",")
}
