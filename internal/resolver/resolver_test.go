package resolver

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/drakos74/coin-chat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFX struct {
	rates   map[model.Currency]float64
	history map[string]map[model.Currency]float64
	err     error
	calls   int
}

func (m *mockFX) Latest(ctx context.Context, from model.Currency, to ...model.Currency) (map[model.Currency]float64, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rates, nil
}

func (m *mockFX) History(ctx context.Context, from, to model.Currency, start, end time.Time) (map[string]map[model.Currency]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.history, nil
}

type mockMarket struct {
	prices map[string]float64
	klines map[string][]model.Point
	errs   map[string]error
}

func (m *mockMarket) Price(ctx context.Context, pair string) (float64, error) {
	if err, ok := m.errs[pair]; ok {
		return 0, err
	}
	price, ok := m.prices[pair]
	if !ok {
		return 0, fmt.Errorf("no price for '%s': %w", pair, model.ProviderErr)
	}
	return price, nil
}

func (m *mockMarket) Klines(ctx context.Context, pair, interval string, limit int) ([]model.Point, error) {
	if err, ok := m.errs[pair]; ok {
		return nil, err
	}
	return m.klines[pair], nil
}

func TestResolver_Quote(t *testing.T) {

	type test struct {
		fx        *mockFX
		market    *mockMarket
		symbol    model.Currency
		preferred model.Currency
		quote     model.RateQuote
		err       error
	}

	tests := map[string]test{
		"fiat-default-target": {
			fx:     &mockFX{rates: map[model.Currency]float64{model.PLN: 4.0}},
			market: &mockMarket{},
			symbol: model.USD,
			quote: model.RateQuote{
				Symbol:         model.USD,
				Target:         model.PLN,
				Amount:         4.0,
				ConversionRate: 1.0,
				FiatConversion: true,
			},
		},
		"fiat-same-as-preference": {
			fx:        &mockFX{rates: map[model.Currency]float64{model.PLN: 4.0}},
			market:    &mockMarket{},
			symbol:    model.USD,
			preferred: model.USD,
			quote: model.RateQuote{
				Symbol:         model.USD,
				Target:         model.PLN,
				Amount:         4.0,
				ConversionRate: 1.0,
				FiatConversion: true,
			},
		},
		"fiat-preferred-target": {
			fx:        &mockFX{rates: map[model.Currency]float64{model.EUR: 0.92}},
			market:    &mockMarket{},
			symbol:    model.USD,
			preferred: model.EUR,
			quote: model.RateQuote{
				Symbol:         model.USD,
				Target:         model.EUR,
				Amount:         0.92,
				ConversionRate: 1.0,
				FiatConversion: true,
			},
		},
		"fiat-missing-rate": {
			fx:        &mockFX{rates: map[model.Currency]float64{}},
			market:    &mockMarket{},
			symbol:    model.USD,
			preferred: model.EUR,
			err:       model.ProviderErr,
		},
		"crypto-dollar": {
			fx:     &mockFX{},
			market: &mockMarket{prices: map[string]float64{"BTCUSDT": 50000.0}},
			symbol: model.BTC,
			quote: model.RateQuote{
				Symbol:         model.BTC,
				Target:         model.USD,
				Amount:         50000.0,
				ConversionRate: 1.0,
			},
		},
		"crypto-converted": {
			fx:        &mockFX{rates: map[model.Currency]float64{model.PLN: 4.0}},
			market:    &mockMarket{prices: map[string]float64{"ETHUSDT": 100.0}},
			symbol:    model.ETH,
			preferred: model.PLN,
			quote: model.RateQuote{
				Symbol:         model.ETH,
				Target:         model.PLN,
				Amount:         400.0,
				ConversionRate: 4.0,
			},
		},
		"crypto-missing-fx-rate": {
			fx:        &mockFX{rates: map[model.Currency]float64{}},
			market:    &mockMarket{prices: map[string]float64{"ETHUSDT": 100.0}},
			symbol:    model.ETH,
			preferred: model.PLN,
			quote: model.RateQuote{
				Symbol:         model.ETH,
				Target:         model.PLN,
				Amount:         100.0,
				ConversionRate: 1.0,
			},
		},
		"crypto-fx-error": {
			fx:        &mockFX{err: fmt.Errorf("fx down: %w", model.ProviderErr)},
			market:    &mockMarket{prices: map[string]float64{"ETHUSDT": 100.0}},
			symbol:    model.ETH,
			preferred: model.PLN,
			err:       model.ProviderErr,
		},
		"crypto-market-error": {
			fx:     &mockFX{},
			market: &mockMarket{errs: map[string]error{"ETHUSDT": fmt.Errorf("down: %w", model.ProviderErr)}},
			symbol: model.ETH,
			err:    model.ProviderErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resolver := New(tt.fx, tt.market)
			quote, err := resolver.Quote(context.Background(), tt.symbol, tt.preferred)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quote.Symbol, quote.Symbol)
			assert.Equal(t, tt.quote.Target, quote.Target)
			assert.Equal(t, tt.quote.Amount, quote.Amount)
			assert.Equal(t, tt.quote.ConversionRate, quote.ConversionRate)
			assert.Equal(t, tt.quote.FiatConversion, quote.FiatConversion)
		})
	}
}

func TestResolver_QuoteSkipsConversionForDollar(t *testing.T) {
	fx := &mockFX{rates: map[model.Currency]float64{model.PLN: 4.0}}
	market := &mockMarket{prices: map[string]float64{"BTCUSDT": 50000.0}}

	resolver := New(fx, market)
	quote, err := resolver.Quote(context.Background(), model.BTC, model.USDT)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, quote.Amount)
	// no fx round trip for dollar targets
	assert.Equal(t, 0, fx.calls)
}

func TestResolver_FiatHistory(t *testing.T) {
	fx := &mockFX{history: map[string]map[model.Currency]float64{
		"2024-05-03": {model.PLN: 4.2},
		"2024-05-01": {model.PLN: 4.0},
		"2024-05-02": {model.PLN: 4.1},
	}}

	resolver := New(fx, &mockMarket{})
	series, err := resolver.History(context.Background(), model.ChartRequest{
		Symbol: model.USD, Target: model.PLN, Days: 7, Interval: "1d",
	})
	require.NoError(t, err)
	require.Len(t, series.Points, 3)
	// points come out in chronological order regardless of map ordering
	assert.Equal(t, []float64{4.0, 4.1, 4.2}, series.Values())
	assert.True(t, series.Points[0].Time.Before(series.Points[1].Time))
	assert.Equal(t, "USD/PLN – 7 days", series.Title)
	assert.Equal(t, "Exchange Rate (PLN)", series.YLabel)
}

func TestResolver_FiatHistoryEmpty(t *testing.T) {
	resolver := New(&mockFX{history: map[string]map[model.Currency]float64{}}, &mockMarket{})
	_, err := resolver.History(context.Background(), model.ChartRequest{
		Symbol: model.USD, Target: model.PLN, Days: 7, Interval: "1d",
	})
	assert.True(t, errors.Is(err, model.NoDataErr))
}

func TestResolver_CryptoHistory(t *testing.T) {
	now := time.Now()
	market := &mockMarket{klines: map[string][]model.Point{
		"BTCEUR": {
			model.NewPoint(now.Add(-24*time.Hour), 90.0),
			model.NewPoint(now, 92.0),
		},
	}}

	resolver := New(&mockFX{}, market)
	series, err := resolver.History(context.Background(), model.ChartRequest{
		Symbol: model.BTC, Target: model.EUR, Days: 30, Interval: "1d",
	})
	require.NoError(t, err)
	// the direct pair exists, no conversion applied
	assert.Equal(t, []float64{90.0, 92.0}, series.Values())
	assert.Equal(t, "BTC/EUR – 30 periods (1d)", series.Title)
	assert.Equal(t, "Price (EUR)", series.YLabel)
}

func TestResolver_CryptoHistoryFallback(t *testing.T) {

	type test struct {
		market *mockMarket
	}

	now := time.Now()
	usdtKlines := []model.Point{
		model.NewPoint(now.Add(-24*time.Hour), 100.0),
		model.NewPoint(now, 110.0),
	}

	tests := map[string]test{
		"direct-pair-error": {
			market: &mockMarket{
				errs:   map[string]error{"BTCPLN": fmt.Errorf("invalid symbol: %w", model.ProviderErr)},
				klines: map[string][]model.Point{"BTCUSDT": usdtKlines},
			},
		},
		"direct-pair-empty": {
			market: &mockMarket{
				klines: map[string][]model.Point{"BTCUSDT": usdtKlines},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fx := &mockFX{rates: map[model.Currency]float64{model.PLN: 4.0}}
			resolver := New(fx, tt.market)
			series, err := resolver.History(context.Background(), model.ChartRequest{
				Symbol: model.BTC, Target: model.PLN, Days: 30, Interval: "1d",
			})
			require.NoError(t, err)
			// every close converted with the same rate
			assert.Equal(t, []float64{400.0, 440.0}, series.Values())
			assert.Equal(t, "BTC/PLN – 30 periods (1d)", series.Title)
		})
	}
}

func TestResolver_CryptoHistoryFallbackLeavesKlinesIntact(t *testing.T) {
	now := time.Now()
	usdtKlines := []model.Point{
		model.NewPoint(now.Add(-24*time.Hour), 100.0),
		model.NewPoint(now, 110.0),
	}
	market := &mockMarket{klines: map[string][]model.Point{"BTCUSDT": usdtKlines}}
	fx := &mockFX{rates: map[model.Currency]float64{model.PLN: 4.0}}

	resolver := New(fx, market)
	// repeated lookups over the same provider slice convert with the same rate every time
	for i := 0; i < 2; i++ {
		series, err := resolver.History(context.Background(), model.ChartRequest{
			Symbol: model.BTC, Target: model.PLN, Days: 30, Interval: "1d",
		})
		require.NoError(t, err)
		assert.Equal(t, []float64{400.0, 440.0}, series.Values())
	}
	// the provider still holds the unscaled closes
	assert.Equal(t, 100.0, usdtKlines[0].Value)
	assert.Equal(t, 110.0, usdtKlines[1].Value)
}

func TestResolver_CryptoHistoryNoData(t *testing.T) {
	resolver := New(&mockFX{}, &mockMarket{})
	_, err := resolver.History(context.Background(), model.ChartRequest{
		Symbol: model.BTC, Target: model.PLN, Days: 30, Interval: "1d",
	})
	assert.True(t, errors.Is(err, model.NoDataErr))
}

func TestSampleLimit(t *testing.T) {

	type test struct {
		days     int
		interval string
		limit    int
	}

	tests := map[string]test{
		"daily":         {days: 30, interval: "1d", limit: 30},
		"daily-capped":  {days: 2000, interval: "1d", limit: 1000},
		"hourly":        {days: 7, interval: "1h", limit: 168},
		"four-hourly":   {days: 30, interval: "4h", limit: 180},
		"hourly-capped": {days: 90, interval: "1h", limit: 1000},
		"weekly":        {days: 90, interval: "1w", limit: 90},
		"bad-hours":     {days: 7, interval: "xh", limit: 168},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.limit, sampleLimit(tt.days, tt.interval))
		})
	}
}
