package resolver

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/drakos74/coin-chat/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultFiatTarget is the target used for fiat lookups when the user preference
	// is unset or equal to the looked up symbol.
	DefaultFiatTarget = model.PLN
	// maxSamples is the provider limit on the number of candles per request.
	maxSamples = 1000

	dateFormat = "2006-01-02"
)

// FX exposes the fiat exchange rate provider.
type FX interface {
	Latest(ctx context.Context, from model.Currency, to ...model.Currency) (map[model.Currency]float64, error)
	History(ctx context.Context, from, to model.Currency, start, end time.Time) (map[string]map[model.Currency]float64, error)
}

// Market exposes the crypto market data provider.
type Market interface {
	Price(ctx context.Context, pair string) (float64, error)
	Klines(ctx context.Context, pair, interval string, limit int) ([]model.Point, error)
}

// Resolver routes lookups between the fiat and the crypto provider
// and synthesizes cross rates when a direct pair is not available.
type Resolver struct {
	fx     FX
	market Market
}

// New creates a new resolver on top of the two providers.
func New(fx FX, market Market) *Resolver {
	return &Resolver{
		fx:     fx,
		market: market,
	}
}

// Quote resolves the current rate for the given symbol in the preferred target currency.
// Fiat symbols are resolved against the fx provider, defaulting the target when the
// preference is unset or points back to the symbol itself.
// Any other symbol is priced as crypto through its tether quoted pair.
func (r *Resolver) Quote(ctx context.Context, symbol, preferred model.Currency) (model.RateQuote, error) {
	if symbol.IsFiat() {
		target := preferred
		if target == model.NoCurrency || target == symbol {
			target = DefaultFiatTarget
		}
		return r.Requote(ctx, symbol, target, true)
	}
	target := preferred
	if target == model.NoCurrency {
		target = model.USD
	}
	return r.Requote(ctx, symbol, target, false)
}

// Requote resolves a rate for an already routed recipe,
// e.g. when re-evaluating a stored favorite.
func (r *Resolver) Requote(ctx context.Context, symbol, target model.Currency, fiatConversion bool) (model.RateQuote, error) {
	if fiatConversion {
		rates, err := r.fx.Latest(ctx, symbol, target)
		if err != nil {
			return model.RateQuote{}, err
		}
		rate, ok := rates[target]
		if !ok {
			return model.RateQuote{}, fmt.Errorf("missing rate '%s' for '%s': %w", target, symbol, model.ProviderErr)
		}
		return model.RateQuote{
			Symbol:         symbol,
			Target:         target,
			Amount:         rate,
			ConversionRate: 1.0,
			FiatConversion: true,
			Time:           time.Now(),
		}, nil
	}

	price, err := r.market.Price(ctx, symbol.Pair(model.USDT))
	if err != nil {
		return model.RateQuote{}, err
	}
	conversion := 1.0
	if !target.IsDollar() {
		rates, err := r.fx.Latest(ctx, model.USD, target)
		if err != nil {
			return model.RateQuote{}, err
		}
		// a missing rate defaults the conversion to 1.0
		if rate, ok := rates[target]; ok {
			conversion = rate
		}
	}
	return model.RateQuote{
		Symbol:         symbol,
		Target:         target,
		Amount:         price * conversion,
		ConversionRate: conversion,
		FiatConversion: false,
		Time:           time.Now(),
	}, nil
}

// History resolves a time series for the given chart request.
// A pair of fiat currencies is resolved through the fx provider history,
// anything else through the market data provider candles.
func (r *Resolver) History(ctx context.Context, request model.ChartRequest) (model.Series, error) {
	if request.Symbol.IsFiat() && request.Target.IsFiat() {
		return r.fiatHistory(ctx, request)
	}
	return r.cryptoHistory(ctx, request)
}

func (r *Resolver) fiatHistory(ctx context.Context, request model.ChartRequest) (model.Series, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -request.Days)
	rates, err := r.fx.History(ctx, request.Symbol, request.Target, start, end)
	if err != nil {
		return model.Series{}, err
	}
	if len(rates) == 0 {
		return model.Series{}, fmt.Errorf("no data available for '%s/%s' over %d days: %w",
			request.Symbol, request.Target, request.Days, model.NoDataErr)
	}

	dates := make([]string, 0, len(rates))
	for d := range rates {
		dates = append(dates, d)
	}
	// ISO dates sort correctly lexicographically
	sort.Strings(dates)

	points := make([]model.Point, 0, len(dates))
	for _, d := range dates {
		rate, ok := rates[d][request.Target]
		if !ok {
			return model.Series{}, fmt.Errorf("missing rate '%s' at '%s': %w", request.Target, d, model.ProviderErr)
		}
		t, err := time.Parse(dateFormat, d)
		if err != nil {
			return model.Series{}, fmt.Errorf("could not parse date '%s': %w", d, model.ProviderErr)
		}
		points = append(points, model.NewPoint(t, rate))
	}
	return model.Series{
		Points: points,
		Title:  fmt.Sprintf("%s/%s – %d days", request.Symbol, request.Target, request.Days),
		YLabel: fmt.Sprintf("Exchange Rate (%s)", request.Target),
	}, nil
}

func (r *Resolver) cryptoHistory(ctx context.Context, request model.ChartRequest) (model.Series, error) {
	limit := sampleLimit(request.Days, request.Interval)

	points, err := r.market.Klines(ctx, request.Symbol.Pair(request.Target), request.Interval, limit)
	if err != nil || len(points) == 0 {
		if err != nil {
			log.Debug().
				Err(err).
				Str("pair", request.Symbol.Pair(request.Target)).
				Msg("direct pair not available")
		}
		// fall back to the tether quoted pair and convert to the target
		points, err = r.market.Klines(ctx, request.Symbol.Pair(model.USDT), request.Interval, limit)
		if err != nil {
			return model.Series{}, err
		}
		if len(points) == 0 {
			return model.Series{}, fmt.Errorf("no data for pair '%s': %w",
				request.Symbol.Pair(model.USDT), model.NoDataErr)
		}
		if !request.Target.IsDollar() {
			rates, err := r.fx.Latest(ctx, model.USD, request.Target)
			if err != nil {
				return model.Series{}, err
			}
			conversion := 1.0
			if rate, ok := rates[request.Target]; ok {
				conversion = rate
			}
			// scale into a fresh slice, the provider owns the one it returned
			converted := make([]model.Point, len(points))
			for i, point := range points {
				converted[i] = model.NewPoint(point.Time, point.Value*conversion)
			}
			points = converted
		}
	}
	return model.Series{
		Points: points,
		Title:  fmt.Sprintf("%s/%s – %d periods (%s)", request.Symbol, request.Target, request.Days, request.Interval),
		YLabel: fmt.Sprintf("Price (%s)", request.Target),
	}, nil
}

// sampleLimit derives the number of candles to request,
// capped at the provider maximum.
func sampleLimit(days int, interval string) int {
	limit := days
	if strings.Contains(interval, "h") {
		hoursPerDay := 24
		if h, err := strconv.Atoi(strings.ReplaceAll(interval, "h", "")); err == nil && h != 0 {
			hoursPerDay = 24 / h
		}
		limit = days * hoursPerDay
	}
	if limit > maxSamples {
		return maxSamples
	}
	return limit
}
