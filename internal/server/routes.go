package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/drakos74/coin-chat/internal/model"
)

// Quotes resolves the market data behind the http routes.
type Quotes interface {
	Quote(ctx context.Context, symbol, preferred model.Currency) (model.RateQuote, error)
	History(ctx context.Context, request model.ChartRequest) (model.Series, error)
}

// Live is the liveness route.
func Live() Route {
	return Route{
		Action: Data,
		Path:   "live",
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// Quote exposes the rate resolution over http,
// e.g. GET /data/quote?symbol=BTC&target=PLN
func Quote(quotes Quotes) Route {
	return Route{
		Action: Data,
		Path:   "quote",
		Method: GET,
		Exec: func(r *http.Request) ([]byte, int, error) {
			symbol := r.URL.Query().Get("symbol")
			if symbol == "" {
				return []byte("missing symbol"), http.StatusBadRequest, nil
			}
			target := model.NewCurrency(r.URL.Query().Get("target"))
			quote, err := quotes.Quote(r.Context(), model.NewCurrency(symbol), target)
			if err != nil {
				return nil, 0, err
			}
			b, err := json.Marshal(quote)
			if err != nil {
				return nil, 0, err
			}
			return b, http.StatusOK, nil
		},
	}
}

// Series exposes the history resolution over http,
// e.g. GET /data/series?symbol=BTC&target=USDT&days=30&interval=1d
func Series(quotes Quotes) Route {
	return Route{
		Action: Data,
		Path:   "series",
		Method: GET,
		Exec: func(r *http.Request) ([]byte, int, error) {
			query := r.URL.Query()
			symbol := query.Get("symbol")
			if symbol == "" {
				return []byte("missing symbol"), http.StatusBadRequest, nil
			}
			request := model.ChartRequest{
				Symbol:   model.NewCurrency(symbol),
				Target:   model.DefaultChartTarget,
				Days:     model.DefaultChartDays,
				Interval: model.DefaultChartInterval,
				Color:    model.DefaultChartColor,
			}
			if target := model.NewCurrency(query.Get("target")); target != model.NoCurrency {
				request.Target = target
			}
			if days := query.Get("days"); days != "" {
				d, err := strconv.Atoi(days)
				if err != nil {
					return []byte("invalid days"), http.StatusBadRequest, nil
				}
				request.Days = d
			}
			if interval := query.Get("interval"); interval != "" {
				request.Interval = interval
			}
			series, err := quotes.History(r.Context(), request)
			if err != nil {
				return nil, 0, err
			}
			b, err := json.Marshal(series)
			if err != nil {
				return nil, 0, err
			}
			return b, http.StatusOK, nil
		},
	}
}
