package binance

import (
	"context"

	"github.com/adshao/go-binance/v2"
)

// exchange exposes the exchange endpoints needed for market data lookups.
type exchange interface {
	ListPrices(ctx context.Context, symbol string) (res []*binance.SymbolPrice, err error)
	Klines(ctx context.Context, symbol, interval string, limit int) (res []*binance.Kline, err error)
}

type binanceAPI struct {
	client *binance.Client
}

func newBinanceAPI(client *binance.Client) *binanceAPI {
	return &binanceAPI{client: client}
}

func (b *binanceAPI) ListPrices(ctx context.Context, symbol string) (res []*binance.SymbolPrice, err error) {
	return b.client.NewListPricesService().Symbol(symbol).Do(ctx)
}

func (b *binanceAPI) Klines(ctx context.Context, symbol, interval string, limit int) (res []*binance.Kline, err error) {
	return b.client.NewKlinesService().Symbol(symbol).Interval(interval).Limit(limit).Do(ctx)
}
