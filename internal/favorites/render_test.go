package favorites

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/drakos74/coin-chat/internal/model"
	"github.com/stretchr/testify/assert"
)

type mockQuotes struct {
	quote model.RateQuote
	err   error
}

func (m *mockQuotes) Requote(ctx context.Context, symbol, target model.Currency, fiatConversion bool) (model.RateQuote, error) {
	return m.quote, m.err
}

func TestRenderer_Render(t *testing.T) {

	type test struct {
		quotes *mockQuotes
		entry  Entry
		line   string
	}

	tests := map[string]test{
		"static": {
			quotes: &mockQuotes{},
			entry:  NewStaticEntry("remember this"),
			line:   "remember this",
		},
		"price": {
			quotes: &mockQuotes{quote: model.RateQuote{
				Symbol:         model.USD,
				Target:         model.PLN,
				Amount:         4.0,
				ConversionRate: 1.0,
				FiatConversion: true,
				Time:           time.Now(),
			}},
			entry: NewPriceEntry(model.USD, model.PLN, true),
			line:  "💱 1 USD = 4.00 PLN",
		},
		"conversion-error": {
			quotes: &mockQuotes{err: fmt.Errorf("down: %w", model.ProviderErr)},
			entry:  NewPriceEntry(model.USD, model.PLN, true),
			line:   "⚠️ Error updating conversion for USD: down: provider error",
		},
		"price-error": {
			quotes: &mockQuotes{err: fmt.Errorf("down: %w", model.ProviderErr)},
			entry:  NewPriceEntry(model.BTC, model.USD, false),
			line:   "⚠️ Error updating price for BTC: down: provider error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			renderer := NewRenderer(tt.quotes)
			assert.Equal(t, tt.line, renderer.Render(context.Background(), tt.entry))
		})
	}
}
