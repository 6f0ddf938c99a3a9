package favorites

import (
	"context"
	"fmt"

	"github.com/drakos74/coin-chat/internal/model"
)

// QuoteSource re-evaluates the rate behind a price favorite.
type QuoteSource interface {
	Requote(ctx context.Context, symbol, target model.Currency, fiatConversion bool) (model.RateQuote, error)
}

// Renderer resolves the display line for stored favorites.
type Renderer struct {
	quotes QuoteSource
}

// NewRenderer creates a renderer on top of the given quote source.
func NewRenderer(quotes QuoteSource) *Renderer {
	return &Renderer{
		quotes: quotes,
	}
}

// Render produces the display line for the entry.
// Price entries are re-evaluated on every call,
// a failed lookup degrades to an error line instead of failing the whole list.
func (r *Renderer) Render(ctx context.Context, entry Entry) string {
	if entry.Type != Price {
		return entry.Content
	}
	quote, err := r.quotes.Requote(ctx, entry.Symbol, entry.Target, entry.FiatConversion)
	if err != nil {
		if entry.FiatConversion {
			return fmt.Sprintf("⚠️ Error updating conversion for %s: %v", entry.Symbol, err)
		}
		return fmt.Sprintf("⚠️ Error updating price for %s: %v", entry.Symbol, err)
	}
	return quote.Format()
}
