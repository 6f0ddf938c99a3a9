package favorites

import (
	"fmt"

	"github.com/drakos74/coin-chat/internal/model"
	"github.com/google/uuid"
)

// EntryType distinguishes how a favorite is rendered.
type EntryType string

const (
	// Static entries replay their stored content verbatim.
	Static EntryType = "static"
	// Price entries re-evaluate their rate on every read.
	Price EntryType = "price"
)

// Entry is a single stored favorite.
type Entry struct {
	ID             string         `json:"id"`
	Type           EntryType      `json:"type"`
	Content        string         `json:"content,omitempty"`
	Symbol         model.Currency `json:"symbol,omitempty"`
	Target         model.Currency `json:"target,omitempty"`
	FiatConversion bool           `json:"fiat_conversion,omitempty"`
}

// NewStaticEntry creates a favorite replaying the given content.
func NewStaticEntry(content string) Entry {
	return Entry{
		ID:      uuid.New().String(),
		Type:    Static,
		Content: content,
	}
}

// NewPriceEntry creates a favorite re-evaluating the rate for the given recipe.
func NewPriceEntry(symbol, target model.Currency, fiatConversion bool) Entry {
	return Entry{
		ID:             uuid.New().String(),
		Type:           Price,
		Symbol:         symbol,
		Target:         target,
		FiatConversion: fiatConversion,
	}
}

// Equals compares the entry contents, ignoring the generated id.
func (e Entry) Equals(other Entry) bool {
	return e.Type == other.Type &&
		e.Content == other.Content &&
		e.Symbol == other.Symbol &&
		e.Target == other.Target &&
		e.FiatConversion == other.FiatConversion
}

func (e Entry) String() string {
	if e.Type == Price {
		return fmt.Sprintf("%s:%s/%s", e.Type, e.Symbol, e.Target)
	}
	return fmt.Sprintf("%s:%s", e.Type, e.Content)
}
