package model

import (
	"fmt"
	"time"
)

// RateQuote defines a price or conversion rate for one unit of the symbol,
// expressed in the target currency.
// For fiat conversions the amount is the exchange rate symbol -> target.
// For crypto lookups the amount is the already converted price and the conversion
// rate that was applied is retained for display.
type RateQuote struct {
	Symbol         Currency  `json:"symbol"`
	Target         Currency  `json:"target"`
	Amount         float64   `json:"amount"`
	ConversionRate float64   `json:"conversion_rate"`
	FiatConversion bool      `json:"fiat_conversion"`
	Time           time.Time `json:"time"`
}

// Converted checks if a conversion rate was applied on top of the raw provider price.
func (q RateQuote) Converted() bool {
	return !q.FiatConversion && !q.Target.IsDollar()
}

// Format renders the quote the way it is presented to the user.
func (q RateQuote) Format() string {
	if q.FiatConversion {
		return fmt.Sprintf("💱 1 %s = %.2f %s", q.Symbol, q.Amount, q.Target)
	}
	if q.Converted() {
		return fmt.Sprintf("💰 Price of %s: %s %s (conversion rate: %.4f)",
			q.Symbol, FormatAmount(q.Amount), q.Target, q.ConversionRate)
	}
	return fmt.Sprintf("💰 Price of %s: %s %s", q.Symbol, FormatAmount(q.Amount), q.Target)
}
