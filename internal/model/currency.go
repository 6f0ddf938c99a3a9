package model

import "strings"

// Currency defines a custom currency type, covering both fiat codes and crypto assets.
type Currency string

const (
	// NoCurrency is an undefined currency
	NoCurrency Currency = ""
	// USD represents the US dollar
	USD Currency = "USD"
	// USDT represents the tether stable coin
	USDT Currency = "USDT"
	// EUR represents the euro
	EUR Currency = "EUR"
	// PLN represents the polish zloty
	PLN Currency = "PLN"
	// GBP represents the british pound
	GBP Currency = "GBP"
	// JPY represents the japanese yen
	JPY Currency = "JPY"
	// CHF represents the swiss franc
	CHF Currency = "CHF"
	// AUD represents the australian dollar
	AUD Currency = "AUD"
	// CAD represents the canadian dollar
	CAD Currency = "CAD"
	// BTC represents bitcoin
	BTC Currency = "BTC"
	// ETH represents the ethereum token
	ETH Currency = "ETH"
)

// fiatCurrencies is the closed set of codes treated as fiat currencies.
var fiatCurrencies = map[Currency]struct{}{
	USD: {},
	EUR: {},
	PLN: {},
	GBP: {},
	JPY: {},
	CHF: {},
	AUD: {},
	CAD: {},
}

// NewCurrency normalises the given code to a currency.
func NewCurrency(code string) Currency {
	return Currency(strings.ToUpper(code))
}

// IsFiat checks if the currency belongs to the fixed set of fiat codes.
func (c Currency) IsFiat() bool {
	_, ok := fiatCurrencies[c]
	return ok
}

// IsDollar checks if the currency is dollar denominated, meaning no conversion is needed
// on top of a USDT quoted price.
func (c Currency) IsDollar() bool {
	return c == USD || c == USDT
}

// Pair builds the exchange pair symbol for the currency quoted in the given target.
func (c Currency) Pair(quote Currency) string {
	return string(c) + string(quote)
}
