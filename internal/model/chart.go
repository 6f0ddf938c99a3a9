package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultChartSymbol is the symbol used when no arguments are given.
	DefaultChartSymbol = BTC
	// DefaultChartTarget is the target currency used when no target token is given.
	DefaultChartTarget = USDT
	// DefaultChartDays is the default history window in days.
	DefaultChartDays = 30
	// DefaultChartInterval is the default candle interval token.
	DefaultChartInterval = "1d"
	// DefaultChartColor is the default render color.
	DefaultChartColor = "royalblue"
)

// ChartRequest defines the fully resolved parameters of a chart lookup.
// It is immutable once constructed from the positional arguments.
type ChartRequest struct {
	Symbol   Currency
	Target   Currency
	Days     int
	Interval string
	Color    string
}

// ResolveChartArgs disambiguates the variable length positional arguments of a
// chart request into a fully populated request.
// Allowed argument sets:
//   1 argument  : only symbol
//   2 arguments : symbol and (days or target, depending on the token format)
//   3 arguments : symbol, target, days
//   4 arguments : symbol, target, days, interval
//   5 arguments : symbol, target, days, interval, color
// Symbol and target are upper-cased, the color is lower-cased and the interval is
// passed through verbatim. Tokens beyond the fifth are ignored.
func ResolveChartArgs(args []string) (ChartRequest, error) {
	if len(args) > 5 {
		args = args[:5]
	}
	request := ChartRequest{
		Symbol:   DefaultChartSymbol,
		Target:   DefaultChartTarget,
		Days:     DefaultChartDays,
		Interval: DefaultChartInterval,
		Color:    DefaultChartColor,
	}
	var err error
	switch len(args) {
	case 1:
		request.Symbol = NewCurrency(args[0])
	case 2:
		request.Symbol = NewCurrency(args[0])
		if daysToken(args[1]) {
			request.Days, err = parseDays(args[1])
		} else {
			request.Target = NewCurrency(args[1])
		}
	case 3:
		request.Symbol = NewCurrency(args[0])
		request.Target = NewCurrency(args[1])
		request.Days, err = parseDays(args[2])
	case 4:
		request.Symbol = NewCurrency(args[0])
		request.Target = NewCurrency(args[1])
		request.Days, err = parseDays(args[2])
		request.Interval = args[3]
	case 5:
		request.Symbol = NewCurrency(args[0])
		request.Target = NewCurrency(args[1])
		request.Days, err = parseDays(args[2])
		request.Interval = args[3]
		request.Color = strings.ToLower(args[4])
	}
	if err != nil {
		return ChartRequest{}, err
	}
	return request, nil
}

// TargetOmitted checks if the token list leaves the target currency to its default,
// meaning the caller may override it with the user preference.
func TargetOmitted(args []string) bool {
	switch len(args) {
	case 0:
		return true
	case 1:
		return true
	case 2:
		return daysToken(args[1])
	}
	return false
}

// daysToken reports whether the token follows the <number>d day count format.
// Currency codes ending in d, like usd, do not qualify.
func daysToken(token string) bool {
	if !strings.HasSuffix(token, "d") {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSuffix(token, "d"))
	return err == nil
}

func parseDays(token string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSuffix(token, "d"))
	if err != nil {
		return 0, fmt.Errorf("could not parse days token '%s': %w", token, ArgumentErr)
	}
	return days, nil
}
