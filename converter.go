package cambio

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/etnz/cambio/date"
	"github.com/shopspring/decimal"
)

// Pair is a conversion direction, From is converted into To.
type Pair struct{ From, To string }

// ParsePair parses "USD-BRL" (or "USD/BRL", "usdbrl").
func ParsePair(s string) (Pair, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if from, to, ok := strings.Cut(s, "-"); ok {
		return newPair(from, to)
	}
	if from, to, ok := strings.Cut(s, "/"); ok {
		return newPair(from, to)
	}
	if len(s) == 6 {
		return newPair(s[:3], s[3:])
	}
	return Pair{}, fmt.Errorf("invalid currency pair %q, want FROM-TO", s)
}

func newPair(from, to string) (Pair, error) {
	if !isCode(from) || !isCode(to) {
		return Pair{}, fmt.Errorf("invalid currency pair %s-%s, want ISO currency codes", from, to)
	}
	return Pair{From: from, To: to}, nil
}

// isCode reports whether s is a known ISO-4217 code or a convertible one.
func isCode(s string) bool {
	return money.GetCurrency(s) != nil || Supported(s)
}

// Swap returns the reverse pair.
func (p Pair) Swap() Pair { return Pair{From: p.To, To: p.From} }

func (p Pair) String() string { return p.From + "-" + p.To }

// Rates provides exchange rates.
type Rates interface {
	// Last returns the latest rate to convert one unit of from into to.
	Last(ctx context.Context, from, to string) (decimal.Decimal, error)
	// Daily returns the daily rates of the last days.
	Daily(ctx context.Context, from, to string, days int) (*date.History[float64], error)
}

// Conversion is the result of converting an amount.
type Conversion struct {
	Pair   Pair
	Amount Money
	Rate   decimal.Decimal
	Result Money
}

// ChartPoint is one day of a rate chart.
type ChartPoint struct {
	Day   date.Date
	Label string
	Value float64
}

// Converter converts amounts and charts rates for a currency pair.
type Converter struct {
	Rates Rates
}

// Convert converts the user typed amount along p. The result is rounded to two decimals,
// rates are used as published.
//
// A blank amount is not an error: it returns a zero Conversion and ok false.
func (c Converter) Convert(ctx context.Context, p Pair, amount string) (conv Conversion, ok bool, err error) {
	if strings.TrimSpace(amount) == "" {
		return Conversion{}, false, nil
	}
	value, err := ParseAmount(amount)
	if err != nil {
		return Conversion{}, false, err
	}
	rate, err := c.Rates.Last(ctx, p.From, p.To)
	if err != nil {
		return Conversion{}, false, fmt.Errorf("cannot get %s rate: %w", p, err)
	}
	return Conversion{
		Pair:   p,
		Amount: M(value, p.From),
		Rate:   rate,
		Result: M(value.Mul(rate).Round(2), p.To),
	}, true, nil
}

// Chart returns the daily rates of p over the last days, oldest first.
func (c Converter) Chart(ctx context.Context, p Pair, days int) ([]ChartPoint, error) {
	h, err := c.Rates.Daily(ctx, p.From, p.To, days)
	if err != nil {
		return nil, fmt.Errorf("cannot get %s history: %w", p, err)
	}
	points := make([]ChartPoint, 0, h.Len())
	for day, v := range h.Values() {
		points = append(points, ChartPoint{Day: day, Label: day.Label(), Value: v})
	}
	return points, nil
}

// MergeCurrencies builds the currency list from a code to name map and a code to symbol map.
// Missing symbols fall back to the ISO grapheme, then to the code. The list is sorted by code.
func MergeCurrencies(names, symbols map[string]string) []Currency {
	list := make([]Currency, 0, len(names))
	for code, name := range names {
		symbol := symbols[code]
		if symbol == "" {
			if c := money.GetCurrency(code); c != nil {
				symbol = c.Grapheme
			}
		}
		if symbol == "" {
			symbol = code
		}
		list = append(list, Currency{Code: code, Name: name, Symbol: symbol})
	}
	slices.SortFunc(list, func(a, b Currency) int { return strings.Compare(a.Code, b.Code) })
	return list
}

// DisplaySymbol returns the symbol to show for c: its symbol, unless it is missing,
// just the code again, or made of letters only, in which case the code is clearer.
func DisplaySymbol(c Currency) string {
	s := c.Symbol
	if s == "" || strings.EqualFold(s, c.Code) || isLetters(s) {
		return c.Code
	}
	return s
}

func isLetters(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
