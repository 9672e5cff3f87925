package cambio

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an amount in a currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](v T) decimal.Decimal {
	switch x := any(v).(type) {
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case decimal.Decimal:
		return x
	}
	panic("unreachable")
}

// ParseAmount reads a user typed amount. Both "1234.5" and "1.234,5" are accepted:
// when a comma is present it is the decimal separator and dots group thousands.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// currency returns the ISO currency, never nil.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Currency returns the currency code.
func (m Money) Currency() string { return m.cur }

// Value returns the amount in major units.
func (m Money) Value() decimal.Decimal { return m.value }

func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Mul(r decimal.Decimal) Money { return Money{value: m.value.Mul(r), cur: m.cur} }

// Round returns m rounded to its currency's minor unit.
// Unknown currencies round to two decimals.
func (m Money) Round() Money {
	fraction := 2
	if c := money.GetCurrency(m.cur); c != nil {
		fraction = c.Fraction
	}
	return Money{value: m.value.Round(int32(fraction)), cur: m.cur}
}

// String formats m the way its currency is usually written, e.g. "$1,234.50" or "R$1.234,50".
func (m Money) String() string {
	if money.GetCurrency(m.cur) == nil {
		return strings.TrimSpace(m.Fixed() + " " + m.cur)
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Fixed formats m with two decimals and no symbol, e.g. "1234.50".
func (m Money) Fixed() string { return m.value.StringFixed(2) }
