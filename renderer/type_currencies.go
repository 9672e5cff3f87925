package renderer

import "github.com/etnz/cambio"

// Currencies is the list of convertible currencies.
type Currencies struct {
	Rows []CurrencyRow `json:"rows"`
}

// CurrencyRow is one currency, Symbol is the one to display.
type CurrencyRow struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// NewCurrencies creates the view of currencies.
func NewCurrencies(list []cambio.Currency) *Currencies {
	c := &Currencies{Rows: make([]CurrencyRow, 0, len(list))}
	for _, cur := range list {
		c.Rows = append(c.Rows, CurrencyRow{Code: cur.Code, Name: cur.Name, Symbol: cambio.DisplaySymbol(cur)})
	}
	return c
}
