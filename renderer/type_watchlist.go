package renderer

import (
	"github.com/etnz/cambio"
	"github.com/etnz/cambio/watchlist"
)

// Watchlist is the list of selected currencies, optionally valued in a base currency.
type Watchlist struct {
	// Base is the valuation currency, empty when items are not valued.
	Base  string         `json:"base,omitempty"`
	Total string         `json:"total,omitempty"`
	Rows  []WatchlistRow `json:"rows"`
}

// WatchlistRow is a selected currency. Index is 0-based, as used by the edit commands.
type WatchlistRow struct {
	Index    int    `json:"index"`
	Currency string `json:"currency"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	Amount   string `json:"amount"`
	Rate     string `json:"rate,omitempty"`
	Value    string `json:"value,omitempty"`
}

func newWatchlistRow(i int, it watchlist.Item) WatchlistRow {
	return WatchlistRow{
		Index:    i,
		Currency: it.Currency.Code,
		Name:     it.Currency.Name,
		Country:  it.CountryName,
		Amount:   it.Money().String(),
	}
}

// NewWatchlist creates the view of a list without valuation.
func NewWatchlist(l *watchlist.List) *Watchlist {
	w := &Watchlist{Rows: make([]WatchlistRow, 0, len(l.Items))}
	for i, it := range l.Items {
		w.Rows = append(w.Rows, newWatchlistRow(i, it))
	}
	return w
}

// NewValuedWatchlist creates the view of a list valued in base.
func NewValuedWatchlist(base string, eqs []watchlist.Equivalent, total cambio.Money) *Watchlist {
	w := &Watchlist{Base: base, Total: total.String(), Rows: make([]WatchlistRow, 0, len(eqs))}
	for i, eq := range eqs {
		row := newWatchlistRow(i, eq.Item)
		row.Rate = eq.Rate.String()
		row.Value = eq.Value.String()
		w.Rows = append(w.Rows, row)
	}
	return w
}
