package renderer

import (
	"github.com/etnz/cambio"
)

// Countries is the country picker view: the filtered list and the selector status.
type Countries struct {
	// Query is the search text, empty for the full list.
	Query string `json:"query,omitempty"`
	// State is the selector state name, e.g. "ready".
	State string `json:"state"`
	// Error is the user facing load error, if any.
	Error string `json:"error,omitempty"`
	// Total is the size of the unfiltered list.
	Total int          `json:"total"`
	Rows  []CountryRow `json:"rows"`
}

// CountryRow is one selectable entry. Index is 1-based, as typed by the user to pick it.
type CountryRow struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
	Flag     string `json:"flag,omitempty"`
}

// NewCountries creates the view of a selector. flagWidth > 0 adds flag image URLs.
func NewCountries(s *cambio.Selector, flagWidth int) *Countries {
	c := &Countries{
		Query: s.Query(),
		State: s.State().String(),
		Total: s.Total(),
		Rows:  make([]CountryRow, 0),
	}
	if err := s.Err(); err != nil {
		c.Error = userMessage(err)
	}
	for i, e := range s.Visible() {
		row := CountryRow{
			Index:    i + 1,
			Name:     e.Name,
			Code:     e.Code,
			Currency: e.Currency.Code,
			Symbol:   cambio.DisplaySymbol(e.Currency),
		}
		if flagWidth > 0 {
			row.Flag = cambio.FlagURL(e.Code, flagWidth)
		}
		c.Rows = append(c.Rows, row)
	}
	return c
}
