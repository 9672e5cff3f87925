package cambio

import "github.com/etnz/cambio/date"

// Quotation is a rate snapshot of a currency: its latest value and, when known,
// the value before it.
type Quotation struct {
	ID            int64     `json:"id,omitempty"`
	Currency      string    `json:"currency"` // pair code, e.g. "USD-BRL" or a single code against a base
	LatestDate    date.Date `json:"latest_date"`
	PreviousDate  date.Date `json:"previous_date"`
	LatestValue   float64   `json:"latest_value"`
	PreviousValue float64   `json:"previous_value"`
}

// HasPrevious reports whether the quotation carries a previous value.
func (q Quotation) HasPrevious() bool { return !q.PreviousDate.IsZero() }

// Variation returns the relative change from the previous to the latest value,
// e.g. 0.02 for +2%. It is 0 without a previous value.
func (q Quotation) Variation() float64 {
	if !q.HasPrevious() || q.PreviousValue == 0 {
		return 0
	}
	return q.LatestValue/q.PreviousValue - 1
}
