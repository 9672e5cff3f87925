package renderer

import (
	"fmt"

	"github.com/etnz/cambio"
)

// Quotations is a list of rate snapshots.
type Quotations struct {
	Title string         `json:"title"`
	Rows  []QuotationRow `json:"rows"`
}

// QuotationRow is one quotation. Previous fields are empty when unknown.
type QuotationRow struct {
	ID            int64  `json:"id"`
	Currency      string `json:"currency"`
	LatestDate    string `json:"latestDate"`
	LatestValue   string `json:"latestValue"`
	PreviousDate  string `json:"previousDate,omitempty"`
	PreviousValue string `json:"previousValue,omitempty"`
	Variation     string `json:"variation,omitempty"`
}

// NewQuotations creates the view of quotations.
func NewQuotations(title string, list []cambio.Quotation) *Quotations {
	q := &Quotations{Title: title, Rows: make([]QuotationRow, 0, len(list))}
	for _, x := range list {
		row := QuotationRow{
			ID:          x.ID,
			Currency:    x.Currency,
			LatestDate:  x.LatestDate.String(),
			LatestValue: formatRate(x.LatestValue),
		}
		if x.HasPrevious() {
			row.PreviousDate = x.PreviousDate.String()
			row.PreviousValue = formatRate(x.PreviousValue)
			row.Variation = fmt.Sprintf("%+.2f%%", 100*x.Variation())
		}
		q.Rows = append(q.Rows, row)
	}
	return q
}
