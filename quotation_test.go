package cambio

import (
	"math"
	"testing"

	"github.com/etnz/cambio/date"
)

func TestQuotationVariation(t *testing.T) {
	q := Quotation{
		Currency:      "USD-BRL",
		LatestDate:    date.New(2025, 5, 2),
		PreviousDate:  date.New(2025, 5, 1),
		LatestValue:   5.1,
		PreviousValue: 5.0,
	}
	if got := q.Variation(); math.Abs(got-0.02) > 1e-9 {
		t.Errorf("Variation() = %v want 0.02", got)
	}

	q.PreviousDate = date.Date{}
	if q.HasPrevious() {
		t.Errorf("HasPrevious() = true without a previous date")
	}
	if got := q.Variation(); got != 0 {
		t.Errorf("Variation() without previous = %v want 0", got)
	}
}
