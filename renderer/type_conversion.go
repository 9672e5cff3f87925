package renderer

import (
	"github.com/etnz/cambio"
)

// Conversion is the converter screen: an amount converted along a pair.
type Conversion struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	Result string `json:"result"`
	Rate   string `json:"rate"`
}

// NewConversion creates the view of a conversion.
func NewConversion(c cambio.Conversion) *Conversion {
	return &Conversion{
		From:   c.Pair.From,
		To:     c.Pair.To,
		Amount: c.Amount.String(),
		Result: c.Result.String(),
		Rate:   c.Rate.String(),
	}
}

// Chart is the daily rate chart of a pair.
type Chart struct {
	Pair  string     `json:"pair"`
	Days  int        `json:"days"`
	Spark string     `json:"spark"`
	Low   string     `json:"low"`
	High  string     `json:"high"`
	Rows  []ChartRow `json:"rows"`
	// Compact skips the daily table.
	Compact bool `json:"compact,omitempty"`
}

// ChartRow is one day of the chart, Bar is a horizontal bar scaled between the low and high.
type ChartRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Bar   string `json:"bar"`
}

// chartBarWidth is the width of the widest bar.
const chartBarWidth = 20

// NewChart creates the view of the points of a pair.
func NewChart(p cambio.Pair, points []cambio.ChartPoint) *Chart {
	values := make([]float64, len(points))
	for i, pt := range points {
		values[i] = pt.Value
	}
	low, high := bounds(values)
	c := &Chart{
		Pair:  p.String(),
		Days:  len(points),
		Spark: sparkline(values),
		Rows:  make([]ChartRow, 0, len(points)),
	}
	if len(points) > 0 {
		c.Low, c.High = formatRate(low), formatRate(high)
	}
	for _, pt := range points {
		c.Rows = append(c.Rows, ChartRow{
			Label: pt.Label,
			Value: formatRate(pt.Value),
			Bar:   bar(pt.Value, low, high, chartBarWidth),
		})
	}
	return c
}
