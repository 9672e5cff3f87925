package renderer

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/cambio"
)

// userMessage returns the message to show for err: the load error message when there is one.
func userMessage(err error) string {
	var lerr *cambio.LoadError
	if errors.As(err, &lerr) {
		return lerr.Msg
	}
	return err.Error()
}

// formatRate prints a rate with 4 decimals, as rates are published.
func formatRate(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func bounds(values []float64) (low, high float64) {
	if len(values) == 0 {
		return 0, 0
	}
	low, high = values[0], values[0]
	for _, v := range values[1:] {
		low, high = math.Min(low, v), math.Max(high, v)
	}
	return low, high
}

var ticks = []rune("▁▂▃▄▅▆▇█")

// sparkline draws values on one line, scaled between their low and high.
func sparkline(values []float64) string {
	low, high := bounds(values)
	var b strings.Builder
	for _, v := range values {
		b.WriteRune(ticks[scale(v, low, high, len(ticks)-1)])
	}
	return b.String()
}

// bar draws a horizontal bar of v, at least one block wide.
func bar(v, low, high float64, width int) string {
	return strings.Repeat("█", 1+scale(v, low, high, width-1))
}

// scale maps v from [low, high] to [0, n]. A flat series maps to the middle.
func scale(v, low, high float64, n int) int {
	if high <= low {
		return n / 2
	}
	i := int(math.Round((v - low) / (high - low) * float64(n)))
	return max(0, min(n, i))
}
