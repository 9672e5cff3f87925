package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cambio"
	"github.com/etnz/cambio/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	pairFlags
	days    int
	compact bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "chart the daily rate of a currency pair" }
func (*chartCmd) Usage() string {
	return `cbx chart [-from <code>] [-to <code>] [-pair FROM-TO] [-swap] [-days <n>] [-compact]

  Shows the daily bids of the last days, oldest first, as a sparkline and a table.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.pairFlags.SetFlags(f)
	f.IntVar(&c.days, "days", 0, "Number of days. Defaults to the config 'chart_days'")
	f.BoolVar(&c.compact, "compact", false, "Only show the sparkline")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := c.Pair()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	days := c.days
	if days <= 0 {
		days = appConfig().ChartDays
	}

	points, err := cambio.Converter{Rates: newRates()}.Chart(ctx, pair, days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	chart := renderer.NewChart(pair, points)
	chart.Compact = c.compact
	printMarkdown(renderer.RenderChart(chart))
	return subcommands.ExitSuccess
}
