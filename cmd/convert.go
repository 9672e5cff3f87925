package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cambio"
	"github.com/etnz/cambio/renderer"
	"github.com/google/subcommands"
)

// pairFlags are the currency pair flags shared by the rate commands.
type pairFlags struct {
	from, to string
	pair     string
	swap     bool
}

func (p *pairFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Currency to convert from. Defaults to the config 'from'")
	f.StringVar(&p.to, "to", "", "Currency to convert into. Defaults to the config 'to'")
	f.StringVar(&p.pair, "pair", "", "Currency pair, e.g. USD-BRL. Overrides -from and -to")
	f.BoolVar(&p.swap, "swap", false, "Swap the currencies")
}

// Pair returns the selected pair.
func (p *pairFlags) Pair() (cambio.Pair, error) {
	var pair cambio.Pair
	if p.pair != "" {
		var err error
		if pair, err = cambio.ParsePair(p.pair); err != nil {
			return pair, err
		}
	} else {
		c := appConfig()
		pair = cambio.Pair{From: strings.ToUpper(c.From), To: strings.ToUpper(c.To)}
		if p.from != "" {
			pair.From = strings.ToUpper(p.from)
		}
		if p.to != "" {
			pair.To = strings.ToUpper(p.to)
		}
	}
	if p.swap {
		pair = pair.Swap()
	}
	return pair, nil
}

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	pairFlags
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount at the latest rate" }
func (*convertCmd) Usage() string {
	return `cbx convert [-from <code>] [-to <code>] [-pair FROM-TO] [-swap] <amount>

  Converts the amount at the latest bid. Amounts accept a comma or a dot as the
  decimal separator ("1.234,56" or "1234.56"). Results are rounded to 2 decimals.

Usage Examples:
$ cbx convert -from USD -to BRL 100
$ cbx convert -pair EUR-BRL -swap 250,50
`
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := c.Pair()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	conv, ok, err := cambio.Converter{Rates: newRates()}.Convert(ctx, pair, strings.Join(f.Args(), ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: missing amount to convert from %s to %s\n", pair.From, pair.To)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderConversion(renderer.NewConversion(conv)))
	return subcommands.ExitSuccess
}
