package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/etnz/cambio"
	"github.com/etnz/cambio/renderer"
	"github.com/google/subcommands"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the currencies that can be converted" }
func (*currenciesCmd) Usage() string {
	return `cbx currencies

  Lists the currencies quoted by the rate service, with their display symbol.
`
}

func (*currenciesCmd) SetFlags(f *flag.FlagSet) {}

func (*currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names, err := newRates().Available(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	// symbols are a nice to have, fall back to the ISO table without them.
	symbols, err := newExchangeRate().Symbols(ctx)
	if err != nil {
		log.Warnf("cannot get currency symbols: %v", err)
	}
	printMarkdown(renderer.RenderCurrencies(renderer.NewCurrencies(cambio.MergeCurrencies(names, symbols))))
	return subcommands.ExitSuccess
}
