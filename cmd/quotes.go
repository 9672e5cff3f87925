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

// quotesCmd is a container for the quotations subcommands.
type quotesCmd struct{}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "fetch and list saved quotations" }
func (*quotesCmd) Usage() string {
	return `cbx quotes <subcommand> [args]

Commands:
  fetch - Fetch the latest quotations and save them.
  list  - List the saved quotations.
`
}

func (c *quotesCmd) SetFlags(f *flag.FlagSet) {}
func (c *quotesCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "quotes")
	commander.Register(&quotesFetchCmd{}, "")
	commander.Register(&quotesListCmd{}, "")
	return commander.Execute(ctx, args...)
}

type quotesFetchCmd struct {
	base  string
	limit int
}

func (*quotesFetchCmd) Name() string     { return "fetch" }
func (*quotesFetchCmd) Synopsis() string { return "fetch the latest quotations and save them" }
func (*quotesFetchCmd) Usage() string {
	return `cbx quotes fetch [-base <code>] [-limit <n>] [<FROM-TO>...]

  Without pairs, fetches the latest rates against the base currency. With pairs,
  fetches each pair with its previous day value. Fetched quotations are saved to
  the quotations database.

Usage Examples:
$ cbx quotes fetch -base USD -limit 5
$ cbx quotes fetch USD-BRL EUR-BRL
`
}

func (c *quotesFetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "", "Base currency of the latest rates. Defaults to the config 'from'")
	f.IntVar(&c.limit, "limit", 0, "Maximum number of rates. Defaults to the config 'quotes_limit'")
}

func (c *quotesFetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := appConfig()
	var quotes []cambio.Quotation
	if f.NArg() == 0 {
		base, limit := strings.ToUpper(c.base), c.limit
		if base == "" {
			base = strings.ToUpper(cfg.From)
		}
		if limit <= 0 {
			limit = cfg.QuotesLimit
		}
		latest, err := newExchangeRate().Latest(ctx, base, limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		quotes = latest
	}

	rates := newRates()
	for _, arg := range f.Args() {
		p, err := cambio.ParsePair(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		q, err := rates.Quotation(ctx, p.From, p.To)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		quotes = append(quotes, q)
	}

	db, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quotations database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()
	for i := range quotes {
		id, err := db.Add(ctx, quotes[i])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving quotation %s: %v\n", quotes[i].Currency, err)
			return subcommands.ExitFailure
		}
		quotes[i].ID = id
	}
	printMarkdown(renderer.RenderQuotations(renderer.NewQuotations("Cotações obtidas", quotes)))
	return subcommands.ExitSuccess
}

type quotesListCmd struct{}

func (*quotesListCmd) Name() string     { return "list" }
func (*quotesListCmd) Synopsis() string { return "list the saved quotations" }
func (*quotesListCmd) Usage() string {
	return `cbx quotes list
`
}

func (*quotesListCmd) SetFlags(f *flag.FlagSet) {}

func (*quotesListCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening quotations database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()
	all, err := db.All(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderQuotations(renderer.NewQuotations("Cotações salvas", all)))
	return subcommands.ExitSuccess
}
