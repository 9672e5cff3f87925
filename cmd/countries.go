package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cambio"
	"github.com/etnz/cambio/renderer"
	"github.com/google/subcommands"
)

// countriesCmd holds the flags for the 'countries' subcommand.
type countriesCmd struct {
	by         string
	restricted bool
	flags      bool
}

func (*countriesCmd) Name() string     { return "countries" }
func (*countriesCmd) Synopsis() string { return "list and search countries and their currency" }
func (*countriesCmd) Usage() string {
	return `cbx countries [-by region|currency] [-restricted] [-flags] [<query>...]

  Loads the country directory and lists the countries matching the query.
  The query matches names (ignoring case and accents), region and currency codes.
  Exact currency code matches come first.

Usage Examples:
$ cbx countries sao
$ cbx countries -by currency -restricted eur
`
}

func (c *countriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "region", "Keep one entry per 'region' or per 'currency'")
	f.BoolVar(&c.restricted, "restricted", false, "Only list currencies that can be converted")
	f.BoolVar(&c.flags, "flags", false, "Link the flag image of each country")
}

func (c *countriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := dedupOptions(c.by, c.restricted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s := cambio.NewSelector(newDirectory(opts), nil)
	if err := s.Open(ctx); err != nil {
		var lerr *cambio.LoadError
		if errors.As(err, &lerr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", lerr.Msg)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	if _, err := s.Search(ctx, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	width := 0
	if c.flags {
		width = cambio.DefaultFlagWidth
	}
	printMarkdown(renderer.RenderCountries(renderer.NewCountries(s, width)))
	return subcommands.ExitSuccess
}
