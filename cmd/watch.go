package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/cambio"
	"github.com/etnz/cambio/renderer"
	"github.com/etnz/cambio/watchlist"
	"github.com/google/subcommands"
)

// watchCmd is a container for the selected currencies subcommands.
type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "manage the selected currencies" }
func (*watchCmd) Usage() string {
	return `cbx watch <subcommand> [args]

Commands:
  list - List the selected currencies, optionally valued in a base currency.
  add  - Add currencies to the selection.
  set  - Set the amount held in a selected currency.
  rm   - Remove a currency from the selection.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {}
func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "watch")
	commander.Register(&watchListCmd{}, "")
	commander.Register(&watchAddCmd{}, "")
	commander.Register(&watchSetCmd{}, "")
	commander.Register(&watchRmCmd{}, "")
	return commander.Execute(ctx, args...)
}

type watchListCmd struct {
	base string
}

func (*watchListCmd) Name() string     { return "list" }
func (*watchListCmd) Synopsis() string { return "list the selected currencies" }
func (*watchListCmd) Usage() string {
	return `cbx watch list [-base <code>]

  Lists the selected currencies with their index and amount. With -base, each
  amount is converted at the latest rate and the total is shown.
`
}

func (c *watchListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "", "Value the amounts in this currency")
}

func (c *watchListCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := loadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading selected currencies: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.base == "" {
		printMarkdown(renderer.RenderWatchlist(renderer.NewWatchlist(list)))
		return subcommands.ExitSuccess
	}

	base := strings.ToUpper(c.base)
	eqs, total, err := list.Equivalents(ctx, newRates(), base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderWatchlist(renderer.NewValuedWatchlist(base, eqs, total)))
	return subcommands.ExitSuccess
}

type watchAddCmd struct {
	country string
}

func (*watchAddCmd) Name() string     { return "add" }
func (*watchAddCmd) Synopsis() string { return "add currencies to the selection" }
func (*watchAddCmd) Usage() string {
	return `cbx watch add <code>...
cbx watch add -country <query>

  Adds the currency codes to the selection. Codes must be convertible.
  With -country, the first country matching the query is looked up in the
  directory and its currency is added.

Usage Examples:
$ cbx watch add EUR JPY
$ cbx watch add -country japao
`
}

func (c *watchAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "Add the currency of the first country matching this query")
}

func (c *watchAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.country == "" && f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one currency code or -country is required.")
		return subcommands.ExitUsageError
	}

	var entities []cambio.Entity
	for _, arg := range f.Args() {
		code := strings.ToUpper(arg)
		if !cambio.Supported(code) {
			fmt.Fprintf(os.Stderr, "Error: %q is not a convertible currency, see 'cbx currencies'\n", arg)
			return subcommands.ExitUsageError
		}
		entities = append(entities, cambio.Entity{Currency: cambio.MergeCurrencies(map[string]string{code: ""}, nil)[0]})
	}
	if c.country != "" {
		e, err := firstCountry(ctx, c.country)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		entities = append(entities, e)
	}

	var lines []string
	err := updateWatchlist(func(l *watchlist.List) error {
		lines = lines[:0]
		for _, e := range entities {
			i, added := l.Add(e)
			if !added {
				lines = append(lines, fmt.Sprintf("%s já está na seleção (#%d)", e.Currency.Code, i))
				continue
			}
			lines = append(lines, fmt.Sprintf("%s adicionado à seleção (#%d)", e.Currency.Code, i))
		}
		return nil
	})
	if status := watchStatus(err); status != subcommands.ExitSuccess {
		return status
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return subcommands.ExitSuccess
}

// firstCountry returns the first convertible country matching query.
func firstCountry(ctx context.Context, query string) (cambio.Entity, error) {
	dir := newDirectory(cambio.Options{Restricted: true})
	all, err := dir.Load(ctx)
	if err != nil {
		return cambio.Entity{}, err
	}
	found := cambio.Filter(all, query)
	if len(found) == 0 {
		return cambio.Entity{}, fmt.Errorf("no country matches %q", query)
	}
	return found[0], nil
}

type watchSetCmd struct{}

func (*watchSetCmd) Name() string     { return "set" }
func (*watchSetCmd) Synopsis() string { return "set the amount held in a selected currency" }
func (*watchSetCmd) Usage() string {
	return `cbx watch set <index|code> <amount>

  Sets the amount of the selected currency at index (see 'cbx watch list') or
  with that code. An empty amount resets it to zero.
`
}

func (*watchSetCmd) SetFlags(f *flag.FlagSet) {}

func (*watchSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: an index or a currency code is required.")
		return subcommands.ExitUsageError
	}
	var it watchlist.Item
	err := updateWatchlist(func(l *watchlist.List) error {
		i := itemIndex(l.Index, f.Arg(0))
		if err := l.SetAmount(i, strings.Join(f.Args()[1:], "")); err != nil {
			return usageError{err}
		}
		it = l.Items[i]
		return nil
	})
	if status := watchStatus(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("%s: %s\n", it.Currency.Code, it.Money())
	return subcommands.ExitSuccess
}

type watchRmCmd struct{}

func (*watchRmCmd) Name() string     { return "rm" }
func (*watchRmCmd) Synopsis() string { return "remove a currency from the selection" }
func (*watchRmCmd) Usage() string {
	return `cbx watch rm <index|code>
`
}

func (*watchRmCmd) SetFlags(f *flag.FlagSet) {}

func (*watchRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one index or currency code is required.")
		return subcommands.ExitUsageError
	}
	code := ""
	err := updateWatchlist(func(l *watchlist.List) error {
		i := itemIndex(l.Index, f.Arg(0))
		if i >= 0 && i < len(l.Items) {
			code = l.Items[i].Currency.Code
		}
		if err := l.Remove(i); err != nil {
			return usageError{err}
		}
		return nil
	})
	if status := watchStatus(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("%s removido da seleção\n", code)
	return subcommands.ExitSuccess
}

// usageError is an edit the user got wrong, as opposed to a file error.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// watchStatus prints err and returns the matching exit status.
func watchStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", uerr.error)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(os.Stderr, "Error saving selected currencies: %v\n", err)
	return subcommands.ExitFailure
}

// itemIndex reads arg as a 0-based index, or as a currency code looked up with index.
// It returns -1 when nothing matches.
func itemIndex(index func(code string) int, arg string) int {
	if i, err := strconv.Atoi(arg); err == nil {
		return i
	}
	return index(strings.ToUpper(arg))
}
